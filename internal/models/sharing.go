package models

import "time"

type DeckShare struct {
	ID               int64     `json:"id"`
	DeckID           int64     `json:"deck_id"`
	SharedWithUserID int64     `json:"shared_with_user_id"`
	Permission       string    `json:"permission"` // "view" or "edit"
	CreatedAt        time.Time `json:"created_at"`
}

type DeckCollaborator struct {
	ID      int64     `json:"id"`
	DeckID  int64     `json:"deck_id"`
	UserID  int64     `json:"user_id"`
	Role    string    `json:"role"` // "viewer", "editor", "owner"
	AddedAt time.Time `json:"added_at"`
}

type DeckComment struct {
	ID        int64     `json:"id"`
	DeckID    int64     `json:"deck_id"`
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type DeckRating struct {
	ID        int64     `json:"id"`
	DeckID    int64     `json:"deck_id"`
	UserID    int64     `json:"user_id"`
	Score     int       `json:"score"` // 1-5
	CreatedAt time.Time `json:"created_at"`
}

type DeckRatingSummary struct {
	DeckID  int64   `json:"deck_id"`
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}
