package sqlite

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
)

// Helpers shared across repository implementations

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

func nullableID(p *int64) any {
	if p == nil {
		return nil
	}
	return *p
}

func idFromNull(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}
