package jobs

import (
	"github.com/mariano/flashdeck/internal/models"
	"github.com/mariano/flashdeck/internal/repository"
	"github.com/mariano/flashdeck/internal/worker"
)

// WorkerQueue routes persistence jobs to a worker pool.
type WorkerQueue struct {
	pool     *worker.Pool
	results  repository.QuizResultRepository
	progress repository.ProgressRepository
}

func NewWorkerQueue(pool *worker.Pool, results repository.QuizResultRepository, progress repository.ProgressRepository) JobQueue {
	return &WorkerQueue{
		pool:     pool,
		results:  results,
		progress: progress,
	}
}

func (q *WorkerQueue) EnqueueQuizSummary(summary models.QuizSessionSummary) {
	q.pool.Submit(&worker.SaveQuizSummaryJob{
		Results: q.results,
		Summary: summary,
	})
}

func (q *WorkerQueue) EnqueueProgress(record models.UserProgress) {
	q.pool.Submit(&worker.SaveProgressJob{
		Progress: q.progress,
		Record:   record,
	})
}
