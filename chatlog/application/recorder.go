package application

import (
	"context"

	"github.com/AzielCF/az-chatbox/chatlog/domain"
	"github.com/AzielCF/az-chatbox/pkg/workerpool"
)

// AsyncRecorder validates entries on the caller's goroutine and hands the
// insert to a worker pool, so widget clicks never wait on the database.
// Entries for the same agent are written in the order they were recorded.
type AsyncRecorder struct {
	service *ChatLogService
	pool    *workerpool.Pool
}

func NewAsyncRecorder(service *ChatLogService, pool *workerpool.Pool) *AsyncRecorder {
	return &AsyncRecorder{service: service, pool: pool}
}

func (r *AsyncRecorder) Record(ctx context.Context, entry *domain.Entry) error {
	if err := r.service.prepare(ctx, entry); err != nil {
		return err
	}

	e := *entry
	ok := r.pool.TryDispatch(workerpool.Job{
		Key: e.AgentID,
		Handler: func(ctx context.Context) error {
			return r.service.repo.Insert(ctx, &e)
		},
	})
	if !ok {
		return domain.ErrQueueFull
	}
	return nil
}
