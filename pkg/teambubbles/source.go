package teambubbles

import (
	"context"
	"io"
)

type TaskSource interface {
	io.Closer

	Tasks(ctx context.Context) ([]Task, error)
}

type TaskStore interface {
	TaskSource

	Append(ctx context.Context, tasks ...Task) error
}
