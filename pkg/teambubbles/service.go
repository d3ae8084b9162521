package teambubbles

import (
	"context"
	"io"
)

type AggregatesRequest struct{}

type AggregatesResponse struct {
	Aggregates []TeamAggregate
}

type RenderRequest struct {
	Format string
	Locale string
}

type RenderResponse struct {
	ContentType string
	Data        []byte
}

type Service interface {
	io.Closer

	Aggregates(ctx context.Context, request *AggregatesRequest) (*AggregatesResponse, error)
	Render(ctx context.Context, request *RenderRequest) (*RenderResponse, error)
}
