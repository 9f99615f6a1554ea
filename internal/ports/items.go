package ports

import (
	"context"
	"itemlist/internal/domain"
)

// ItemStore persists items on the server side.
type ItemStore interface {
	List(ctx context.Context) ([]domain.Item, error)
	Create(ctx context.Context, text string) (domain.Item, error)
	Ping(ctx context.Context) error
}

// ItemAPI is the remote items service as seen by clients.
type ItemAPI interface {
	List(ctx context.Context) ([]domain.Item, error)
	Create(ctx context.Context, text string) (domain.Item, error)
}
