package widget

import "context"

// Store persists configurations. namespace is a variant's ConfigStoreKey.
// Load returns an errs.NotFoundError for unknown widgets.
type Store interface {
	Load(ctx context.Context, namespace, widgetID string) (*Configuration, error)
	Save(ctx context.Context, namespace, widgetID string, cfg Configuration) error
	Delete(ctx context.Context, namespace, widgetID string) error
	List(ctx context.Context, namespace string) ([]string, error)
}
