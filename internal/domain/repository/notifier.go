package repository

import "context"

// Notifier delivers a rendered notification over one outbound channel.
type Notifier interface {
	Name() string
	Notify(ctx context.Context, title, body string) error
}
