package domain

import "context"

// Fetcher returns the decoded status response for updates since fromDate.
type Fetcher interface {
	Fetch(ctx context.Context, fromDate int64) (any, error)
}

type Dispatcher interface {
	Send(ctx context.Context, chatID, text string) error
}

type StatusCache interface {
	Write(ctx context.Context, s Snapshot) error
}
