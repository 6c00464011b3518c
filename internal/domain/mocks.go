package domain

import (
	"context"
)

// MockFetcher replays Responses (or Errs) in order; the last entry repeats.
type MockFetcher struct {
	Responses []any
	Errs      []error
	FromDates []int64
}

func (m *MockFetcher) Fetch(ctx context.Context, fromDate int64) (any, error) {
	i := len(m.FromDates)
	m.FromDates = append(m.FromDates, fromDate)

	if n := len(m.Errs); n > 0 {
		if err := m.Errs[min(i, n-1)]; err != nil {
			return nil, err
		}
	}
	if n := len(m.Responses); n > 0 {
		return m.Responses[min(i, n-1)], nil
	}
	return nil, nil
}

type MockDispatcher struct {
	Messages []string
	ChatIDs  []string
	Err      error
}

func (d *MockDispatcher) Send(ctx context.Context, chatID, text string) error {
	d.ChatIDs = append(d.ChatIDs, chatID)
	d.Messages = append(d.Messages, text)
	return d.Err
}

type MockCache struct {
	Snapshots []Snapshot
	Err       error
}

func (c *MockCache) Write(ctx context.Context, s Snapshot) error {
	if c.Err != nil {
		return c.Err
	}
	c.Snapshots = append(c.Snapshots, s)
	return nil
}
