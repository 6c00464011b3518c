package domain

// Batch is a validated status response.
type Batch struct {
	// Items keeps the upstream order, most recent first.
	Items          []any
	CurrentDate    int64
	HasCurrentDate bool
}

type TrackedItem struct {
	Name          string
	StatusCode    string
	ObservedAt    int64
	HasObservedAt bool
}

type Notification struct {
	Text string
}

// Snapshot is the last dispatched notification as exposed to status bars.
type Snapshot struct {
	Text      string
	Kind      Kind
	Watermark int64
	Retrieved int64
}
