package application

// ChangeTracker remembers the last notification text handed to the
// dispatcher. It is owned by a single PollUseCase and is not safe for
// concurrent use.
type ChangeTracker struct {
	last string
}

func (t *ChangeTracker) HasChanged(text string) bool { return text != t.last }

func (t *ChangeTracker) Record(text string) { t.last = text }

func (t *ChangeTracker) Last() string { return t.last }
