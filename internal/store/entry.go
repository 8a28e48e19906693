package store

import "github.com/arnav-k/autocompleted/internal/normalize"

// Entry is the value record held inside a namespace. CKey is immutable
// after creation; Data, When and Count are mutated in place across
// re-puts (the entry itself is detached and re-appended to the tail of
// insertion order, never reallocated).
type Entry struct {
	CKey  normalize.CKey
	Data  *string
	When  int64
	Count int64
}

// Result is the shape returned to search callers: fields the HTTP
// surface serializes verbatim, with Data omitted when absent.
type Result struct {
	Key   string
	ID    string
	When  int64
	Count int64
	Data  *string
}

func (e *Entry) toResult() Result {
	return Result{
		Key:   e.CKey.NKey,
		ID:    e.CKey.ID,
		When:  e.When,
		Count: e.Count,
		Data:  e.Data,
	}
}
