package category

// Category is a read-only grouping of questions.
type Category struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

// Selector names a category by type name, id, or both, as sent by quiz clients.
type Selector struct {
	ID   int64
	Type string
}

// IsZero reports whether the selector names no category at all, which clients
// use for "all categories".
func (s Selector) IsZero() bool {
	return s.ID <= 0 && s.Type == ""
}
