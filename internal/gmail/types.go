// internal/gmail/types.go
package gmail

// MessageID identifies a single Gmail message.
type MessageID string

// MessageMeta is the minimal view of a message the responder needs:
// a couple of headers plus the service-provided snippet. Full bodies
// are never fetched.
type MessageMeta struct {
	ID      MessageID
	Headers map[string]string // Subject, From
	Snippet string
}

// Subject returns the Subject header, or "" when the message has none.
func (m MessageMeta) Subject() string { return m.Headers["Subject"] }

// From returns the raw From header (display name plus address), or "".
func (m MessageMeta) From() string { return m.Headers["From"] }

// Query is a Gmail search expression, already formed
// (e.g. `label:"Leads_New" is:unread`).
type Query struct {
	Raw string
}

// ListPage is one page of a message listing.
type ListPage struct {
	IDs           []MessageID
	NextPageToken string
}
