package gmail

import (
	"context"
	"fmt"
)

// Client is the narrow Gmail surface required by the autoresponder.
type Client interface {
	List(ctx context.Context, q Query, pageToken string, pageSize int) (ListPage, error)
	GetMetadata(ctx context.Context, id MessageID, headers []string) (MessageMeta, error)
	CreateDraft(ctx context.Context, d Draft) error
}

// CallError wraps a failed Gmail API call with the operation that issued it.
type CallError struct {
	Op  string
	Err error
}

func (e *CallError) Error() string { return fmt.Sprintf("gmail %s: %v", e.Op, e.Err) }

func (e *CallError) Unwrap() error { return e.Err }
