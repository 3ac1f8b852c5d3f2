// internal/runtime/googleapi.go — adapts *gmail.Service to our small interface
package runtime

import (
	"context"

	"google.golang.org/api/gmail/v1"

	gc "github.com/phoboco/phoboco-email-autoresponder/internal/gmail"
)

type googleClient struct{ svc *gmail.Service }

// NewGoogleAPIClient wraps an authenticated Gmail service.
func NewGoogleAPIClient(svc *gmail.Service) gc.Client { return &googleClient{svc} }

func (g *googleClient) List(ctx context.Context, q gc.Query, pageToken string, pageSize int) (gc.ListPage, error) {
	call := g.svc.Users.Messages.List("me").Q(q.Raw).MaxResults(int64(pageSize))
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}
	res, err := call.Context(ctx).Do()
	if err != nil {
		return gc.ListPage{}, &gc.CallError{Op: "messages.list", Err: err}
	}
	var ids []gc.MessageID
	for _, m := range res.Messages {
		ids = append(ids, gc.MessageID(m.Id))
	}
	return gc.ListPage{IDs: ids, NextPageToken: res.NextPageToken}, nil
}

func (g *googleClient) GetMetadata(ctx context.Context, id gc.MessageID, headers []string) (gc.MessageMeta, error) {
	msg, err := g.svc.Users.Messages.Get("me", string(id)).
		Format("metadata").
		MetadataHeaders(headers...).
		Context(ctx).Do()
	if err != nil {
		return gc.MessageMeta{}, &gc.CallError{Op: "messages.get", Err: err}
	}
	h := map[string]string{}
	if msg.Payload != nil {
		for _, hd := range msg.Payload.Headers {
			h[hd.Name] = hd.Value
		}
	}
	return gc.MessageMeta{ID: id, Headers: h, Snippet: msg.Snippet}, nil
}

func (g *googleClient) CreateDraft(ctx context.Context, d gc.Draft) error {
	draft := &gmail.Draft{
		Message: &gmail.Message{Raw: d.Encode()},
	}
	_, err := g.svc.Users.Drafts.Create("me", draft).Context(ctx).Do()
	if err != nil {
		return &gc.CallError{Op: "drafts.create", Err: err}
	}
	return nil
}
