// internal/reply/service.go
package reply

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phoboco/phoboco-email-autoresponder/internal/gmail"
	"github.com/phoboco/phoboco-email-autoresponder/internal/llm"
	"github.com/phoboco/phoboco-email-autoresponder/internal/rate"
)

// metadataHeaders is the only header set we ever request; bodies stay on
// the server.
var metadataHeaders = []string{"Subject", "From"}

// Spec configures a single run of the drafting pipeline.
type Spec struct {
	Labels   []string
	PageSize int
	DryRun   bool
}

// LabelResult reports the outcome for one label. Err is non-nil when the
// label's processing was aborted; drafts counted before the failure were
// still stored.
type LabelResult struct {
	Label   string
	Scanned int
	Drafted int
	Err     error
}

// Service drives the per-label, per-message drafting loop.
type Service struct {
	Client    gmail.Client
	Generator llm.Provider
	Limiter   rate.Limiter
	Logger    *slog.Logger
	Prompt    string
}

// NewService constructs a Service with sane defaults.
func NewService(client gmail.Client, generator llm.Provider, limiter rate.Limiter, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		Client:    client,
		Generator: generator,
		Limiter:   limiter,
		Logger:    logger,
	}
}

// Run processes each configured label in order. A failure inside one label
// terminates that label only; the error lands in its LabelResult and the
// next label still runs. Run itself returns an error only for conditions
// that invalidate the whole invocation (missing collaborators, canceled
// context).
func (s *Service) Run(ctx context.Context, spec Spec) ([]LabelResult, error) {
	if s.Client == nil {
		return nil, fmt.Errorf("gmail client is required")
	}
	if s.Generator == nil {
		return nil, fmt.Errorf("generation provider is required")
	}
	if len(spec.Labels) == 0 {
		return nil, fmt.Errorf("no labels configured")
	}
	pageSize := spec.PageSize
	if pageSize <= 0 || pageSize > 500 {
		pageSize = 100
	}

	results := make([]LabelResult, 0, len(spec.Labels))
	for _, label := range spec.Labels {
		res := s.processLabel(ctx, label, pageSize, spec.DryRun)
		if res.Err != nil {
			s.Logger.Error("label processing failed", "label", label, "error", res.Err)
		} else {
			s.Logger.Info("label processed", "label", label, "scanned", res.Scanned, "drafted", res.Drafted)
		}
		results = append(results, res)
		if ctx.Err() != nil {
			return results, ctx.Err()
		}
	}
	return results, nil
}

// processLabel scans one label and drafts a reply per unread message. The
// first error aborts the remainder of this label's message loop.
func (s *Service) processLabel(ctx context.Context, label string, pageSize int, dryRun bool) LabelResult {
	res := LabelResult{Label: label}
	q := gmail.Query{Raw: fmt.Sprintf("label:%q is:unread", label)}

	var ids []gmail.MessageID
	pageToken := ""
	for {
		if err := s.wait(ctx); err != nil {
			res.Err = err
			return res
		}
		page, err := s.Client.List(ctx, q, pageToken, pageSize)
		if err != nil {
			res.Err = fmt.Errorf("list unread: %w", err)
			return res
		}
		ids = append(ids, page.IDs...)
		if page.NextPageToken == "" {
			break
		}
		pageToken = page.NextPageToken
	}
	res.Scanned = len(ids)
	if len(ids) == 0 {
		return res
	}

	for _, id := range ids {
		if err := s.draftReply(ctx, id, dryRun); err != nil {
			res.Err = fmt.Errorf("message %s: %w", id, err)
			return res
		}
		if !dryRun {
			res.Drafted++
		}
	}
	return res
}

func (s *Service) draftReply(ctx context.Context, id gmail.MessageID, dryRun bool) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	meta, err := s.Client.GetMetadata(ctx, id, metadataHeaders)
	if err != nil {
		return fmt.Errorf("fetch metadata: %w", err)
	}

	if dryRun {
		s.Logger.Info("dry-run: would draft reply",
			"id", id, "to", meta.From(), "subject", meta.Subject())
		return nil
	}

	if err := s.wait(ctx); err != nil {
		return err
	}
	text, err := s.Generator.Generate(ctx, s.renderPrompt(meta))
	if err != nil {
		return fmt.Errorf("generate reply: %w", err)
	}

	draft := gmail.NewReplyDraft("me", meta.From(), meta.Subject(), text)
	if err := s.wait(ctx); err != nil {
		return err
	}
	if err := s.Client.CreateDraft(ctx, draft); err != nil {
		return fmt.Errorf("create draft: %w", err)
	}
	return nil
}

// renderPrompt substitutes the message context into the prompt template.
func (s *Service) renderPrompt(meta gmail.MessageMeta) string {
	tmpl := s.Prompt
	if tmpl == "" {
		tmpl = "Draft a polite, professional reply to this email.\n" +
			"From: {{from}}\nSubject: {{subject}}\nMessage snippet:\n{{snippet}}"
	}
	out := strings.ReplaceAll(tmpl, "{{from}}", meta.From())
	out = strings.ReplaceAll(out, "{{subject}}", meta.Subject())
	out = strings.ReplaceAll(out, "{{snippet}}", meta.Snippet)
	return out
}

func (s *Service) wait(ctx context.Context) error {
	if s.Limiter == nil {
		return nil
	}
	return s.Limiter.Wait(ctx)
}
