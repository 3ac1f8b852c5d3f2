// internal/runtime/auth.go
package runtime

import (
	"context"
	"log/slog"
	"os"

	"github.com/mbrt/gmailctl/cmd/gmailctl/localcred"
	"google.golang.org/api/gmail/v1"

	gc "github.com/phoboco/phoboco-email-autoresponder/internal/gmail"
)

// NewGmailClient authenticates against Gmail and returns the narrow client
// the pipeline consumes. localcred keeps credentials.json and the cached
// OAuth token under cfgDir: the first run opens a browser authorization
// flow, later runs refresh silently. Drafts.Create needs the modify scope.
func NewGmailClient(ctx context.Context, cfgDir string) (gc.Client, error) {
	svc, err := (localcred.Provider{}).ServiceWithScopes(ctx, cfgDir, gmail.GmailModifyScope)
	if err != nil {
		return nil, err
	}
	return NewGoogleAPIClient(svc), nil
}

func DefaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
}
