// Package notification is the placeholder side channel for user notices.
// It logs the delivery instead of talking to a real transport.
package notification

import (
	"context"
	"log/slog"

	"github.com/samtimberlan/wishop/internal/domain"
)

// logNotifier implements domain.Notifier by writing structured log entries.
type logNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a Notifier that records deliveries in the log.
func NewLogNotifier(logger *slog.Logger) domain.Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &logNotifier{logger: logger}
}

// Notify records the notice. It never fails: delivery problems on a real
// transport would be logged here, not returned.
func (n *logNotifier) Notify(ctx context.Context, userID, message string) {
	n.logger.InfoContext(ctx, "user notified",
		slog.String("user_id", userID),
		slog.String("message", message),
	)
}
