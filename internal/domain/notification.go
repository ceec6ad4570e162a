package domain

import "context"

// Notifier delivers out-of-band user notifications. Delivery is best-effort:
// implementations must not fail the calling operation, so Notify returns
// nothing and swallows transport errors.
type Notifier interface {
	Notify(ctx context.Context, userID, message string)
}
