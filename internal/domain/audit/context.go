package audit

import "context"

type actorKey struct{}

// WithActor stamps the acting user onto the context. The HTTP auth middleware
// sets it once per request; Record reads it back so services never thread
// user ids into their audit entries by hand.
func WithActor(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, actorKey{}, userID)
}

// Actor returns the acting user carried by the context, or nil outside an
// authenticated request.
func Actor(ctx context.Context) *string {
	if id, ok := ctx.Value(actorKey{}).(string); ok && id != "" {
		return &id
	}
	return nil
}
