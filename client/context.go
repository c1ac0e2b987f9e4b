package client

import "context"

type contextKeyType string

const contextKey contextKeyType = "client"

// ContextWithClient returns a context carrying the client. The CLI stores the
// client built from the connection flags this way so every command shares one
// instance.
func ContextWithClient(ctx context.Context, client *Client) context.Context {
	return context.WithValue(ctx, contextKey, client)
}

// MustClientFromContext returns the client stored with ContextWithClient and
// panics when there is none.
func MustClientFromContext(ctx context.Context) *Client {
	cl, isClient := ctx.Value(contextKey).(*Client)
	if !isClient {
		panic("could not find client in the context")
	}
	return cl
}
