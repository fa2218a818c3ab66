package apiv1

import (
	"context"

	"google.golang.org/grpc/metadata"
)

// SessionMetadataKey is the gRPC metadata header that names the session an
// RPC applies to.
const SessionMetadataKey = "x-session-id"

// WithSession returns an outgoing context that targets the given session.
func WithSession(ctx context.Context, sessionID string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, SessionMetadataKey, sessionID)
}

// SessionFromContext returns the session id of an incoming RPC.
func SessionFromContext(ctx context.Context) (string, bool) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", false
	}
	values := md.Get(SessionMetadataKey)
	if len(values) == 0 || values[0] == "" {
		return "", false
	}
	return values[0], true
}
