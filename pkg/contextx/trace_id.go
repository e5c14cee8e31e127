package contextx

import (
	"context"
	"fmt"

	"github.com/rs/xid"
)

// TraceID correlates the log lines and the error response of one request.
type TraceID string

type contextKeyTraceID struct{}

// NewTraceID returns a globally unique, time sortable id.
func NewTraceID() TraceID {
	return TraceID(xid.New().String())
}

func (t TraceID) String() string {
	return string(t)
}

func WithTraceID(ctx context.Context, traceID TraceID) context.Context {
	return context.WithValue(ctx, contextKeyTraceID{}, traceID)
}

func TraceIDFromContext(ctx context.Context) (TraceID, error) {
	traceID, ok := ctx.Value(contextKeyTraceID{}).(TraceID)
	if !ok {
		return "", fmt.Errorf("trace id: %w", ErrNoValue)
	}

	return traceID, nil
}
