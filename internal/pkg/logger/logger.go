package logger

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// WithAction tags the context logger with the handler action so every log
// line of a request flow carries it.
func WithAction(ctx context.Context, action string) context.Context {
	return ctxzap.ToContext(ctx, ctxzap.Extract(ctx).With(zap.String("action", action)))
}
