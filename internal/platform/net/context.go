// Package net holds transport-neutral request plumbing: ids and the reply envelope
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"

	"alaynorm/internal/platform/logger"
)

// WithRequest stores reqID where chi and the logger both find it
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	return logger.WithRequest(ctx, reqID)
}

// RequestID returns the request id on ctx, or ""
func RequestID(ctx context.Context) string { return chimw.GetReqID(ctx) }
