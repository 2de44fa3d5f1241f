// Package contexthelpers provides typed accessors for request-scoped values.
package contexthelpers

import (
	"context"
	"net/http"
)

type contextKey string

const TraceIDContextKey = contextKey("traceID")
const CurrentPathContextKey = contextKey("currentPath")

// TraceID returns the request trace id or the empty string when none is set.
func TraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// CurrentPath returns the request path stored by the middleware.
func CurrentPath(ctx context.Context) string {
	currentPath, ok := ctx.Value(CurrentPathContextKey).(string)
	if !ok {
		return ""
	}
	return currentPath
}

// SetTraceID stores the trace id on the request context.
func SetTraceID(r *http.Request, traceID string) *http.Request {
	ctx := context.WithValue(r.Context(), TraceIDContextKey, traceID)
	return r.WithContext(ctx)
}

// SetCurrentPath stores the request path on the request context.
func SetCurrentPath(r *http.Request, currentPath string) *http.Request {
	ctx := context.WithValue(r.Context(), CurrentPathContextKey, currentPath)
	return r.WithContext(ctx)
}
