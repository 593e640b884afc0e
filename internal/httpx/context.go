package httpx

import (
	"context"
	"net/http"
)

type contextKey string

const (
	usernameKey  contextKey = "username"
	roleKey      contextKey = "role"
	requestIDKey contextKey = "requestID"
)

// UsernameFrom retrieves the authenticated username from the request
// context, or "" for anonymous requests.
func UsernameFrom(r *http.Request) string {
	if v, ok := r.Context().Value(usernameKey).(string); ok {
		return v
	}
	return ""
}

// RoleFrom retrieves the authenticated role from the request context.
func RoleFrom(r *http.Request) string {
	if v, ok := r.Context().Value(roleKey).(string); ok {
		return v
	}
	return ""
}

// ContextWithUser returns a new context carrying the username and role.
func ContextWithUser(ctx context.Context, username, role string) context.Context {
	ctx = context.WithValue(ctx, usernameKey, username)
	return context.WithValue(ctx, roleKey, role)
}

// RequestIDFrom retrieves the request ID from the request context.
func RequestIDFrom(r *http.Request) string {
	if v, ok := r.Context().Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}

// ContextWithRequestID returns a new context carrying the request ID.
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}
