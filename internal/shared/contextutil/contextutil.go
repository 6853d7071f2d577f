package contextutil

import "context"

// Unexported type untuk keamanan context key
type contextKey string

const requestIDKey contextKey = "request_id"

// WithRequestID menginjeksi Request ID ke context
func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey, rid)
}

// GetRequestID mengambil Request ID dari context.
// Propagasi dilakukan oleh middleware; string kosong berarti tidak ada.
func GetRequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey).(string); ok {
		return rid
	}
	return ""
}
