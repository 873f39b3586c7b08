package ctxutil

import "context"

type ctxKey string

const (
	requestIDKey ctxKey = "request_id"
	operationKey ctxKey = "operation"
)

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithOperation stores the name of the backend operation being performed,
// e.g. "list messages", for logging further down the call chain.
func WithOperation(ctx context.Context, op string) context.Context {
	return context.WithValue(ctx, operationKey, op)
}

// OperationFromCtx extracts the operation name from the context.
// Returns an empty string if absent.
func OperationFromCtx(ctx context.Context) string {
	op, _ := ctx.Value(operationKey).(string)
	return op
}
