package handlers

import (
	"encoding/json"
	"fmt"

	"github.com/damn090909-boop/Simple-Game/pkg/api"
)

// TypedHandlerFunc is a handler working on an already decoded payload.
type TypedHandlerFunc[T any] func(ctx Context, payload T) (Result, error)

// EmptyHandlerFunc is a handler that takes no payload (INIT).
type EmptyHandlerFunc func(ctx Context) (Result, error)

// WithPayload turns a typed handler into a HandlerFunc, taking care of
// decoding and validation.
func WithPayload[T any](handler TypedHandlerFunc[T]) HandlerFunc {
	return func(ctx Context, raw json.RawMessage) (Result, error) {
		var payload T

		// 1. Decode
		if len(raw) == 0 {
			raw = json.RawMessage("{}")
		}
		if err := json.Unmarshal(raw, &payload); err != nil {
			return Result{}, fmt.Errorf("invalid payload format: %w", err)
		}

		// 2. Validate when the payload knows how
		if v, ok := any(payload).(api.Validator); ok {
			if err := v.Validate(); err != nil {
				return Result{}, fmt.Errorf("validation failed: %w", err)
			}
		}

		// 3. Call the handler
		return handler(ctx, payload)
	}
}

// WithEmptyPayload wraps a handler that ignores its payload.
func WithEmptyPayload(handler EmptyHandlerFunc) HandlerFunc {
	return func(ctx Context, _ json.RawMessage) (Result, error) {
		return handler(ctx)
	}
}
