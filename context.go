package multisig

import (
	"context"

	"github.com/iov-one/multisig/errors"
)

// Context is just an alias for the standard implementation. We use
// functions to extend it to our domain.
//
// There exist two functions for every value T we want to support in
// Context:
//
//	WithT(Context, T) Context
//	GetT(Context) (val T, ok bool)
type Context = context.Context

type contextKey int

const (
	contextKeyHeight contextKey = iota
)

// WithHeight sets the block height for the Context. Panics if the height
// was already set to avoid lower-level code overwriting the value.
func WithHeight(ctx Context, height int64) Context {
	if _, ok := GetHeight(ctx); ok {
		panic("block height already set")
	}
	return context.WithValue(ctx, contextKeyHeight, height)
}

// GetHeight returns the current block height and whether it was set.
func GetHeight(ctx Context) (int64, bool) {
	val, ok := ctx.Value(contextKeyHeight).(int64)
	return val, ok
}

// MustHeight returns the block height or an error when the context does
// not carry one. Operations that record block heights require it.
func MustHeight(ctx Context) (int64, error) {
	height, ok := GetHeight(ctx)
	if !ok {
		return 0, errors.Wrap(errors.ErrInput, "context without block height")
	}
	return height, nil
}
