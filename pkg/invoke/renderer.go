// Package invoke is the boundary to the external renderer. A Renderer is
// called once per render request with a fully packed, valid argument sequence
// and blocks until the renderer returns.
package invoke

import (
	"context"
	"errors"

	"github.com/goliatone/go-scenegen/pkg/pack"
)

// ErrNoArgs is returned when a renderer is invoked with an empty sequence.
var ErrNoArgs = errors.New("invoke: empty argument sequence")

// Renderer hands a packed scene to a renderer. Render is synchronous; once
// started it cannot be cancelled and has no timeout, the context is only
// checked before the call is made.
type Renderer interface {
	Name() string
	Render(ctx context.Context, args pack.Args) error
}

// Func adapts an in-process render function to the Renderer interface.
type Func struct {
	name string
	fn   func(ctx context.Context, args pack.Args) error
}

// NewFunc wraps fn under the given registry name.
func NewFunc(name string, fn func(ctx context.Context, args pack.Args) error) *Func {
	return &Func{name: name, fn: fn}
}

// Name reports the renderer identifier.
func (f *Func) Name() string {
	return f.name
}

// Render calls the wrapped function.
func (f *Func) Render(ctx context.Context, args pack.Args) error {
	if err := precheck(ctx, args); err != nil {
		return err
	}
	if f.fn == nil {
		return errors.New("invoke: render func is nil")
	}
	return f.fn(ctx, args)
}

func precheck(ctx context.Context, args pack.Args) error {
	if ctx == nil {
		return errors.New("invoke: context is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(args) == 0 {
		return ErrNoArgs
	}
	return nil
}
