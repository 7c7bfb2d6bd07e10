package invoke

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/goliatone/go-scenegen/pkg/pack"
)

// WriterName is the registry name of the dry-run renderer.
const WriterName = "print"

// WriterRenderer writes the packed sequence instead of rendering it. It is
// the dry-run renderer used to inspect exactly what a real renderer would
// receive.
type WriterRenderer struct {
	out    io.Writer
	format pack.Format
}

// NewWriter builds a dry-run renderer writing to out in format.
func NewWriter(out io.Writer, format pack.Format) (*WriterRenderer, error) {
	if out == nil {
		return nil, errors.New("invoke: writer is required")
	}
	if format == "" {
		format = pack.FormatArgs
	}
	return &WriterRenderer{out: out, format: format}, nil
}

// Name reports the renderer identifier.
func (r *WriterRenderer) Name() string {
	return WriterName
}

// Render encodes args to the configured writer.
func (r *WriterRenderer) Render(ctx context.Context, args pack.Args) error {
	if err := precheck(ctx, args); err != nil {
		return err
	}
	if err := pack.Encode(r.out, args, r.format); err != nil {
		return fmt.Errorf("invoke: write args: %w", err)
	}
	return nil
}
