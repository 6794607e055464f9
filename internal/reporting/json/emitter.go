package json

import (
	"context"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"

	"github.com/olusolaa/azmgmt/internal/core/ports"
	apperrors "github.com/olusolaa/azmgmt/internal/errors"
)

const EmitterTypeJSON = "json"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Emitter writes every output object as one indented JSON document.
type Emitter struct {
	writer io.Writer
	logger ports.Logger
}

func NewEmitter(w io.Writer, logger ports.Logger) (*Emitter, error) {
	if logger == nil {
		return nil, apperrors.New(apperrors.CodeInternal, "logger cannot be nil for JSON emitter")
	}
	if w == nil {
		w = os.Stdout
	}
	return &Emitter{writer: w, logger: logger}, nil
}

func (e *Emitter) Emit(ctx context.Context, value any) error {
	if ctx.Err() != nil {
		e.logger.Warnf(ctx, "JSON output cancelled.")
		return ctx.Err()
	}

	encoder := json.NewEncoder(e.writer)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(value); err != nil {
		e.logger.Errorf(ctx, err, "Failed to encode JSON output")
		return apperrors.Wrap(err, apperrors.CodeInternal, "failed to encode JSON output")
	}
	return nil
}
