package logs

import (
	"context"
	"errors"
	"fmt"
)

type Span string

type spanKey struct{}

var SpanKey = spanKey{}

func SpanFromContext(ctx context.Context) Span {
	span, _ := ctx.Value(SpanKey).(Span)
	return span
}

// WrapSpan annotates err with the span carried by ctx, if any.
func WrapSpan(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	span := SpanFromContext(ctx)
	if span == "" {
		return err
	}
	return errors.Join(err, fmt.Errorf("span: %s", span))
}
