package database

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/thenoetrevino/kanban/internal/database"

// startSpan opens a span named "store.<op>". The tracer is resolved on each
// call so a provider installed after construction is honoured.
func startSpan(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, "store."+op, trace.WithAttributes(attrs...))
}

// endSpan records err on span, if any, and ends it.
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func boardAttr(id int64) attribute.KeyValue { return attribute.Int64("board.id", id) }
func listAttr(id int64) attribute.KeyValue  { return attribute.Int64("list.id", id) }
func taskAttr(id int64) attribute.KeyValue  { return attribute.Int64("task.id", id) }
