package otel_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"venue/infras/otel"
	"venue/shared/failure"
)

func record(t *testing.T, fn func(scope otel.Scope)) trace.ReadOnlySpan {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	provider := trace.NewTracerProvider(trace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("test").Start(context.Background(), "booking.Get")
	scope := otel.NewScope(span)

	fn(scope)
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	return spans[0]
}

func TestScope_TraceIfError(t *testing.T) {
	t.Run("reads the error at return time", func(t *testing.T) {
		span := record(t, func(scope otel.Scope) {
			_ = func() (err error) {
				defer scope.TraceIfError(&err)

				return errors.New("connection reset")
			}()
		})

		assert.Equal(t, codes.Error, span.Status().Code)
		assert.Equal(t, "connection reset", span.Status().Description)
	})

	t.Run("nil error leaves status unset", func(t *testing.T) {
		span := record(t, func(scope otel.Scope) {
			var err error
			scope.TraceIfError(&err)
			scope.TraceIfError(nil)
		})

		assert.Equal(t, codes.Unset, span.Status().Code)
	})
}

func TestScope_TraceError_ClientError(t *testing.T) {
	span := record(t, func(scope otel.Scope) {
		scope.TraceError(fmt.Errorf("failed to get booking: %w", failure.NotFound("booking")))
	})

	assert.Equal(t, codes.Unset, span.Status().Code)
	require.Len(t, span.Events(), 1)
	assert.Equal(t, "client error", span.Events()[0].Name)
}

func TestScope_SetAttributes(t *testing.T) {
	span := record(t, func(scope otel.Scope) {
		scope.SetAttributes(map[string]any{
			"booking.id":       "b-1",
			"http.status_code": 201,
			"menu.locked":      true,
			"rental.price":     12.5,
			"recipients":       []string{"a@example.com"},
		})
	})

	attrs := map[string]string{}
	for _, kv := range span.Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}

	assert.Equal(t, "b-1", attrs["booking.id"])
	assert.Equal(t, "201", attrs["http.status_code"])
	assert.Equal(t, "true", attrs["menu.locked"])
	assert.Equal(t, "12.5", attrs["rental.price"])
	assert.Equal(t, `["a@example.com"]`, attrs["recipients"])
}
