package tracing

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestStartSpan(t *testing.T) {
	require.NoError(t, Shutdown(context.Background()))
	exporter := tracetest.NewInMemoryExporter()
	require.NoError(t, InitWithExporter("s3flow", "0.0.1", exporter))

	testCases := []struct {
		name         string
		err          error
		expectedCode codes.Code
	}{
		{name: "action/createBucket", expectedCode: codes.Ok},
		{name: "action/getObject", err: errors.New("NoSuchKey"), expectedCode: codes.Error},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			exporter.Reset()
			_, span := StartSpan(context.Background(), tc.name, KindClient)
			span.WithAttributes(map[string]string{"action.service": "aws/s3"})
			EndSpan(span, tc.err)

			spans := exporter.GetSpans()
			require.Len(t, spans, 1)
			assert.Equal(t, tc.name, spans[0].Name)
			assert.Equal(t, tc.expectedCode, spans[0].Status.Code)
			assert.Contains(t, spans[0].Attributes, attribute.String("action.service", "aws/s3"))
		})
	}
	assert.NoError(t, Shutdown(context.Background()))
}

func TestEndSpan_Nil(t *testing.T) {
	assert.NotPanics(t, func() {
		EndSpan(nil, errors.New("ignored"))
		var span *Span
		span.WithAttributes(map[string]string{"k": "v"})
	})
}

func TestInit_OutputFile(t *testing.T) {
	ctx := context.Background()
	require.NoError(t, Shutdown(ctx))
	dir := t.TempDir()
	traceFile := filepath.Join(dir, "trace.json")
	require.NoError(t, Init("s3flow", "0.0.1", traceFile))

	ignored := filepath.Join(dir, "ignored.json")
	require.NoError(t, Init("s3flow", "0.0.1", ignored))
	_, err := os.Stat(ignored)
	assert.True(t, os.IsNotExist(err))

	_, span := StartSpan(ctx, "action/listBuckets", KindClient)
	EndSpan(span, nil)
	require.NoError(t, Shutdown(ctx))
	assert.NoError(t, Shutdown(ctx))

	data, err := os.ReadFile(traceFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "action/listBuckets")
}
