package tracing

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func readRecords(t *testing.T, path string) []InvocationRecord {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var out []InvocationRecord
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var rec InvocationRecord
		require.NoError(t, json.Unmarshal(sc.Bytes(), &rec))
		out = append(out, rec)
	}
	require.NoError(t, sc.Err())
	return out
}

func TestFileExporter_WritesInvocationRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "traces.jsonl")
	exp, err := NewFileExporter(path)
	require.NoError(t, err)

	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	parent := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: trace.TraceID{1},
		SpanID:  trace.SpanID{1},
	})
	stubs := tracetest.SpanStubs{
		{
			Name: SpanPrefixInvoke + "vscode.open",
			SpanContext: trace.NewSpanContext(trace.SpanContextConfig{
				TraceID: trace.TraceID{1},
				SpanID:  trace.SpanID{2},
			}),
			Parent:    parent,
			StartTime: start,
			EndTime:   start.Add(1500 * time.Microsecond),
			Status:    sdktrace.Status{Code: codes.Error, Description: "boom"},
			Attributes: []attribute.KeyValue{
				attribute.String(AttrCommandID, "vscode.open"),
				attribute.String(AttrInvocationID, "inv-1"),
				attribute.Int(AttrArgCount, 2),
			},
		},
		{
			Name:      "plain",
			StartTime: start,
			EndTime:   start,
			Status:    sdktrace.Status{Code: codes.Ok},
		},
	}
	require.NoError(t, exp.ExportSpans(context.Background(), stubs.Snapshots()))
	require.NoError(t, exp.ExportSpans(context.Background(), nil))
	require.NoError(t, exp.Shutdown(context.Background()))
	require.NoError(t, exp.Shutdown(context.Background()))

	records := readRecords(t, path)
	require.Len(t, records, 2)

	rec := records[0]
	require.Equal(t, "vscode.open", rec.Command)
	require.Equal(t, "inv-1", rec.InvocationID)
	require.Equal(t, parent.SpanID().String(), rec.ParentSpanID)
	require.Equal(t, "ERROR", rec.Status)
	require.Equal(t, "boom", rec.Error)
	require.InDelta(t, 1.5, rec.DurationMs, 0.001)
	require.Equal(t, map[string]any{AttrArgCount: float64(2)}, rec.Attributes)

	require.Equal(t, "OK", records[1].Status)
	require.Empty(t, records[1].Command)
	require.Empty(t, records[1].ParentSpanID)
}

func TestFileExporter_Appends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "traces.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"earlier"}`+"\n"), 0600))

	exp, err := NewFileExporter(path)
	require.NoError(t, err)
	require.NoError(t, exp.ExportSpans(context.Background(), tracetest.SpanStubs{{Name: "later"}}.Snapshots()))
	require.NoError(t, exp.Shutdown(context.Background()))

	records := readRecords(t, path)
	require.Len(t, records, 2)
	require.Equal(t, "earlier", records[0].Name)
	require.Equal(t, "later", records[1].Name)
}

func TestFileExporter_ExportAfterShutdown(t *testing.T) {
	exp, err := NewFileExporter(filepath.Join(t.TempDir(), "traces.jsonl"))
	require.NoError(t, err)
	require.NoError(t, exp.Shutdown(context.Background()))

	err = exp.ExportSpans(context.Background(), tracetest.SpanStubs{{Name: "late"}}.Snapshots())
	require.ErrorContains(t, err, "closed")
}
