package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestNew_DisabledWithoutEndpoint(t *testing.T) {
	p, err := New(context.Background(), "", "")
	require.NoError(t, err)
	assert.False(t, p.Enabled())

	_, span := p.Tracer().Start(context.Background(), "noop")
	assert.False(t, span.SpanContext().IsValid())
	span.End()
	assert.NoError(t, p.Shutdown(context.Background()))

	var nilProvider *Provider
	assert.False(t, nilProvider.Enabled())
	assert.NotNil(t, nilProvider.Tracer())
	assert.NoError(t, nilProvider.Shutdown(context.Background()))
}

func TestProvider_ExportsSpans(t *testing.T) {
	exp := tracetest.NewInMemoryExporter()
	p := newProvider(sdktrace.WithSyncer(exp), "test-svc")
	require.True(t, p.Enabled())

	_, span := p.Tracer().Start(context.Background(), "board.add_task")
	span.SetAttributes(Attrs(map[string]string{"task_id": "task-5"})...)
	span.End()

	spans := exp.GetSpans()
	require.NoError(t, p.Shutdown(context.Background()))
	require.Len(t, spans, 1)
	assert.Equal(t, "board.add_task", spans[0].Name)
	assert.Contains(t, spans[0].Attributes, attribute.String("timeline.task.id", "task-5"))
	assert.Contains(t, spans[0].Resource.Attributes(), attribute.String("service.name", "test-svc"))
}

func TestAttrs_Namespacing(t *testing.T) {
	got := Attrs(map[string]string{"row_id": "row-1", "month": "October 2024", "days": "1"})
	assert.ElementsMatch(t, []attribute.KeyValue{
		attribute.String("timeline.row.id", "row-1"),
		attribute.String("timeline.month", "October 2024"),
		attribute.String("timeline.days", "1"),
	}, got)
}

func TestIsEndpointURL(t *testing.T) {
	cases := []struct {
		endpoint string
		want     bool
	}{
		{"http://localhost:4318", true},
		{"https://collector.example.com:4318", true},
		{"http://localhost:4318/custom/path", true},
		{"localhost:4318", false},
		{"collector:4318", false},
		{"http://", false},
	}
	for _, tc := range cases {
		if got := isEndpointURL(tc.endpoint); got != tc.want {
			t.Errorf("isEndpointURL(%q) = %v, want %v", tc.endpoint, got, tc.want)
		}
	}
}

// TestNew_ExportsToBothEndpointForms checks that spans reach a collector
// whether the endpoint is given as a URL or as host:port.
func TestNew_ExportsToBothEndpointForms(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && r.URL.Path == "/v1/traces" {
			hits.Add(1)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	for _, endpoint := range []string{srv.URL, strings.TrimPrefix(srv.URL, "http://")} {
		before := hits.Load()
		p, err := New(context.Background(), endpoint, "test-svc")
		require.NoError(t, err, endpoint)
		require.True(t, p.Enabled())

		_, span := p.Tracer().Start(context.Background(), "timeline.change_month")
		span.End()
		require.NoError(t, p.Shutdown(context.Background()), endpoint)
		assert.Greater(t, hits.Load(), before, "no spans received for %s", endpoint)
	}
}
