// Package telemetry exports editor spans over OTLP when an endpoint is configured.
package telemetry

import (
	"context"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const instrumentationName = "timelinedeck/ui"

// Provider hands out the editor's tracer. A nil or disabled Provider yields a no-op tracer.
type Provider struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// New creates an OTLP/HTTP exporting provider for endpoint.
// Returns a disabled provider when endpoint is empty.
func New(ctx context.Context, endpoint, serviceName string) (*Provider, error) {
	if endpoint == "" {
		return &Provider{}, nil
	}
	exporter, err := otlptracehttp.New(ctx, exporterOptions(endpoint)...)
	if err != nil {
		return nil, fmt.Errorf("otlp exporter: %w", err)
	}
	return newProvider(sdktrace.WithBatcher(exporter), serviceName), nil
}

// exporterOptions accepts both endpoint forms seen in OTEL_EXPORTER_OTLP_ENDPOINT:
// a URL ("http://localhost:4318") or a bare host:port, which is sent over plain HTTP.
func exporterOptions(endpoint string) []otlptracehttp.Option {
	if isEndpointURL(endpoint) {
		return []otlptracehttp.Option{otlptracehttp.WithEndpointURL(endpoint)}
	}
	return []otlptracehttp.Option{
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	}
}

func isEndpointURL(endpoint string) bool {
	u, err := url.Parse(endpoint)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func newProvider(opt sdktrace.TracerProviderOption, serviceName string) *Provider {
	if serviceName == "" {
		serviceName = "timelinedeck"
	}
	res := resource.NewSchemaless(attribute.String("service.name", serviceName))
	tp := sdktrace.NewTracerProvider(opt, sdktrace.WithResource(res))
	return &Provider{
		provider: tp,
		tracer:   tp.Tracer(instrumentationName),
	}
}

// Enabled reports whether spans are exported.
func (p *Provider) Enabled() bool {
	return p != nil && p.provider != nil
}

// Tracer returns the provider's tracer, or a no-op tracer when disabled.
func (p *Provider) Tracer() oteltrace.Tracer {
	if !p.Enabled() {
		return noop.NewTracerProvider().Tracer(instrumentationName)
	}
	return p.tracer
}

// Shutdown flushes and closes the exporter.
func (p *Provider) Shutdown(ctx context.Context) error {
	if !p.Enabled() {
		return nil
	}
	return p.provider.Shutdown(ctx)
}

// Attrs maps plain keys onto the timeline.* attribute namespace.
func Attrs(kv map[string]string) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, len(kv))
	for k, v := range kv {
		var key string
		switch k {
		case "task_id":
			key = "timeline.task.id"
		case "row_id":
			key = "timeline.row.id"
		case "month":
			key = "timeline.month"
		default:
			key = "timeline." + k
		}
		attrs = append(attrs, attribute.String(key, v))
	}
	return attrs
}
