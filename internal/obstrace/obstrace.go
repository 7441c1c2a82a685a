// Package obstrace wraps the three outbound suspension points named in
// §5 (venue resolver, LLM fallback, chain RPC) with otel spans. No
// exporter is wired by default — callers that want the spans shipped
// somewhere register their own otel SDK exporter and tracer provider;
// this package only standardizes the span names and attributes used at
// each suspension point.
package obstrace

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/solintent/engine"

func tracer() trace.Tracer { return otel.Tracer(tracerName) }

// StartVenueResolve starts a span around a venue-resolver HTTP call.
func StartVenueResolve(ctx context.Context, kind, identifier string) (context.Context, trace.Span) {
	return tracer().Start(ctx, "venue.resolve",
		trace.WithAttributes(
			attribute.String("venue.kind", kind),
			attribute.String("venue.identifier", identifier),
		),
	)
}

// StartLLMFallback starts a span around an LLM healing call.
func StartLLMFallback(ctx context.Context, promptLen int) (context.Context, trace.Span) {
	return tracer().Start(ctx, "llmfallback.resolve",
		trace.WithAttributes(attribute.Int("prompt.length", promptLen)),
	)
}

// StartChainRPC starts a span around an outbound chain RPC call.
func StartChainRPC(ctx context.Context, method string) (context.Context, trace.Span) {
	return tracer().Start(ctx, "chainrpc."+method,
		trace.WithAttributes(attribute.String("rpc.method", method)),
	)
}
