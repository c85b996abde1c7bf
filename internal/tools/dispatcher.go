package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"

	"github.com/bobmcallan/coolify-mcp/internal/common"
	"github.com/bobmcallan/coolify-mcp/internal/coolify"
)

const instrumentationName = "github.com/bobmcallan/coolify-mcp/internal/tools"

// Outcome labels recorded on the tool call counter.
const (
	outcomeSuccess       = "success"
	outcomeBackendError  = "backend_error"
	outcomeDispatchError = "dispatch_error"
	outcomeUnknownTool   = "unknown_tool"
)

// Sender performs one backend request. *coolify.Client implements it.
type Sender interface {
	Send(ctx context.Context, path, method string, body any) coolify.Result
}

// Dispatcher resolves tool invocations against the registry and sends the
// resulting request. It holds no mutable state and is safe for concurrent use.
type Dispatcher struct {
	registry *Registry
	sender   Sender
	logger   *common.Logger
	tracer   trace.Tracer
	calls    metric.Int64Counter
}

// NewDispatcher creates a dispatcher over reg that sends through sender.
func NewDispatcher(reg *Registry, sender Sender, logger *common.Logger) *Dispatcher {
	calls, err := otel.Meter(instrumentationName).Int64Counter("coolify_mcp.tool.calls",
		metric.WithDescription("Tool invocations by tool name and outcome"))
	if err != nil {
		logger.Warn().Str("error", err.Error()).Msg("tool call counter unavailable")
		calls, _ = noop.NewMeterProvider().Meter(instrumentationName).Int64Counter("coolify_mcp.tool.calls")
	}

	return &Dispatcher{
		registry: reg,
		sender:   sender,
		logger:   logger,
		tracer:   otel.Tracer(instrumentationName),
		calls:    calls,
	}
}

// ListTools returns the advertised tool definitions in registry order.
func (d *Dispatcher) ListTools() []Definition {
	return d.registry.Definitions()
}

// Invoke runs the named tool and returns the pretty-printed JSON payload.
// Backend failures are reported inside the payload with a nil error; a
// non-nil error means the request could not be built or the result could
// not be serialized.
func (d *Dispatcher) Invoke(ctx context.Context, name string, args map[string]any) (string, error) {
	ctx, span := d.tracer.Start(ctx, "tool.invoke", trace.WithAttributes(attribute.String("tool.name", name)))
	defer span.End()

	logger := d.logger.WithCorrelationId(uuid.New().String())

	route, ok := d.registry.Get(name)
	if !ok {
		logger.Warn().Str("tool", name).Msg("unknown tool")
		d.record(ctx, name, outcomeUnknownTool)
		return encode(map[string]string{"error": "Unknown tool: " + name})
	}

	spec, err := route.Build(args)
	if err != nil {
		logger.Warn().Str("tool", name).Str("error", err.Error()).Msg("failed to build request")
		span.SetStatus(codes.Error, err.Error())
		d.record(ctx, name, outcomeDispatchError)
		return "", fmt.Errorf("tool %s: %w", name, err)
	}

	logger.Debug().Str("tool", name).Str("method", spec.Method).Str("path", spec.Path).Msg("dispatching tool call")

	result := d.sender.Send(ctx, spec.Path, spec.Method, spec.Body)

	span.SetAttributes(attribute.Bool("tool.success", result.Success))
	if result.Success {
		d.record(ctx, name, outcomeSuccess)
	} else {
		logger.Info().Str("tool", name).Str("error", result.Error).Msg("backend reported failure")
		d.record(ctx, name, outcomeBackendError)
	}

	out, err := encode(result)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return "", fmt.Errorf("tool %s: %w", name, err)
	}
	return out, nil
}

func (d *Dispatcher) record(ctx context.Context, name, outcome string) {
	d.calls.Add(ctx, 1, metric.WithAttributes(
		attribute.String("tool", name),
		attribute.String("outcome", outcome),
	))
}

// encode renders v as indented JSON.
func encode(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize result: %w", err)
	}
	return string(data), nil
}
