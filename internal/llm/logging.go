package llm

import (
	"context"
	"time"

	"github.com/abhisek/conectivo/internal/logging"
)

// LoggingProvider records each call with its purpose, latency and usage.
type LoggingProvider struct {
	inner Provider
	log   *logging.Logger
}

// WithLogging wraps p. A nil logger discards records.
func WithLogging(p Provider, log *logging.Logger) Provider {
	if log == nil {
		log = logging.Nop()
	}
	return &LoggingProvider{inner: p, log: log}
}

func (l *LoggingProvider) ModelID() string { return l.inner.ModelID() }

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	fields := []interface{}{
		"purpose", PurposeFrom(ctx),
		"model", l.inner.ModelID(),
		"latency_ms", time.Since(start).Milliseconds(),
	}
	if req.Schema != nil {
		fields = append(fields, "schema", req.Schema.Name)
	}
	if err != nil {
		l.log.Warn("llm request failed", append(fields, "error", err)...)
		return nil, err
	}

	l.log.Debug("llm request",
		append(fields,
			"served_by", resp.Model,
			"input_tokens", resp.Usage.InputTokens,
			"output_tokens", resp.Usage.OutputTokens,
			"stop_reason", resp.StopReason,
		)...,
	)
	return resp, nil
}
