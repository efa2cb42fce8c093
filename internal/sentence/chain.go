package sentence

import (
	"context"

	"github.com/abhisek/conectivo/internal/logging"
)

// Chain tries a primary validator and falls back to the local heuristic
// when the primary fails.
type Chain struct {
	primary  Validator
	fallback Validator
	log      *logging.Logger
}

var _ Validator = (*Chain)(nil)

// NewChain builds a chain. A nil primary yields a local-only chain and a
// nil logger discards warnings.
func NewChain(primary Validator, log *logging.Logger) *Chain {
	if log == nil {
		log = logging.Nop()
	}
	return &Chain{primary: primary, fallback: Local{}, log: log}
}

// Remote reports whether the chain consults a remote validator.
func (c *Chain) Remote() bool { return c.primary != nil }

// Validate implements Validator. The returned error is always nil.
func (c *Chain) Validate(ctx context.Context, sentence, connective string) (Verdict, error) {
	if c.primary != nil {
		v, err := c.primary.Validate(ctx, sentence, connective)
		if err == nil {
			return v, nil
		}
		c.log.Warn("remote validation failed, using local fallback", "error", err)
	}
	return c.fallback.Validate(ctx, sentence, connective)
}
