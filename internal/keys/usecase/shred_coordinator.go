package usecase

import (
	"context"
	"log/slog"
	"time"

	keysDomain "github.com/allisson/keyshred/internal/keys/domain"
)

// ShredCoordinator runs a destruction request end to end: detach, wipe, release,
// time, classify and report. It keeps no state about destroyed keys and never
// retries.
type ShredCoordinator struct {
	slowThreshold time.Duration
	reporter      OutcomeReporter
	logger        *slog.Logger
	now           func() time.Time
}

// NewShredCoordinator creates a coordinator. A non-positive slowThreshold selects
// keysDomain.DefaultSlowThreshold. reporter may be nil.
func NewShredCoordinator(
	slowThreshold time.Duration,
	reporter OutcomeReporter,
	logger *slog.Logger,
) *ShredCoordinator {
	if slowThreshold <= 0 {
		slowThreshold = keysDomain.DefaultSlowThreshold
	}

	return &ShredCoordinator{
		slowThreshold: slowThreshold,
		reporter:      reporter,
		logger:        logger,
		now:           time.Now,
	}
}

// TriggerShred destroys the key registered under keyID in registry.
//
// The buffer is detached from the registry before it is wiped, so a concurrent
// request for the same id observes not_found instead of a second wipe, and the
// measured latency does not include contention on the registry lock. Once the
// wipe starts it runs to completion; ctx is only passed to the reporter, with
// cancellation removed.
func (c *ShredCoordinator) TriggerShred(
	ctx context.Context,
	registry KeyRegistry,
	keyID string,
) keysDomain.ShredOutcome {
	req := &shredRequest{keyID: keyID, logger: c.logger}
	requestedAt := c.now()

	req.transition(keysDomain.ShredStateLocating)
	buf, found := registry.RemoveAndDestroy(keyID)

	verified := false
	if found {
		req.transition(keysDomain.ShredStateFound)
		req.transition(keysDomain.ShredStateWiping)
		if err := buf.Wipe(); err != nil {
			c.invariantViolated("wipe of detached key failed", keyID, err)
		}
		verified = buf.Verify()
		if err := buf.Close(); err != nil {
			c.logger.Warn("failed to release key memory",
				slog.String("key_id", keyID),
				slog.Any("error", err),
			)
		}
		req.transition(keysDomain.ShredStateRemoved)
	} else {
		req.transition(keysDomain.ShredStateNotFound)
	}

	elapsed := c.now().Sub(requestedAt)
	outcome := keysDomain.ShredOutcome{
		KeyID:          keyID,
		Region:         registry.Region(),
		Found:          found,
		Verified:       verified,
		Elapsed:        elapsed,
		Classification: keysDomain.Classify(found, elapsed, c.slowThreshold),
		RequestedAt:    requestedAt.UTC(),
	}

	req.transition(keysDomain.ShredStateReporting)
	if c.reporter != nil {
		if err := c.reporter.Report(context.WithoutCancel(ctx), outcome); err != nil {
			c.logger.Error("failed to report shred outcome",
				slog.String("key_id", keyID),
				slog.String("classification", string(outcome.Classification)),
				slog.Any("error", err),
			)
		}
	}
	req.transition(keysDomain.ShredStateDone)

	return outcome
}

func (c *ShredCoordinator) invariantViolated(msg, keyID string, err error) {
	c.logger.Error(msg,
		slog.String("key_id", keyID),
		slog.Any("error", err),
	)
	if panicOnInvariant {
		panic(msg + ": " + err.Error())
	}
}

// shredRequest traces one request through the shred state machine.
type shredRequest struct {
	keyID  string
	state  keysDomain.ShredState
	logger *slog.Logger
}

func (r *shredRequest) transition(next keysDomain.ShredState) {
	if !r.state.CanTransition(next) {
		r.logger.Error("illegal shred state transition",
			slog.String("key_id", r.keyID),
			slog.String("from", r.state.String()),
			slog.String("to", next.String()),
		)
		if panicOnInvariant {
			panic("illegal shred state transition " + r.state.String() + " -> " + next.String())
		}
	}
	r.logger.Debug("shred state",
		slog.String("key_id", r.keyID),
		slog.String("from", r.state.String()),
		slog.String("to", next.String()),
	)
	r.state = next
}
