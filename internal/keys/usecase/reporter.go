package usecase

import (
	"context"
	"log/slog"

	"github.com/allisson/keyshred/internal/errors"
	keysDomain "github.com/allisson/keyshred/internal/keys/domain"
)

// LogReporter writes shred outcomes to a structured logger. not_found is logged
// at info level because an already-destroyed key is an expected steady state.
type LogReporter struct {
	logger *slog.Logger
}

// NewLogReporter creates a LogReporter.
func NewLogReporter(logger *slog.Logger) *LogReporter {
	return &LogReporter{logger: logger}
}

// Report logs the outcome. It never fails.
func (r *LogReporter) Report(ctx context.Context, outcome keysDomain.ShredOutcome) error {
	attrs := []slog.Attr{
		slog.String("key_id", outcome.KeyID),
		slog.String("region", outcome.Region),
		slog.String("classification", string(outcome.Classification)),
		slog.Int64("elapsed_us", outcome.ElapsedMicros()),
	}

	switch outcome.Classification {
	case keysDomain.ClassificationSuccess:
		attrs = append(attrs, slog.Bool("verified", outcome.Verified))
		r.logger.LogAttrs(ctx, slog.LevelInfo, "key shredded", attrs...)
	case keysDomain.ClassificationSlowWarning:
		attrs = append(attrs, slog.Bool("verified", outcome.Verified))
		r.logger.LogAttrs(ctx, slog.LevelWarn, "key shredded but exceeded latency threshold", attrs...)
	default:
		r.logger.LogAttrs(ctx, slog.LevelInfo, "key not found, already destroyed", attrs...)
	}
	return nil
}

// MultiReporter fans an outcome out to several reporters. Every reporter is
// called even when an earlier one fails.
type MultiReporter []OutcomeReporter

// Report forwards the outcome to each reporter and joins their errors.
func (m MultiReporter) Report(ctx context.Context, outcome keysDomain.ShredOutcome) error {
	var errs []error
	for _, r := range m {
		if r == nil {
			continue
		}
		if err := r.Report(ctx, outcome); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
