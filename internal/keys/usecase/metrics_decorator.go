package usecase

import (
	"context"
	"time"

	keysDomain "github.com/allisson/keyshred/internal/keys/domain"
	"github.com/allisson/keyshred/internal/metrics"
)

// nodeUseCaseWithMetrics decorates NodeUseCase with metrics instrumentation.
type nodeUseCaseWithMetrics struct {
	next    NodeUseCase
	metrics metrics.BusinessMetrics
}

// NewNodeUseCaseWithMetrics wraps a NodeUseCase with metrics recording.
func NewNodeUseCaseWithMetrics(useCase NodeUseCase, m metrics.BusinessMetrics) NodeUseCase {
	return &nodeUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (n *nodeUseCaseWithMetrics) Region() string {
	return n.next.Region()
}

// Insert records metrics for key provisioning operations.
func (n *nodeUseCaseWithMetrics) Insert(ctx context.Context, id string, material []byte) error {
	start := time.Now()
	err := n.next.Insert(ctx, id, material)

	status := "success"
	if err != nil {
		status = "error"
	}

	n.metrics.RecordOperation(ctx, "keys", "key_insert", status)
	n.metrics.RecordDuration(ctx, "keys", "key_insert", time.Since(start), status)

	return err
}

// Lookup records metrics for key metadata lookups.
func (n *nodeUseCaseWithMetrics) Lookup(ctx context.Context, id string) (keysDomain.KeyInfo, error) {
	start := time.Now()
	info, err := n.next.Lookup(ctx, id)

	status := "success"
	if err != nil {
		status = "error"
	}

	n.metrics.RecordOperation(ctx, "keys", "key_lookup", status)
	n.metrics.RecordDuration(ctx, "keys", "key_lookup", time.Since(start), status)

	return info, err
}

func (n *nodeUseCaseWithMetrics) Len(ctx context.Context) int {
	return n.next.Len(ctx)
}

// TriggerShred records the shred classification as status and the coordinator's
// measured elapsed time as duration.
func (n *nodeUseCaseWithMetrics) TriggerShred(ctx context.Context, id string) keysDomain.ShredOutcome {
	outcome := n.next.TriggerShred(ctx, id)
	n.recordShred(ctx, "key_shred", outcome)
	return outcome
}

// ShredAll records one shred sample per destroyed key plus the overall call.
func (n *nodeUseCaseWithMetrics) ShredAll(ctx context.Context) []keysDomain.ShredOutcome {
	start := time.Now()
	outcomes := n.next.ShredAll(ctx)

	for _, outcome := range outcomes {
		n.recordShred(ctx, "key_shred", outcome)
	}
	n.metrics.RecordOperation(ctx, "keys", "key_shred_all", "success")
	n.metrics.RecordDuration(ctx, "keys", "key_shred_all", time.Since(start), "success")

	return outcomes
}

func (n *nodeUseCaseWithMetrics) Close(ctx context.Context) error {
	return n.next.Close(ctx)
}

func (n *nodeUseCaseWithMetrics) recordShred(ctx context.Context, operation string, outcome keysDomain.ShredOutcome) {
	status := string(outcome.Classification)
	n.metrics.RecordOperation(ctx, "keys", operation, status)
	n.metrics.RecordDuration(ctx, "keys", operation, outcome.Elapsed, status)
}
