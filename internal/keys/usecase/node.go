package usecase

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	keysDomain "github.com/allisson/keyshred/internal/keys/domain"
)

// DefaultShredAllConcurrency bounds the number of keys wiped in parallel by ShredAll.
const DefaultShredAllConcurrency = 8

// Node binds a region's key registry to a shred coordinator. It owns the
// registry for its whole lifetime; there is no process-wide registry.
type Node struct {
	registry            KeyRegistry
	coordinator         *ShredCoordinator
	shredAllConcurrency int
	logger              *slog.Logger
}

// NewNode creates a node over registry. The region is taken from the registry
// and must not be empty.
func NewNode(
	registry KeyRegistry,
	coordinator *ShredCoordinator,
	shredAllConcurrency int,
	logger *slog.Logger,
) (*Node, error) {
	if registry.Region() == "" {
		return nil, keysDomain.ErrRegionRequired
	}
	if shredAllConcurrency <= 0 {
		shredAllConcurrency = DefaultShredAllConcurrency
	}

	return &Node{
		registry:            registry,
		coordinator:         coordinator,
		shredAllConcurrency: shredAllConcurrency,
		logger:              logger.With(slog.String("region", registry.Region())),
	}, nil
}

// Region returns the node's region.
func (n *Node) Region() string {
	return n.registry.Region()
}

// Insert provisions a key into the node's registry.
func (n *Node) Insert(ctx context.Context, id string, material []byte) error {
	length := len(material)
	if err := n.registry.Insert(id, material); err != nil {
		return err
	}

	n.logger.DebugContext(ctx, "key provisioned",
		slog.String("key_id", id),
		slog.Int("length", length),
	)
	return nil
}

// Lookup returns the metadata of a live key.
func (n *Node) Lookup(ctx context.Context, id string) (keysDomain.KeyInfo, error) {
	info, ok := n.registry.Lookup(id)
	if !ok {
		return keysDomain.KeyInfo{}, keysDomain.ErrKeyNotFound
	}
	return info, nil
}

// Len returns the number of live keys.
func (n *Node) Len(ctx context.Context) int {
	return n.registry.Len()
}

// TriggerShred destroys the key registered under id.
func (n *Node) TriggerShred(ctx context.Context, id string) keysDomain.ShredOutcome {
	n.logger.InfoContext(ctx, "shred alert received", slog.String("key_id", id))
	return n.coordinator.TriggerShred(ctx, n.registry, id)
}

// ShredAll destroys every key registered when the call starts, running at
// most shredAllConcurrency wipes at once. Each key goes through the regular
// detach-then-wipe protocol, so a concurrent TriggerShred for one of them
// yields not_found on one side. Keys inserted after the snapshot survive.
func (n *Node) ShredAll(ctx context.Context) []keysDomain.ShredOutcome {
	ids := n.registry.IDs()
	n.logger.InfoContext(ctx, "shred-all alert received", slog.Int("key_count", len(ids)))

	outcomes := make([]keysDomain.ShredOutcome, len(ids))

	var g errgroup.Group
	g.SetLimit(n.shredAllConcurrency)
	for i, id := range ids {
		g.Go(func() error {
			outcomes[i] = n.coordinator.TriggerShred(ctx, n.registry, id)
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}

// Close destroys all remaining keys through the shred protocol, then tears the
// registry down so later inserts are rejected.
func (n *Node) Close(ctx context.Context) error {
	outcomes := n.ShredAll(ctx)
	n.logger.InfoContext(ctx, "node closed", slog.Int("keys_destroyed", len(outcomes)))
	return n.registry.Close()
}
