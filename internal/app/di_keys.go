package app

import (
	"fmt"
	"sync"

	keysHTTP "github.com/allisson/keyshred/internal/keys/http"
	keysRepository "github.com/allisson/keyshred/internal/keys/repository"
	keysService "github.com/allisson/keyshred/internal/keys/service"
	keysUseCase "github.com/allisson/keyshred/internal/keys/usecase"
	"github.com/allisson/keyshred/internal/metrics"
)

// keyComponents groups the key registry dependencies held by the Container.
type keyComponents struct {
	keyRegistry      *keysRepository.MemoryKeyRegistry
	shredCoordinator *keysUseCase.ShredCoordinator
	nodeUseCase      keysUseCase.NodeUseCase
	keyUnwrapper     keysService.KeyUnwrapper
	keyHandler       *keysHTTP.KeyHandler

	keyRegistryInit      sync.Once
	shredCoordinatorInit sync.Once
	nodeUseCaseInit      sync.Once
	keyUnwrapperInit     sync.Once
	keyHandlerInit       sync.Once
}

// KeyRegistry returns the node's in-memory key registry.
func (c *Container) KeyRegistry() *keysRepository.MemoryKeyRegistry {
	c.keyRegistryInit.Do(func() {
		c.keyRegistry = c.initKeyRegistry()
	})
	return c.keyRegistry
}

// ShredCoordinator returns the coordinator that destroys keys and reports outcomes.
func (c *Container) ShredCoordinator() (*keysUseCase.ShredCoordinator, error) {
	var err error
	c.shredCoordinatorInit.Do(func() {
		c.shredCoordinator, err = c.initShredCoordinator()
		if err != nil {
			c.initErrors["shredCoordinator"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["shredCoordinator"]; exists {
		return nil, storedErr
	}
	return c.shredCoordinator, nil
}

// NodeUseCase returns the node use case.
func (c *Container) NodeUseCase() (keysUseCase.NodeUseCase, error) {
	var err error
	c.nodeUseCaseInit.Do(func() {
		c.nodeUseCase, err = c.initNodeUseCase()
		if err != nil {
			c.initErrors["nodeUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["nodeUseCase"]; exists {
		return nil, storedErr
	}
	return c.nodeUseCase, nil
}

// KeyUnwrapper returns the KMS unwrapper, or nil when KMS_KEY_URI is not set.
func (c *Container) KeyUnwrapper() (keysService.KeyUnwrapper, error) {
	var err error
	c.keyUnwrapperInit.Do(func() {
		c.keyUnwrapper, err = c.initKeyUnwrapper()
		if err != nil {
			c.initErrors["keyUnwrapper"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["keyUnwrapper"]; exists {
		return nil, storedErr
	}
	return c.keyUnwrapper, nil
}

// KeyHandler returns the HTTP handler for provisioning and alerts.
func (c *Container) KeyHandler() (*keysHTTP.KeyHandler, error) {
	var err error
	c.keyHandlerInit.Do(func() {
		c.keyHandler, err = c.initKeyHandler()
		if err != nil {
			c.initErrors["keyHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["keyHandler"]; exists {
		return nil, storedErr
	}
	return c.keyHandler, nil
}

// initKeyRegistry creates the registry for the configured region.
func (c *Container) initKeyRegistry() *keysRepository.MemoryKeyRegistry {
	return keysRepository.NewMemoryKeyRegistry(keysRepository.RegistryConfig{
		Region:            c.config.NodeRegion,
		MaxKeySize:        c.config.KeyMaxSize,
		RequireMemoryLock: c.config.MemoryLockRequired,
	})
}

// initShredCoordinator creates the coordinator with a reporter that logs every
// outcome and, when auditing is on, persists a signed record.
func (c *Container) initShredCoordinator() (*keysUseCase.ShredCoordinator, error) {
	logger := c.Logger()

	reporters := keysUseCase.MultiReporter{keysUseCase.NewLogReporter(logger)}

	auditUseCase, err := c.AuditUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get audit use case for shred coordinator: %w", err)
	}
	if auditUseCase != nil {
		reporters = append(reporters, auditUseCase)
	}

	return keysUseCase.NewShredCoordinator(c.config.ShredSlowThreshold, reporters, logger), nil
}

// initNodeUseCase creates the node, wraps it with metrics and exports the live key gauge.
func (c *Container) initNodeUseCase() (keysUseCase.NodeUseCase, error) {
	logger := c.Logger()

	coordinator, err := c.ShredCoordinator()
	if err != nil {
		return nil, fmt.Errorf("failed to get shred coordinator for node use case: %w", err)
	}

	node, err := keysUseCase.NewNode(c.KeyRegistry(), coordinator, c.config.ShredAllConcurrency, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create node: %w", err)
	}

	if !c.config.MetricsEnabled {
		return node, nil
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for node use case: %w", err)
	}

	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for node use case: %w", err)
	}
	err = metrics.RegisterLiveKeysGauge(provider.MeterProvider(), c.config.MetricsNamespace, node.Len)
	if err != nil {
		return nil, err
	}

	return keysUseCase.NewNodeUseCaseWithMetrics(node, businessMetrics), nil
}

// initKeyUnwrapper opens the KMS keeper used for wrapped provisioning.
func (c *Container) initKeyUnwrapper() (keysService.KeyUnwrapper, error) {
	if c.config.KMSKeyURI == "" {
		return nil, nil
	}

	unwrapper, err := keysService.NewKMSUnwrapper(c.ctx, c.config.KMSKeyURI, c.Logger())
	if err != nil {
		return nil, fmt.Errorf("failed to create kms unwrapper: %w", err)
	}
	return unwrapper, nil
}

// initKeyHandler creates the key HTTP handler.
func (c *Container) initKeyHandler() (*keysHTTP.KeyHandler, error) {
	nodeUseCase, err := c.NodeUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get node use case for key handler: %w", err)
	}

	unwrapper, err := c.KeyUnwrapper()
	if err != nil {
		return nil, fmt.Errorf("failed to get key unwrapper for key handler: %w", err)
	}

	return keysHTTP.NewKeyHandler(nodeUseCase, unwrapper, c.config.KeyMaxSize, c.Logger()), nil
}
