package app

import (
	"fmt"
	"sync"

	auditHTTP "github.com/allisson/keyshred/internal/audit/http"
	auditRepository "github.com/allisson/keyshred/internal/audit/repository"
	auditService "github.com/allisson/keyshred/internal/audit/service"
	auditUseCase "github.com/allisson/keyshred/internal/audit/usecase"
)

// auditComponents groups the shred audit trail dependencies held by the Container.
type auditComponents struct {
	shredRecordRepository auditUseCase.ShredRecordRepository
	recordSigner          auditService.RecordSigner
	auditUseCase          auditUseCase.AuditUseCase
	shredRecordHandler    *auditHTTP.ShredRecordHandler

	shredRecordRepositoryInit sync.Once
	recordSignerInit          sync.Once
	auditUseCaseInit          sync.Once
	shredRecordHandlerInit    sync.Once
}

// ShredRecordRepository returns the shred record repository for the configured driver.
func (c *Container) ShredRecordRepository() (auditUseCase.ShredRecordRepository, error) {
	var err error
	c.shredRecordRepositoryInit.Do(func() {
		c.shredRecordRepository, err = c.initShredRecordRepository()
		if err != nil {
			c.initErrors["shredRecordRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["shredRecordRepository"]; exists {
		return nil, storedErr
	}
	return c.shredRecordRepository, nil
}

// RecordSigner returns the shred record signer, or nil when no signing key is configured.
func (c *Container) RecordSigner() (auditService.RecordSigner, error) {
	var err error
	c.recordSignerInit.Do(func() {
		c.recordSigner, err = c.initRecordSigner()
		if err != nil {
			c.initErrors["recordSigner"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["recordSigner"]; exists {
		return nil, storedErr
	}
	return c.recordSigner, nil
}

// AuditUseCase returns the audit use case, or nil when auditing is disabled.
func (c *Container) AuditUseCase() (auditUseCase.AuditUseCase, error) {
	var err error
	c.auditUseCaseInit.Do(func() {
		c.auditUseCase, err = c.initAuditUseCase()
		if err != nil {
			c.initErrors["auditUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["auditUseCase"]; exists {
		return nil, storedErr
	}
	return c.auditUseCase, nil
}

// ShredRecordHandler returns the audit HTTP handler, or nil when auditing is disabled.
func (c *Container) ShredRecordHandler() (*auditHTTP.ShredRecordHandler, error) {
	var err error
	c.shredRecordHandlerInit.Do(func() {
		c.shredRecordHandler, err = c.initShredRecordHandler()
		if err != nil {
			c.initErrors["shredRecordHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["shredRecordHandler"]; exists {
		return nil, storedErr
	}
	return c.shredRecordHandler, nil
}

// initShredRecordRepository creates the repository based on the database driver.
func (c *Container) initShredRecordRepository() (auditUseCase.ShredRecordRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for shred record repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return auditRepository.NewPostgreSQLShredRecordRepository(db), nil
	case "mysql":
		return auditRepository.NewMySQLShredRecordRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initRecordSigner decodes AUDIT_SIGNING_KEY into a signer.
func (c *Container) initRecordSigner() (auditService.RecordSigner, error) {
	key, err := c.config.DecodeAuditSigningKey()
	if err != nil {
		return nil, err
	}
	if key == nil {
		c.Logger().Warn("AUDIT_SIGNING_KEY is empty - shred records are stored unsigned")
		return nil, nil
	}

	signer, err := auditService.NewRecordSigner(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create record signer: %w", err)
	}
	return signer, nil
}

// initAuditUseCase creates the audit use case when auditing is enabled.
func (c *Container) initAuditUseCase() (auditUseCase.AuditUseCase, error) {
	if !c.config.AuditEnabled {
		return nil, nil
	}

	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for audit use case: %w", err)
	}

	repo, err := c.ShredRecordRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get shred record repository for audit use case: %w", err)
	}

	signer, err := c.RecordSigner()
	if err != nil {
		return nil, fmt.Errorf("failed to get record signer for audit use case: %w", err)
	}

	return auditUseCase.NewAuditUseCase(txManager, repo, signer), nil
}

// initShredRecordHandler creates the audit HTTP handler when auditing is enabled.
func (c *Container) initShredRecordHandler() (*auditHTTP.ShredRecordHandler, error) {
	useCase, err := c.AuditUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get audit use case for shred record handler: %w", err)
	}
	if useCase == nil {
		return nil, nil
	}
	return auditHTTP.NewShredRecordHandler(useCase, c.Logger()), nil
}
