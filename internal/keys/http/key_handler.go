// Package http provides HTTP handlers for key provisioning and shred alerts.
package http

import (
	"encoding/base64"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/keyshred/internal/errors"
	"github.com/allisson/keyshred/internal/httputil"
	keysDomain "github.com/allisson/keyshred/internal/keys/domain"
	"github.com/allisson/keyshred/internal/keys/http/dto"
	keysService "github.com/allisson/keyshred/internal/keys/service"
	keysUseCase "github.com/allisson/keyshred/internal/keys/usecase"
	customValidation "github.com/allisson/keyshred/internal/validation"
)

// ErrUnwrapUnavailable indicates a wrapped provisioning request on a node without a KMS keeper.
var ErrUnwrapUnavailable = apperrors.Wrap(
	apperrors.ErrInvalidInput,
	"wrapped key material requires a configured KMS key",
)

const (
	// maxWrapOverhead covers the ciphertext expansion of the supported KMS providers.
	maxWrapOverhead = 4096
	// provisionEnvelopeBytes covers JSON field names, quoting and whitespace.
	provisionEnvelopeBytes = 1024
)

// KeyHandler handles HTTP requests for the node's key registry.
type KeyHandler struct {
	nodeUseCase  keysUseCase.NodeUseCase
	unwrapper    keysService.KeyUnwrapper
	maxBodyBytes int64
	logger       *slog.Logger
}

// NewKeyHandler creates a new key handler. unwrapper may be nil, in which case
// wrapped provisioning requests are rejected. maxKeySize bounds the provisioning
// body before it is decoded; zero means keysDomain.DefaultMaxKeySize.
func NewKeyHandler(
	nodeUseCase keysUseCase.NodeUseCase,
	unwrapper keysService.KeyUnwrapper,
	maxKeySize int,
	logger *slog.Logger,
) *KeyHandler {
	return &KeyHandler{
		nodeUseCase:  nodeUseCase,
		unwrapper:    unwrapper,
		maxBodyBytes: provisionBodyLimit(maxKeySize),
		logger:       logger,
	}
}

// provisionBodyLimit is the largest request body a provisioning call for a key
// of maxKeySize bytes can need, wrapped or not.
func provisionBodyLimit(maxKeySize int) int64 {
	if maxKeySize <= 0 {
		maxKeySize = keysDomain.DefaultMaxKeySize
	}
	material := base64.StdEncoding.EncodedLen(maxKeySize + maxWrapOverhead)
	return int64(material + customValidation.MaxKeyIDLength + provisionEnvelopeBytes)
}

// ProvisionHandler loads a key into the registry.
// POST /v1/keys
// Returns 201 Created with key metadata. Every plaintext copy held by the
// handler is zeroed before it returns.
func (h *KeyHandler) ProvisionHandler(c *gin.Context) {
	var req dto.ProvisionKeyRequest

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodyBytes)
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	defer keysDomain.Zero(req.Material)

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	material := req.Material
	if req.Wrapped {
		if h.unwrapper == nil {
			httputil.HandleErrorGin(c, ErrUnwrapUnavailable, h.logger)
			return
		}
		plaintext, err := h.unwrapper.Unwrap(c.Request.Context(), req.Material)
		if err != nil {
			httputil.HandleErrorGin(c, err, h.logger)
			return
		}
		defer keysDomain.Zero(plaintext)
		material = plaintext
	}

	length := len(material)
	if err := h.nodeUseCase.Insert(c.Request.Context(), req.ID, material); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	info, err := h.nodeUseCase.Lookup(c.Request.Context(), req.ID)
	if err != nil {
		// Shredded between insert and lookup; report what was stored.
		info = keysDomain.KeyInfo{ID: req.ID, Length: length}
	}

	c.JSON(http.StatusCreated, dto.MapKeyInfoToResponse(h.nodeUseCase.Region(), info))
}

// GetHandler returns the metadata of a live key.
// GET /v1/keys/*id
func (h *KeyHandler) GetHandler(c *gin.Context) {
	id := strings.TrimPrefix(c.Param("id"), "/")
	if id == "" {
		httputil.HandleValidationErrorGin(c, keysDomain.ErrEmptyKeyID, h.logger)
		return
	}

	info, err := h.nodeUseCase.Lookup(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapKeyInfoToResponse(h.nodeUseCase.Region(), info))
}

// NodeHandler describes the node.
// GET /v1/node
func (h *KeyHandler) NodeHandler(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NodeResponse{
		Region:   h.nodeUseCase.Region(),
		KeyCount: h.nodeUseCase.Len(c.Request.Context()),
	})
}

// TriggerShredHandler destroys the key named by an alert.
// POST /v1/alerts
// Returns 200 OK for every classification, including not_found: an absent key
// is the expected result of a repeated alert.
func (h *KeyHandler) TriggerShredHandler(c *gin.Context) {
	var req dto.TriggerShredRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	outcome := h.nodeUseCase.TriggerShred(c.Request.Context(), req.KeyID)
	c.JSON(http.StatusOK, dto.MapOutcomeToResponse(outcome))
}

// ShredAllHandler destroys every key the node holds.
// POST /v1/alerts/all
func (h *KeyHandler) ShredAllHandler(c *gin.Context) {
	outcomes := h.nodeUseCase.ShredAll(c.Request.Context())
	c.JSON(http.StatusOK, dto.MapOutcomesToShredAllResponse(outcomes))
}
