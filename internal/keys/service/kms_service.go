// Package service provides external collaborators used while provisioning keys.
package service

import (
	"context"
	"log/slog"

	"gocloud.dev/secrets"

	"github.com/allisson/keyshred/internal/errors"
	keysDomain "github.com/allisson/keyshred/internal/keys/domain"

	// Register all KMS provider drivers
	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/azurekeyvault"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

// ErrUnwrapFailed indicates that wrapped key material could not be decrypted by the KMS.
var ErrUnwrapFailed = errors.Wrap(errors.ErrInvalidInput, "failed to unwrap key material")

// KeyUnwrapper decrypts key material that was wrapped by a KMS before provisioning.
type KeyUnwrapper interface {
	// Unwrap returns the plaintext key material. The caller owns the returned
	// slice and must zero it once the key is stored.
	Unwrap(ctx context.Context, wrapped []byte) ([]byte, error)
	Close() error
}

// KeyWrapper encrypts key material with a KMS so it can be provisioned with
// wrapped set.
type KeyWrapper interface {
	Wrap(ctx context.Context, material []byte) ([]byte, error)
	Close() error
}

// kmsKeeper implements KeyUnwrapper and KeyWrapper using a gocloud.dev/secrets keeper.
type kmsKeeper struct {
	keeper *secrets.Keeper
	logger *slog.Logger
}

// NewKMSUnwrapper opens a keeper for keyURI.
// Supports: gcpkms://, awskms://, azurekeyvault://, hashivault://, base64key://
// Provider errors are logged to logger; callers only see ErrUnwrapFailed.
func NewKMSUnwrapper(ctx context.Context, keyURI string, logger *slog.Logger) (KeyUnwrapper, error) {
	keeper, err := secrets.OpenKeeper(ctx, keyURI)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open KMS keeper")
	}
	return &kmsKeeper{keeper: keeper, logger: logger}, nil
}

// NewKMSWrapper opens a keeper for keyURI. It accepts the same schemes as NewKMSUnwrapper.
func NewKMSWrapper(ctx context.Context, keyURI string) (KeyWrapper, error) {
	keeper, err := secrets.OpenKeeper(ctx, keyURI)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open KMS keeper")
	}
	return &kmsKeeper{keeper: keeper, logger: slog.New(slog.DiscardHandler)}, nil
}

// Unwrap decrypts wrapped with the keeper.
func (k *kmsKeeper) Unwrap(ctx context.Context, wrapped []byte) ([]byte, error) {
	if len(wrapped) == 0 {
		return nil, keysDomain.ErrEmptyKeyMaterial
	}

	plaintext, err := k.keeper.Decrypt(ctx, wrapped)
	if err != nil {
		k.logger.WarnContext(ctx, "kms decrypt failed", slog.Any("error", err))
		return nil, ErrUnwrapFailed
	}
	return plaintext, nil
}

// Wrap encrypts material with the keeper.
func (k *kmsKeeper) Wrap(ctx context.Context, material []byte) ([]byte, error) {
	if len(material) == 0 {
		return nil, keysDomain.ErrEmptyKeyMaterial
	}

	wrapped, err := k.keeper.Encrypt(ctx, material)
	if err != nil {
		return nil, errors.Wrap(err, "failed to wrap key material")
	}
	return wrapped, nil
}

// Close releases the keeper.
func (k *kmsKeeper) Close() error {
	return k.keeper.Close()
}
