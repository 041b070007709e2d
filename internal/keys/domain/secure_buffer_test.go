package domain

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/keyshred/internal/errors"
)

func newTestBuffer(t *testing.T, id string, material []byte) *SecureBuffer {
	t.Helper()
	buf, err := NewSecureBuffer(id, material, false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = buf.Close() })
	return buf
}

func deadbeef(repeat int) []byte {
	return bytes.Repeat([]byte{0xDE, 0xAD, 0xBE, 0xEF}, repeat)
}

func TestNewSecureBuffer(t *testing.T) {
	t.Run("Success_CopiesMaterial", func(t *testing.T) {
		material := deadbeef(32)
		buf := newTestBuffer(t, "k1", material)

		assert.Equal(t, "k1", buf.ID())
		assert.Equal(t, 128, buf.Len())
		assert.Equal(t, deadbeef(32), material, "caller slice must not be modified")

		err := buf.Use(func(m []byte) error {
			assert.Equal(t, material, m)
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("Success_Info", func(t *testing.T) {
		buf := newTestBuffer(t, "k1", []byte{1, 2, 3})

		info := buf.Info()
		assert.Equal(t, "k1", info.ID)
		assert.Equal(t, 3, info.Length)
		assert.Equal(t, buf.Locked(), info.Locked)
		assert.False(t, info.CreatedAt.IsZero())
	})

	t.Run("Error_EmptyID", func(t *testing.T) {
		_, err := NewSecureBuffer("", []byte{1}, false)
		assert.ErrorIs(t, err, ErrEmptyKeyID)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("Error_EmptyMaterial", func(t *testing.T) {
		_, err := NewSecureBuffer("k1", nil, false)
		assert.ErrorIs(t, err, ErrEmptyKeyMaterial)

		_, err = NewSecureBuffer("k1", []byte{}, false)
		assert.ErrorIs(t, err, ErrEmptyKeyMaterial)
	})
}

func TestSecureBuffer_Wipe(t *testing.T) {
	inputs := map[string][]byte{
		"deadbeef":   deadbeef(32),
		"all_zero":   make([]byte, 64),
		"all_ff":     bytes.Repeat([]byte{0xFF}, 64),
		"all_aa":     bytes.Repeat([]byte{0xAA}, 7),
		"single":     {0x42},
		"page_plus1": bytes.Repeat([]byte{0x5A}, 4097),
	}

	for name, material := range inputs {
		t.Run("Success_"+name, func(t *testing.T) {
			buf := newTestBuffer(t, "k", material)

			require.NoError(t, buf.Wipe())

			assert.True(t, buf.isWiped())
			assert.True(t, buf.Verify())
			assert.Len(t, buf.data, len(material))
			for i, v := range buf.data {
				if v != WipeSentinel {
					t.Fatalf("byte %d = %#x, want %#x", i, v, WipeSentinel)
				}
			}
		})
	}

	t.Run("Success_PassOrder", func(t *testing.T) {
		var passes []byte
		afterWipePass = func(pass byte, data []byte) {
			for _, v := range data {
				require.Equal(t, pass, v)
			}
			passes = append(passes, pass)
		}
		t.Cleanup(func() { afterWipePass = nil })

		buf := newTestBuffer(t, "k", deadbeef(8))
		require.NoError(t, buf.Wipe())

		assert.Equal(t, []byte{0x00, 0xFF, 0xAA}, passes)
	})

	t.Run("Error_DoubleWipe", func(t *testing.T) {
		buf := newTestBuffer(t, "k", deadbeef(4))
		require.NoError(t, buf.Wipe())

		err := buf.Wipe()
		assert.ErrorIs(t, err, ErrAlreadyDestroyed)
		assert.ErrorIs(t, err, apperrors.ErrInvariant)
		assert.True(t, buf.Verify())
	})

	t.Run("Error_UseAfterWipe", func(t *testing.T) {
		buf := newTestBuffer(t, "k", deadbeef(4))
		require.NoError(t, buf.Wipe())

		called := false
		err := buf.Use(func([]byte) error {
			called = true
			return nil
		})
		assert.ErrorIs(t, err, ErrAlreadyDestroyed)
		assert.False(t, called)
	})
}

func TestSecureBuffer_Verify(t *testing.T) {
	t.Run("LiveBufferIsNotVerified", func(t *testing.T) {
		buf := newTestBuffer(t, "k", bytes.Repeat([]byte{0xAA}, 16))
		assert.False(t, buf.Verify())
	})

	t.Run("ClosedBufferIsNotVerified", func(t *testing.T) {
		buf := newTestBuffer(t, "k", deadbeef(4))
		require.NoError(t, buf.Wipe())
		require.NoError(t, buf.Close())
		assert.False(t, buf.Verify())
	})
}

func TestSecureBuffer_Close(t *testing.T) {
	t.Run("Success_WipesLiveBuffer", func(t *testing.T) {
		var passes int
		afterWipePass = func(byte, []byte) { passes++ }
		t.Cleanup(func() { afterWipePass = nil })

		buf, err := NewSecureBuffer("k", deadbeef(4), false)
		require.NoError(t, err)

		require.NoError(t, buf.Close())
		assert.Equal(t, len(wipePasses), passes)
		assert.True(t, buf.isWiped())
		assert.Nil(t, buf.data)
		assert.Equal(t, 16, buf.Len())
	})

	t.Run("Success_Idempotent", func(t *testing.T) {
		buf, err := NewSecureBuffer("k", deadbeef(4), false)
		require.NoError(t, err)

		require.NoError(t, buf.Close())
		require.NoError(t, buf.Close())
		assert.ErrorIs(t, buf.Wipe(), ErrAlreadyDestroyed)
	})
}

func TestSecureBuffer_ConcurrentUseAndWipe(t *testing.T) {
	material := deadbeef(256)
	buf := newTestBuffer(t, "k", material)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = buf.Use(func(m []byte) error {
				// A reader either sees the full original material or nothing.
				assert.Equal(t, material, m)
				return nil
			})
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.NoError(t, buf.Wipe())
	}()

	wg.Wait()
	assert.True(t, buf.Verify())
}
