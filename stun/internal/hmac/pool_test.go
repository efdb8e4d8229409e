package hmac

import (
	"crypto/sha1" // nolint:gosec
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHMACPool_SHA1(t *testing.T) {
	for i, tt := range hmacTests() {
		if tt.size != sha1.Size {
			continue
		}
		h := AcquireSHA1(tt.key)
		_, err := h.Write(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.out, hex.EncodeToString(h.Sum(nil)), "test %d", i)
		PutSHA1(h)
	}
}

func TestHMACPool_SHA256(t *testing.T) {
	for i, tt := range hmacTests() {
		if tt.size != sha256.Size {
			continue
		}
		h := AcquireSHA256(tt.key)
		_, err := h.Write(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.out, hex.EncodeToString(h.Sum(nil)), "test %d", i)
		PutSHA256(h)
	}
}

func TestHMACPool_Reuse(t *testing.T) {
	// A recycled instance must not remember the previous key.
	h := AcquireSHA1([]byte("key one"))
	if _, err := h.Write([]byte("data")); err != nil {
		t.Fatal(err)
	}
	_ = h.Sum(nil)
	PutSHA1(h)

	tt := hmacTests()[0]
	h = AcquireSHA1(tt.key)
	_, err := h.Write(tt.in)
	require.NoError(t, err)
	assert.Equal(t, tt.out, hex.EncodeToString(h.Sum(nil)))
	PutSHA1(h)
}

func TestAssertHMACSize(t *testing.T) {
	h := AcquireSHA1([]byte("key"))
	hm, ok := h.(*hmac)
	require.True(t, ok)
	assert.NotPanics(t, func() {
		assertHMACSize(hm, sha1.Size, sha1.BlockSize)
	})
	assert.Panics(t, func() {
		assertHMACSize(hm, sha256.Size, sha256.BlockSize)
	})
	assert.Panics(t, func() {
		PutSHA256(hm)
	}, "putting SHA-1 instance to SHA-256 pool is a bug")
	PutSHA1(h)
}

func BenchmarkHMACSHA1_512(b *testing.B) {
	key := make([]byte, 32)
	buf := make([]byte, 512)
	sum := make([]byte, 0, sha1.Size)
	b.ReportAllocs()
	b.SetBytes(int64(len(buf)))
	for i := 0; i < b.N; i++ {
		h := AcquireSHA1(key)
		if _, err := h.Write(buf); err != nil {
			b.Fatal(err)
		}
		sum = h.Sum(sum[:0])
		PutSHA1(h)
	}
}

func BenchmarkHMACSHA256_512(b *testing.B) {
	key := make([]byte, 32)
	buf := make([]byte, 512)
	sum := make([]byte, 0, sha256.Size)
	b.ReportAllocs()
	b.SetBytes(int64(len(buf)))
	for i := 0; i < b.N; i++ {
		h := AcquireSHA256(key)
		if _, err := h.Write(buf); err != nil {
			b.Fatal(err)
		}
		sum = h.Sum(sum[:0])
		PutSHA256(h)
	}
}
