package hmac

import (
	"bytes"
	"crypto/sha1" // nolint:gosec
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type hmacTest struct {
	hash      func() hash.Hash
	key       []byte
	in        []byte
	out       string
	size      int
	blocksize int
}

// Vectors from RFC 2202 (HMAC-SHA-1) and RFC 4231 (HMAC-SHA-256).
func hmacTests() []hmacTest {
	return []hmacTest{
		{
			sha1.New,
			bytes.Repeat([]byte{0x0b}, 20),
			[]byte("Hi There"),
			"b617318655057264e28bc0b6fb378c8ef146be00",
			sha1.Size,
			sha1.BlockSize,
		},
		{
			sha1.New,
			[]byte("Jefe"),
			[]byte("what do ya want for nothing?"),
			"effcdf6ae5eb2fa2d27416d5f184df9c259a7c79",
			sha1.Size,
			sha1.BlockSize,
		},
		{
			sha1.New,
			bytes.Repeat([]byte{0xaa}, 20),
			bytes.Repeat([]byte{0xdd}, 50),
			"125d7342b9ac11cd91a39af48aa17b4f63f175d3",
			sha1.Size,
			sha1.BlockSize,
		},
		{
			sha256.New,
			bytes.Repeat([]byte{0x0b}, 20),
			[]byte("Hi There"),
			"b0344c61d8db38535ca8afceaf0bf12b881dc200c9833da726e9376c2e32cff7",
			sha256.Size,
			sha256.BlockSize,
		},
		{
			sha256.New,
			[]byte("Jefe"),
			[]byte("what do ya want for nothing?"),
			"5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843",
			sha256.Size,
			sha256.BlockSize,
		},
	}
}

func TestHMAC(t *testing.T) {
	for i, tt := range hmacTests() {
		h := New(tt.hash, tt.key)
		assert.Equal(t, tt.size, h.Size(), "test %d", i)
		assert.Equal(t, tt.blocksize, h.BlockSize(), "test %d", i)
		for j := 0; j < 2; j++ {
			n, err := h.Write(tt.in)
			require.NoError(t, err)
			require.Equal(t, len(tt.in), n)

			// Repetitive Sum() calls should return the same value.
			for k := 0; k < 2; k++ {
				sum := hex.EncodeToString(h.Sum(nil))
				assert.Equal(t, tt.out, sum, "test %d.%d.%d", i, j, k)
			}

			// Second iteration: make sure reset works.
			h.Reset()
		}
	}
}

func TestHMACReset(t *testing.T) {
	for i, tt := range hmacTests() {
		h := New(tt.hash, []byte("some unrelated key"))
		hm, ok := h.(*hmac)
		require.True(t, ok)
		hm.resetTo(tt.key)

		_, err := hm.Write(tt.in)
		require.NoError(t, err)
		sum := hex.EncodeToString(hm.Sum(nil))
		assert.Equal(t, tt.out, sum, "test %d", i)
	}
}

func TestHMACLongKey(t *testing.T) {
	// Keys longer than the block size are hashed first. Compare the
	// re-keyed instance against a freshly constructed one.
	key := bytes.Repeat([]byte{0xaa}, 131)
	in := []byte("Test Using Larger Than Block-Size Key - Hash Key First")

	fresh := New(sha256.New, key)
	_, err := fresh.Write(in)
	require.NoError(t, err)
	expected := fresh.Sum(nil)

	reused := New(sha256.New, []byte("short")).(*hmac)
	reused.resetTo(key)
	_, err = reused.Write(in)
	require.NoError(t, err)
	assert.Equal(t, expected, reused.Sum(nil))
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal([]byte("sum"), []byte("sum")))
	assert.False(t, Equal([]byte("sum"), []byte("mus")))
	assert.False(t, Equal([]byte("sum"), []byte("sum1")))
	assert.False(t, Equal([]byte("sum"), nil))
}
