package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fastParams keeps the hash cheap in tests; the algorithm path is identical.
func fastParams() Params {
	return Params{Memory: 8 * 1024, Time: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32}
}

func TestHashAndVerify(t *testing.T) {
	h := NewHasher(fastParams())

	encoded, err := h.Hash("Secr3t!pass")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(encoded, "$argon2id$"))

	ok, err := h.Verify("Secr3t!pass", encoded)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify("wrong-password", encoded)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHash_SaltedHashesDiffer(t *testing.T) {
	h := NewHasher(fastParams())

	first, err := h.Hash("same-password")
	require.NoError(t, err)
	second, err := h.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "random salt must make hashes differ")

	for _, encoded := range []string{first, second} {
		ok, err := h.Verify("same-password", encoded)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestVerify_UsesStoredCost(t *testing.T) {
	// hash with one cost, verify through a hasher configured with another
	encoded, err := NewHasher(fastParams()).Hash("pw-pw-pw")
	require.NoError(t, err)

	ok, err := NewHasher(DefaultParams()).Verify("pw-pw-pw", encoded)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerify_RejectsBadEncodings(t *testing.T) {
	h := NewHasher(fastParams())

	tests := []struct {
		name string
		hash string
	}{
		{"empty", ""},
		{"not phc", "plaintext-password"},
		{"wrong algorithm", "$bcrypt$v=19$m=8192,t=1,p=1$c2FsdHNhbHRzYWx0c2FsdA$aGFzaA"},
		{"wrong version", "$argon2id$v=18$m=8192,t=1,p=1$c2FsdHNhbHRzYWx0c2FsdA$aGFzaA"},
		{"bad cost", "$argon2id$v=19$m=8192,t=one,p=1$c2FsdHNhbHRzYWx0c2FsdA$aGFzaA"},
		{"bad salt b64", "$argon2id$v=19$m=8192,t=1,p=1$!!!$aGFzaA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.Verify("whatever", tt.hash)
			require.Error(t, err)
		})
	}
}
