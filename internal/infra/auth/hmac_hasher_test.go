package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHMACHasher_HashAndCheck(t *testing.T) {
	hasher := NewHMACHasher()

	record, err := hasher.Hash("S3cure!pass")
	require.NoError(t, err)

	assert.True(t, hasher.Check("S3cure!pass", record))
	assert.False(t, hasher.Check("S3cure!pass2", record))
	assert.False(t, hasher.Check("", record))
}

func TestHMACHasher_RecordFormat(t *testing.T) {
	hasher := NewHMACHasher()

	record, err := hasher.Hash("hello")
	require.NoError(t, err)

	parts := strings.Split(record, ":")
	require.Len(t, parts, 2, "record must be base64(salt):base64(digest)")
	assert.NotEmpty(t, parts[0])
	assert.NotEmpty(t, parts[1])
}

func TestHMACHasher_SaltIsFreshPerHash(t *testing.T) {
	hasher := NewHMACHasher()

	first, err := hasher.Hash("same-password")
	require.NoError(t, err)
	second, err := hasher.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("same-password", first))
	assert.True(t, hasher.Check("same-password", second))
}

func TestHMACHasher_MalformedRecordNeverMatches(t *testing.T) {
	hasher := NewHMACHasher()

	assert.False(t, hasher.Check("whatever", ""))
	assert.False(t, hasher.Check("whatever", "no-separator"))
	assert.False(t, hasher.Check("whatever", "!!!:???"))
	assert.False(t, hasher.Check("whatever", "a:b:c"))
}
