package common

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeRandHexString(t *testing.T) {
	s, err := MakeRandHexString(32)
	require.NoError(t, err)
	assert.Len(t, s, 64)

	_, err = hex.DecodeString(s)
	assert.NoError(t, err, "result must be valid hex")

	s2, err := MakeRandHexString(32)
	require.NoError(t, err)
	assert.NotEqual(t, s, s2, "two tokens must differ")
}
