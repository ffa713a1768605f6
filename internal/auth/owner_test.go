package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticResolver(t *testing.T) {
	owner, err := NewStaticResolver("  ana ").Owner()
	require.NoError(t, err)
	assert.Equal(t, "ana", owner)
}

func TestStaticResolver_Unauthenticated(t *testing.T) {
	for _, raw := range []string{"", "   "} {
		_, err := NewStaticResolver(raw).Owner()
		assert.ErrorIs(t, err, ErrUnauthenticated)
	}
}
