package hash

import (
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"
)

func TestID(t *testing.T) {
	require.Equal(t, xxhash.Sum64String("point::x"), ID("point::x"))
	require.NotEqual(t, ID("point::x"), ID("point::y"))
	require.Equal(t, ID(""), ID(""))
}
