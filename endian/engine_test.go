package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetLittleEndianEngine(t *testing.T) {
	require.Equal(t, binary.LittleEndian, GetLittleEndianEngine())
}

func TestEngine_AppendMatchesPut(t *testing.T) {
	engine := GetLittleEndianEngine()

	appended := engine.AppendUint32(nil, 0xdeadbeef)

	fixed := make([]byte, 4)
	engine.PutUint32(fixed, 0xdeadbeef)

	require.Equal(t, fixed, appended)
	require.Equal(t, []byte{0xef, 0xbe, 0xad, 0xde}, appended)
	require.Equal(t, uint32(0xdeadbeef), engine.Uint32(appended))
}
