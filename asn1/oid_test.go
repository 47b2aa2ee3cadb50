package asn1

import (
	"testing"

	"github.com/declkit/declkit/buf"
	"github.com/stretchr/testify/require"
)

func TestOID_Sha256WithRSAEncryption(t *testing.T) {
	oid := OID{1, 2, 840, 113549, 1, 1, 11}

	b := buf.New(16)
	require.NoError(t, WriteDEROID(b, TagObjectIdentifier, oid))
	require.Equal(t,
		[]byte{0x06, 0x09, 0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x01, 0x0b},
		b.Bytes())

	b.Reset()
	got, err := ReadDEROID(b, TagObjectIdentifier)
	require.NoError(t, err)
	require.Equal(t, oid, got)
}

func TestOID_RoundTrips(t *testing.T) {
	oids := []OID{
		{1, 2},
		{1, 39},
		{2, 5, 4, 3},
		{2, 39},
		{1, 3, 6, 1, 4, 1, 311, 21, 20},
	}

	for _, oid := range oids {
		b := buf.New(64)
		require.NoError(t, WriteOID(b, OIDLength(oid), oid))
		require.Equal(t, OIDLength(oid), b.Offset(), "oid %v", oid)

		b.Reset()
		got, err := ReadOID(b, OIDLength(oid))
		require.NoError(t, err)
		require.Equal(t, oid, got, "oid %v", oid)
	}
}

func TestOID_SingleComponent(t *testing.T) {
	oid := OID{1}

	b := buf.New(8)
	require.NoError(t, WriteOID(b, OIDLength(oid), oid))
	require.Equal(t, 1, b.Offset())

	b.Reset()
	got, err := ReadOID(b, 1)
	require.NoError(t, err)
	require.Equal(t, oid, got)
}

func TestOID_SizeQuery(t *testing.T) {
	oid := OID{1, 2, 840, 113549, 1, 1, 11}

	b := buf.New(16)
	require.NoError(t, WriteOID(b, OIDLength(oid), oid))

	b.Reset()
	count, err := ReadOIDInto(b, OIDLength(oid), nil)
	require.NoError(t, err)
	require.Equal(t, 7, count)

	b.Reset()
	dst := make([]uint64, 3)
	count, err = ReadOIDInto(b, OIDLength(oid), dst)
	require.NoError(t, err)
	require.Equal(t, 7, count, "true count reported for a short buffer")
	require.Equal(t, []uint64{1, 2, 840}, dst)
}

func TestOID_Strings(t *testing.T) {
	oid := OID{1, 2, 840, 113549}
	require.Equal(t, "1.2.840.113549", oid.String())

	parsed, err := ParseOID("1.2.840.113549")
	require.NoError(t, err)
	require.Equal(t, oid, parsed)

	_, err = ParseOID("")
	require.Error(t, err)
	_, err = ParseOID("1.two.3")
	require.Error(t, err)
}
