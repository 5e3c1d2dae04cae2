package packets

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWritePacket(t *testing.T) {
	frame := []byte{0xE0, 0xFF, 0x03, 0x01, 0x02, 0x05}
	b := NewBuffer(testLayout, DefaultCapacity)
	require.NoError(t, b.CopyFrom(frame))

	var out bytes.Buffer
	n, err := NewWriter(&out).WritePacket(b)
	require.NoError(t, err)
	require.Equal(t, len(frame), n)
	require.Equal(t, frame, out.Bytes())
}

func TestWritePacketEscapesBody(t *testing.T) {
	b := NewBuffer(testLayout, DefaultCapacity)
	b.SetSync()
	b.SetDest(0xE0) // reserved value inside the body
	require.NoError(t, b.SetData([]byte{0xD0}))
	b.CalculateChecksum()

	var out bytes.Buffer
	n, err := NewWriter(&out).WritePacket(b)
	require.NoError(t, err)

	// Logical length 5, two escaped bytes add one each.
	require.Equal(t, b.Len()+2, n)
	require.Equal(t, byte(SyncByte), out.Bytes()[0])
	require.Equal(t, []byte{MarkByte, 0xDF, 0x02, MarkByte, 0xCF}, out.Bytes()[1:6])
}

func TestWritePacketRejectsNonsenseLength(t *testing.T) {
	b := NewBuffer(testLayout, DefaultCapacity)
	// SIZE=0 declares a logical length of 3: no room for the SUM byte.
	b.SetSync()
	b.SetSize(0)

	_, err := NewWriter(&bytes.Buffer{}).WritePacket(b)
	require.Error(t, err)
	require.True(t, IsLengthError(err))

	_, err = NewWriter(&bytes.Buffer{}).WritePacketWithChecksum(b)
	require.True(t, IsLengthError(err))
}

func TestWritePacketWithChecksumIgnoresStoredSum(t *testing.T) {
	b := NewBuffer(testLayout, DefaultCapacity)
	b.SetSync()
	b.SetDest(0xFF)
	require.NoError(t, b.SetData([]byte{0x01, 0x02}))
	b.SetChecksum(0xAA) // deliberately wrong

	var out bytes.Buffer
	_, err := NewWriter(&out).WritePacketWithChecksum(b)
	require.NoError(t, err)
	require.Equal(t, []byte{0xE0, 0xFF, 0x03, 0x01, 0x02, 0x05}, out.Bytes())

	// The packet itself keeps its stored checksum.
	require.Equal(t, byte(0xAA), b.Checksum())
}

// A packet written with a computed checksum must read back identical except
// for the corrected SUM byte.
func TestWriteReadRoundTrip(t *testing.T) {
	src := NewBuffer(testLayout, DefaultCapacity)
	src.SetSync()
	src.SetDest(0x01)
	require.NoError(t, src.SetData([]byte{0xE0, 0xD0, 0x00, 0x42}))

	var wire bytes.Buffer
	_, err := NewWriter(&wire).WritePacketWithChecksum(src)
	require.NoError(t, err)

	dst := NewBuffer(testLayout, DefaultCapacity)
	n, err := NewReader(bytes.NewReader(wire.Bytes())).ReadPacket(dst)
	require.NoError(t, err)
	require.Equal(t, src.Len(), n)

	src.CalculateChecksum()
	require.Equal(t, src.Slice(), dst.Slice())
}

func BenchmarkWritePacket(b *testing.B) {
	buf := NewBuffer(testLayout, DefaultCapacity)
	buf.SetSync()
	buf.SetDest(0xFF)
	data := make([]byte, 64)
	for i := range data {
		data[i] = byte(i)
	}
	_ = buf.SetData(data)
	buf.CalculateChecksum()

	w := NewWriter(&discard{})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = w.WritePacket(buf)
	}
}
