package packets

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadPacket(t *testing.T) {
	frame := []byte{0xE0, 0xFF, 0x03, 0x01, 0x02, 0x05}

	b := NewBuffer(testLayout, DefaultCapacity)
	n, err := NewReader(bytes.NewReader(frame)).ReadPacket(b)
	require.NoError(t, err)
	require.Equal(t, len(frame), n)
	require.Equal(t, frame, b.Slice())
	require.Equal(t, byte(0xFF), b.Dest())
	require.Equal(t, []byte{0x01, 0x02}, b.Data())
	require.Equal(t, byte(0x05), b.Checksum())
}

func TestReadPacketUnescapesBody(t *testing.T) {
	// Logical frame SYNC FF 03 E0 D0 B8; both data bytes arrive escaped.
	wire := []byte{0xE0, 0xFF, 0x03, 0xD0, 0xDF, 0xD0, 0xCF, 0xB2}

	b := NewBuffer(testLayout, DefaultCapacity)
	n, err := NewReader(bytes.NewReader(wire)).ReadPacket(b)
	require.NoError(t, err)
	require.Equal(t, 6, n)
	require.Equal(t, []byte{0xE0, 0xD0}, b.Data())
}

func TestReadPacketInvalidSyncConsumesOneByte(t *testing.T) {
	stream := []byte{0x00, 0xE0, 0xFF, 0x03, 0x01, 0x02, 0x05}
	r := NewReader(bytes.NewReader(stream))

	b := NewBuffer(testLayout, DefaultCapacity)
	_, err := r.ReadPacket(b)
	require.Error(t, err)
	require.True(t, IsSyncError(err))

	// Exactly one byte was consumed: the next read must find the real frame.
	n, err := r.ReadPacket(b)
	require.NoError(t, err)
	require.Equal(t, 6, n)
	require.Equal(t, stream[1:], b.Slice())
}

func TestReadPacketTruncated(t *testing.T) {
	tests := []struct {
		name   string
		stream []byte
	}{
		{
			name:   "cut inside fixed header",
			stream: []byte{0xE0, 0xFF},
		},
		{
			name:   "cut inside data",
			stream: []byte{0xE0, 0xFF, 0x03, 0x01},
		},
		{
			name:   "cut inside escape pair",
			stream: []byte{0xE0, 0xFF, 0x03, 0xD0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer(testLayout, DefaultCapacity)
			_, err := NewReader(bytes.NewReader(tt.stream)).ReadPacket(b)
			require.ErrorIs(t, err, io.ErrUnexpectedEOF)
		})
	}
}

func TestReadPacketEmptyStream(t *testing.T) {
	b := NewBuffer(testLayout, DefaultCapacity)
	_, err := NewReader(bytes.NewReader(nil)).ReadPacket(b)
	require.ErrorIs(t, err, io.EOF)
}

func TestReadPacketDeclaredLengthExceedsCapacity(t *testing.T) {
	// SIZE=0xFF would declare a 258-byte logical packet.
	stream := []byte{0xE0, 0xFF, 0xFF, 0x01, 0x02, 0x05}

	b := NewBuffer(testLayout, 16)
	_, err := NewReader(bytes.NewReader(stream)).ReadPacket(b)
	require.Error(t, err)
	require.True(t, IsOverflowError(err))
}
