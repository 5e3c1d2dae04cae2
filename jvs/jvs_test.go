package jvs

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robloxxa/jvs-packets/packets"
)

var (
	requestFrame  = []byte{0xE0, 0xFF, 0x03, 0x01, 0x02, 0x05}
	responseFrame = []byte{0xE0, 0xFF, 0x04, 0x01, 0x01, 0x02, 0x07}
)

func TestRequestPacketFromSlice(t *testing.T) {
	p, err := RequestPacketFromSlice(requestFrame)
	require.NoError(t, err)
	require.Equal(t, requestFrame, p.Slice())
}

func TestRequestPacketFromSliceValidation(t *testing.T) {
	_, err := RequestPacketFromSlice([]byte{0xE0, 0x01, 0x02})
	require.True(t, packets.IsLengthError(err))
}

func TestRequestPacketAccessors(t *testing.T) {
	p, err := RequestPacketFromSlice(requestFrame)
	require.NoError(t, err)

	require.Equal(t, byte(0xE0), p.Sync())
	require.Equal(t, byte(0xFF), p.Dest())
	require.Equal(t, byte(0x03), p.Size())
	require.Equal(t, []byte{0x01, 0x02}, p.Data())
	require.Equal(t, byte(0x05), p.Checksum())
}

func TestRequestPacketSetters(t *testing.T) {
	p := NewRequestPacket()
	p.SetSync()
	p.SetDest(0xFF)
	require.NoError(t, p.SetData([]byte{0x01, 0x02}))
	require.Equal(t, byte(0x05), p.CalculateChecksum())
	require.Equal(t, requestFrame, p.Slice())

	// Shrinking the data shrinks the size byte.
	require.NoError(t, p.SetData([]byte{0x01}))
	require.Equal(t, byte(0x02), p.Size())
}

func TestResponsePacketAccessors(t *testing.T) {
	p, err := ResponsePacketFromSlice(responseFrame)
	require.NoError(t, err)

	require.Equal(t, byte(0xFF), p.Dest())
	require.Equal(t, byte(0x04), p.Size())
	require.Equal(t, byte(0x01), p.ReportRaw())
	require.Equal(t, packets.ReportNormal, p.Report())
	require.Equal(t, []byte{0x01, 0x02}, p.Data())
	require.Equal(t, byte(0x07), p.Checksum())
}

func TestResponsePacketSetters(t *testing.T) {
	p := NewResponsePacket()
	p.SetSync()
	p.SetDest(0xFF)
	p.SetReport(byte(packets.ReportNormal))
	require.NoError(t, p.SetData([]byte{0x01, 0x02}))
	p.CalculateChecksum()
	require.Equal(t, responseFrame, p.Slice())
}

func TestRequestPacketRead(t *testing.T) {
	p := NewRequestPacket()
	r := packets.NewReader(bytes.NewReader(requestFrame))
	n, err := r.ReadPacket(p)
	require.NoError(t, err)
	require.Equal(t, len(requestFrame), n)
	require.Equal(t, requestFrame, p.Slice())
}

func TestResponsePacketWriteReadRoundTrip(t *testing.T) {
	src, err := ResponsePacketFromSlice(responseFrame)
	require.NoError(t, err)

	var wire bytes.Buffer
	_, err = packets.NewWriter(&wire).WritePacketWithChecksum(src)
	require.NoError(t, err)

	dst := NewResponsePacket()
	_, err = packets.NewReader(bytes.NewReader(wire.Bytes())).ReadPacket(dst)
	require.NoError(t, err)
	require.Equal(t, src.Slice(), dst.Slice())
}
