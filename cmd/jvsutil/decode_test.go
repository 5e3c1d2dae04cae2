package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCaptureBytes(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []byte
	}{
		{
			name:     "spaced hex",
			args:     []string{"E0", "FF", "03", "01", "02", "05"},
			expected: []byte{0xE0, 0xFF, 0x03, 0x01, 0x02, 0x05},
		},
		{
			name:     "0x prefixes and commas",
			args:     []string{"0xE0,0xFF,0x03,0x01,0x02,0x05"},
			expected: []byte{0xE0, 0xFF, 0x03, 0x01, 0x02, 0x05},
		},
		{
			name:     "single run",
			args:     []string{"e0ff0301 0205"},
			expected: []byte{0xE0, 0xFF, 0x03, 0x01, 0x02, 0x05},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := captureBytes(tt.args, "")
			require.NoError(t, err)
			require.Equal(t, tt.expected, raw)
		})
	}
}

func TestCaptureBytesBadHex(t *testing.T) {
	_, err := captureBytes([]string{"not hex"}, "")
	require.Error(t, err)
}

func TestDecodeFrameStandardRequest(t *testing.T) {
	var out bytes.Buffer
	err := decodeFrame(&out, familyStandard, "request",
		[]byte{0xE0, 0xFF, 0x03, 0x01, 0x02, 0x05})
	require.NoError(t, err)

	require.Contains(t, out.String(), "dest:     0xFF")
	require.Contains(t, out.String(), "data:     01 02")
	require.Contains(t, out.String(), "checksum: 0x05 (valid)")
}

func TestDecodeFrameModifiedResponse(t *testing.T) {
	var out bytes.Buffer
	err := decodeFrame(&out, familyModified, "response",
		[]byte{0xE0, 0x08, 0xFF, 0x01, 0x03, 0x02, 0x04, 0x01, 0x02, 0x14})
	require.NoError(t, err)

	require.Contains(t, out.String(), "sequence: 0x01")
	require.Contains(t, out.String(), "status:   0x03")
	require.Contains(t, out.String(), "report:   0x04 (busy)")
	require.Contains(t, out.String(), "checksum: 0x14 (valid)")
}

func TestDecodeFrameInvalidChecksumIsReported(t *testing.T) {
	var out bytes.Buffer
	err := decodeFrame(&out, familyStandard, "request",
		[]byte{0xE0, 0xFF, 0x03, 0x01, 0x02, 0x99})
	require.NoError(t, err)
	require.Contains(t, out.String(), "INVALID, computed 0x05")
}

func TestDecodeFrameUnknownShape(t *testing.T) {
	err := decodeFrame(&bytes.Buffer{}, "turbo", "request", []byte{0xE0})
	require.Error(t, err)
}

func TestDecodeFrameBadSync(t *testing.T) {
	err := decodeFrame(&bytes.Buffer{}, familyStandard, "request",
		[]byte{0x00, 0xFF, 0x03, 0x01, 0x02, 0x05})
	require.Error(t, err)
}
