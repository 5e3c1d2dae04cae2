package packets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportString(t *testing.T) {
	tests := []struct {
		name     string
		code     Report
		expected string
		known    bool
	}{
		{"normal", ReportNormal, "normal", true},
		{"incorrect data size", ReportIncorrectDataSize, "incorrect data size", true},
		{"invalid data", ReportInvalidData, "invalid data", true},
		{"busy", ReportBusy, "busy", true},
		{"zero", Report(0x00), "unknown report code 0x00", false},
		{"unknown high", Report(0x7F), "unknown report code 0x7F", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.code.String())
			assert.Equal(t, tt.known, tt.code.Known())
		})
	}
}
