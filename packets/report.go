package packets

import "fmt"

// Report is the status code a slave places before the first DATA byte of a
// response, indicating whether the request was processed successfully.
type Report byte

// Report codes.
const (
	// ReportNormal indicates the request was processed successfully
	ReportNormal Report = 0x01

	// ReportIncorrectDataSize indicates an incorrect number of parameters was sent
	ReportIncorrectDataSize Report = 0x02

	// ReportInvalidData indicates incorrect data was sent
	ReportInvalidData Report = 0x03

	// ReportBusy indicates the device I/O is busy
	ReportBusy Report = 0x04
)

// Known returns true if r is one of the defined report codes.
func (r Report) Known() bool {
	return r >= ReportNormal && r <= ReportBusy
}

func (r Report) String() string {
	switch r {
	case ReportNormal:
		return "normal"
	case ReportIncorrectDataSize:
		return "incorrect data size"
	case ReportInvalidData:
		return "invalid data"
	case ReportBusy:
		return "busy"
	default:
		return fmt.Sprintf("unknown report code 0x%02X", byte(r))
	}
}
