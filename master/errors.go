package master

import "fmt"

// ChecksumMismatchError indicates that a response frame's stored checksum
// does not match the recomputed value.
type ChecksumMismatchError struct {
	Expected byte
	Actual   byte
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("response checksum mismatch: expected 0x%02X, got 0x%02X",
		e.Expected, e.Actual)
}

// SequenceMismatchError indicates that a response frame did not echo the
// request's sequence number.
type SequenceMismatchError struct {
	Want byte
	Got  byte
}

func (e *SequenceMismatchError) Error() string {
	return fmt.Sprintf("response sequence mismatch: sent 0x%02X, got 0x%02X",
		e.Want, e.Got)
}
