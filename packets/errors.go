package packets

import (
	"errors"
	"fmt"
)

// SyncError indicates that the first raw byte of a frame was not SyncByte.
//
// The reader consumes exactly one byte before failing; resynchronization
// (scanning forward for the next SyncByte) is deliberately left to the
// caller, since the right recovery policy depends on the transport.
type SyncError struct {
	// Got is the byte found where SyncByte was expected.
	Got byte
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("expected SYNC byte (0x%02X), found 0x%02X", SyncByte, e.Got)
}

// IsSyncError returns true if the error is a SyncError.
func IsSyncError(err error) bool {
	var se *SyncError
	return errors.As(err, &se)
}

// OverflowError indicates that an operation would exceed a packet buffer's
// fixed capacity. The buffer is left untouched.
type OverflowError struct {
	// Need is the number of bytes the operation required
	Need int

	// Capacity is the buffer's fixed capacity
	Capacity int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("packet buffer overflow: need %d bytes, capacity is %d", e.Need, e.Capacity)
}

// IsOverflowError returns true if the error is an OverflowError.
func IsOverflowError(err error) bool {
	var oe *OverflowError
	return errors.As(err, &oe)
}

// LengthError indicates a logical packet length too small to contain the
// mandatory fields plus the checksum byte.
type LengthError struct {
	// Len is the declared logical length
	Len int

	// Min is the smallest valid length for the packet's layout
	Min int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("invalid packet length %d: minimum is %d", e.Len, e.Min)
}

// IsLengthError returns true if the error is a LengthError.
func IsLengthError(err error) bool {
	var le *LengthError
	return errors.As(err, &le)
}
