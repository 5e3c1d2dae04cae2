package packets

import "fmt"

// Buffer is a fixed-capacity byte container with field accessors derived
// from a Layout. Only the logical packet prefix (see Len) is meaningful;
// the remainder of the storage is zero until written.
//
// A Buffer is never resized and is not safe for concurrent use; use one
// buffer per in-flight exchange.
type Buffer struct {
	layout Layout
	buf    []byte
}

// NewBuffer returns a zero-filled Buffer with the given layout and capacity.
//
// Capacity is fixed for the buffer's lifetime. It panics if capacity cannot
// hold the smallest frame the layout permits; that is a programming error,
// not a runtime condition.
func NewBuffer(layout Layout, capacity int) *Buffer {
	if min := layout.minPacketLen(); capacity < min {
		panic(fmt.Sprintf("packets: capacity %d cannot hold the minimum packet length %d", capacity, min))
	}
	return &Buffer{
		layout: layout,
		buf:    make([]byte, capacity),
	}
}

// Bytes returns the full backing storage. Most callers want Slice instead.
func (b *Buffer) Bytes() []byte {
	return b.buf
}

// Layout returns the buffer's field layout.
func (b *Buffer) Layout() Layout {
	return b.layout
}

// Capacity returns the fixed capacity of the backing storage.
func (b *Buffer) Capacity() int {
	return len(b.buf)
}

// Len returns the logical packet length, derived from the SIZE byte:
// SizeIndex + SIZE + 1. It is a pure function of the current content.
func (b *Buffer) Len() int {
	return b.layout.packetLen(b.buf)
}

// Slice returns the logical packet: every byte from SYNC through SUM.
func (b *Buffer) Slice() []byte {
	return b.buf[:b.Len()]
}

// Sync returns the first byte of the packet.
func (b *Buffer) Sync() byte {
	return b.buf[0]
}

// SetSync writes the SYNC marker at offset zero. SYNC is a fixed marker,
// not a settable value, so there is nothing to pass.
func (b *Buffer) SetSync() {
	b.buf[0] = SyncByte
}

// Size returns the raw SIZE byte.
func (b *Buffer) Size() byte {
	return b.buf[b.layout.SizeIndex]
}

// SetSize sets the raw SIZE byte.
//
// This bypasses data-length consistency; prefer SetData, which recomputes
// SIZE from the data it copies.
func (b *Buffer) SetSize(size byte) {
	b.buf[b.layout.SizeIndex] = size
}

// Dest returns the destination address byte.
func (b *Buffer) Dest() byte {
	return b.buf[b.layout.DestinationIndex]
}

// SetDest sets the destination address byte.
func (b *Buffer) SetDest(dest byte) {
	b.buf[b.layout.DestinationIndex] = dest
}

// Data returns the DATA region: every byte between the fixed fields and SUM.
func (b *Buffer) Data() []byte {
	return b.buf[b.layout.DataBeginIndex : b.Len()-1]
}

// SetData copies data into the DATA region and recomputes the SIZE byte so
// that the packet ends with a SUM slot right after the copied data.
//
// Returns an OverflowError if data plus the trailing SUM byte would not fit
// in the buffer, or if data is too long for the one-byte SIZE field to
// describe. The buffer is unchanged on error.
func (b *Buffer) SetData(data []byte) error {
	end := b.layout.DataBeginIndex + len(data)
	if end+1 > len(b.buf) {
		return &OverflowError{Need: end + 1, Capacity: len(b.buf)}
	}
	if size := end - b.layout.SizeIndex; size > 0xFF {
		return &OverflowError{Need: end + 1, Capacity: b.layout.SizeIndex + 0xFF}
	}
	copy(b.buf[b.layout.DataBeginIndex:end], data)
	b.SetSize(byte(end - b.layout.SizeIndex))
	return nil
}

// Checksum returns the SUM byte at the end of the logical packet.
func (b *Buffer) Checksum() byte {
	return b.buf[b.Len()-1]
}

// SetChecksum sets the SUM byte.
//
// Prefer CalculateChecksum unless a deliberately wrong checksum is wanted
// (e.g. for testing a peer's validation).
func (b *Buffer) SetChecksum(sum byte) {
	b.buf[b.Len()-1] = sum
}

// CalculateChecksum computes the wrapping sum of every byte after SYNC up
// to the SUM slot, stores it in the SUM slot and returns it. The checksum
// is not auto-maintained by the other setters; call this after the last
// field change.
func (b *Buffer) CalculateChecksum() byte {
	sum := Checksum(b.buf[1 : b.Len()-1])
	b.SetChecksum(sum)
	return sum
}

// CopyFrom zero-fills the buffer and copies src into its prefix verbatim,
// with no offset recomputation.
//
// src must be at least MinPacketSize bytes (a frame always has SYNC, two
// fixed fields and SUM) and must fit within the buffer's capacity.
func (b *Buffer) CopyFrom(src []byte) error {
	if len(src) < MinPacketSize {
		return &LengthError{Len: len(src), Min: MinPacketSize}
	}
	if len(src) > len(b.buf) {
		return &OverflowError{Need: len(src), Capacity: len(b.buf)}
	}
	for i := range b.buf {
		b.buf[i] = 0
	}
	copy(b.buf, src)
	return nil
}
