package packets

// Layout describes the byte offsets of one packet shape.
//
// Each protocol family and direction places its fixed fields at different
// offsets; a Layout captures the three offsets every shape must have. Fields
// specific to a shape (REPORT, STATUS, CMD, SEQ) are accessed by the concrete
// packet types in the family packages at their own fixed offsets.
//
// Every offset is strictly smaller than DataBeginIndex, and DataBeginIndex
// is strictly greater than SizeIndex.
type Layout struct {
	// SizeIndex is the offset of the SIZE byte.
	SizeIndex int

	// DestinationIndex is the offset of the destination address byte.
	DestinationIndex int

	// DataBeginIndex is the offset of the first DATA byte.
	DataBeginIndex int
}

// packetLen derives the logical packet length from the SIZE byte in buf.
// SIZE counts every byte from just after itself through SUM inclusive.
func (l Layout) packetLen(buf []byte) int {
	return l.SizeIndex + int(buf[l.SizeIndex]) + 1
}

// minPacketLen is the smallest logical length a shape permits: an empty DATA
// region still needs the SUM byte at DataBeginIndex.
func (l Layout) minPacketLen() int {
	return l.DataBeginIndex + 1
}
