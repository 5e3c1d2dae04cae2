package packets

import "io"

// Writer serializes packets to a byte stream, applying the MARK escape to
// every byte after the leading SYNC marker.
//
// Each packet is assembled into a scratch buffer and flushed with a single
// Write, so wrapping the underlying stream in bufio is unnecessary.
// Writes block until the underlying stream accepts the bytes.
type Writer struct {
	w       io.Writer
	scratch []byte
}

// NewWriter returns a Writer emitting to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteByte writes a single raw byte to the stream.
func (w *Writer) WriteByte(b byte) error {
	var buf [1]byte
	buf[0] = b
	_, err := w.w.Write(buf[:])
	return err
}

// WriteEscapedByte writes one logical byte, emitting two stream bytes when
// the value is SyncByte or MarkByte. Returns the number of stream bytes
// written (1 or 2).
func (w *Writer) WriteEscapedByte(b byte) (int, error) {
	var buf [2]byte
	return w.w.Write(appendEscaped(buf[:0], b))
}

// WritePacket writes p's logical packet: SYNC raw, every remaining byte
// (the stored checksum included) through the escape. Returns the number of
// stream bytes physically written, which exceeds the logical length by one
// per escaped byte.
//
// The stored checksum is sent as-is; call Buffer.CalculateChecksum first,
// or use WritePacketWithChecksum to compute it on the fly.
//
// Fails with a LengthError if the declared length leaves no room for the
// SUM byte, which no valid frame can do.
func (w *Writer) WritePacket(p Packet) (int, error) {
	layout := p.Layout()
	n := Length(p)
	if n < layout.minPacketLen() {
		return 0, &LengthError{Len: n, Min: layout.minPacketLen()}
	}

	frame := w.scratch[:0]
	frame = append(frame, SyncByte)
	for _, b := range p.Bytes()[1:n] {
		frame = appendEscaped(frame, b)
	}
	w.scratch = frame

	return w.w.Write(frame)
}

// WritePacketWithChecksum is WritePacket except that the stored checksum is
// ignored: a wrapping sum is accumulated over every byte from just after
// SYNC through the last DATA byte and written (escaped) as the final byte.
// The packet itself is not modified.
func (w *Writer) WritePacketWithChecksum(p Packet) (int, error) {
	layout := p.Layout()
	n := Length(p)
	if n < layout.minPacketLen() {
		return 0, &LengthError{Len: n, Min: layout.minPacketLen()}
	}

	frame := w.scratch[:0]
	frame = append(frame, SyncByte)
	var sum byte
	for _, b := range p.Bytes()[1 : n-1] {
		frame = appendEscaped(frame, b)
		sum += b
	}
	frame = appendEscaped(frame, sum)
	w.scratch = frame

	return w.w.Write(frame)
}
