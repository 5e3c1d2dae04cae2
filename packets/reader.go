package packets

import (
	"bufio"
	"io"
)

// Reader reads frames from a byte stream, undoing the MARK escape and
// filling packet buffers in place.
//
// The escape rule forces byte-at-a-time reads, so Reader buffers the
// underlying stream with bufio unless it is already a *bufio.Reader.
// Reads block until the underlying stream delivers bytes; deadlines, if
// any, belong to the stream implementation.
type Reader struct {
	br *bufio.Reader
}

// NewReader returns a Reader consuming from r.
func NewReader(r io.Reader) *Reader {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Reader{br: br}
}

// ReadByte reads a single raw byte from the stream.
func (r *Reader) ReadByte() (byte, error) {
	return r.br.ReadByte()
}

// ReadEscapedByte reads one logical byte, consuming two stream bytes when
// the first is MarkByte: [MARK, x] decodes to x+1 (wrapping).
func (r *Reader) ReadEscapedByte() (byte, error) {
	b, err := r.br.ReadByte()
	if err != nil {
		return 0, err
	}
	if b != MarkByte {
		return b, nil
	}
	b, err = r.br.ReadByte()
	if err != nil {
		return 0, midFrame(err)
	}
	return b + 1, nil
}

// ReadPacket reads one complete frame into p and returns its logical length.
//
// The first byte is read raw and must be SyncByte; otherwise ReadPacket
// fails with a SyncError having consumed exactly that one byte. The fixed
// header through the SIZE byte is then read escape-decoded, the frame length
// is derived, and the remaining tail (fixed fields, data and SUM alike) is
// read escape-decoded into place.
//
// The checksum is not validated; compare p's stored checksum against
// a recomputation if validation is wanted. A stream that ends mid-frame
// surfaces io.ErrUnexpectedEOF; other I/O failures propagate unchanged.
// The packet content is unspecified after an error.
func (r *Reader) ReadPacket(p Packet) (int, error) {
	layout := p.Layout()
	buf := p.Bytes()

	sync, err := r.br.ReadByte()
	if err != nil {
		return 0, err
	}
	if sync != SyncByte {
		return 0, &SyncError{Got: sync}
	}
	buf[0] = sync

	// Read up to and including the SIZE byte.
	for i := 1; i <= layout.SizeIndex; i++ {
		if buf[i], err = r.ReadEscapedByte(); err != nil {
			return 0, midFrame(err)
		}
	}

	// last is the offset of the SUM byte.
	last := layout.SizeIndex + int(buf[layout.SizeIndex])
	if last+1 > len(buf) {
		return 0, &OverflowError{Need: last + 1, Capacity: len(buf)}
	}

	for i := layout.SizeIndex + 1; i <= last; i++ {
		if buf[i], err = r.ReadEscapedByte(); err != nil {
			return 0, midFrame(err)
		}
	}

	return last + 1, nil
}

// midFrame converts a clean EOF into io.ErrUnexpectedEOF: once a frame has
// started, running out of bytes is a truncation, not an end of input.
func midFrame(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
