package master

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/robloxxa/jvs-packets/packets"
)

// Sequenced is implemented by packet shapes that carry a sequence number
// (the modified family, both directions).
type Sequenced interface {
	packets.Packet
	Sequence() byte
	SetSequence(seq byte)
}

// Master performs request/response exchanges against a single slave device
// over a byte stream. It owns the sequence counter for modified-family
// requests.
//
// Master is not safe for concurrent use; the protocol itself allows only
// one frame in flight per stream.
type Master struct {
	device io.ReadWriter
	config Config
	reader *packets.Reader
	writer *packets.Writer
	seq    byte
}

// New creates a Master speaking over device.
//
// The device must implement io.ReadWriter; any read deadline or timeout
// policy belongs to the device implementation.
func New(device io.ReadWriter, opts ...Option) *Master {
	if device == nil {
		panic("device cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Master{
		device: device,
		config: cfg,
		reader: packets.NewReader(device),
		writer: packets.NewWriter(device),
	}
}

// Exchange writes req (checksum computed on the fly) and reads the slave's
// reply into resp.
//
// If req carries a sequence number and auto-sequencing is enabled, the next
// counter value is assigned before writing, and resp must echo it. The
// response checksum is verified unless disabled. Failed exchanges are
// retried up to the configured count; the context is checked between
// attempts only, since the underlying blocking I/O cannot be interrupted
// here.
func (m *Master) Exchange(ctx context.Context, req packets.Packet, resp packets.Packet) error {
	if s, ok := req.(Sequenced); ok && m.config.AutoSequence {
		m.seq++
		s.SetSequence(m.seq)
	}

	var lastErr error
	for attempt := 0; attempt <= m.config.Retries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if attempt > 0 {
			m.logDebug("retrying exchange", "attempt", attempt, "error", lastErr)
		}

		if err := m.exchangeOnce(req, resp); err != nil {
			lastErr = err
			continue
		}
		return nil
	}

	return fmt.Errorf("exchange failed after %d attempt(s): %w", m.config.Retries+1, lastErr)
}

// exchangeOnce performs a single write/read cycle with verification.
func (m *Master) exchangeOnce(req packets.Packet, resp packets.Packet) error {
	written, err := m.writer.WritePacketWithChecksum(req)
	if err != nil {
		return fmt.Errorf("write request: %w", err)
	}
	m.logDebug("request written",
		"dest", fmt.Sprintf("0x%02X", req.Bytes()[req.Layout().DestinationIndex]),
		"logical_len", packets.Length(req),
		"wire_len", written,
	)

	// Some slaves need a breather between the request and their reply
	// being polled.
	if m.config.CommandDelay > 0 {
		time.Sleep(m.config.CommandDelay)
	}

	n, err := m.reader.ReadPacket(resp)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	m.logDebug("response read", "logical_len", n)

	if m.config.VerifyChecksum {
		if err := m.verifyChecksum(resp, n); err != nil {
			return err
		}
	}

	reqSeq, ok := req.(Sequenced)
	if !ok || !m.config.AutoSequence {
		return nil
	}
	if respSeq, ok := resp.(Sequenced); ok && respSeq.Sequence() != reqSeq.Sequence() {
		return &SequenceMismatchError{
			Want: reqSeq.Sequence(),
			Got:  respSeq.Sequence(),
		}
	}
	return nil
}

// verifyChecksum recomputes the response checksum and compares it with the
// stored SUM byte.
func (m *Master) verifyChecksum(resp packets.Packet, length int) error {
	stored := resp.Bytes()[length-1]
	computed := packets.Checksum(resp.Bytes()[1 : length-1])
	if stored != computed {
		return &ChecksumMismatchError{
			Expected: computed,
			Actual:   stored,
		}
	}
	return nil
}

// logDebug logs a debug message if a logger is configured.
func (m *Master) logDebug(msg string, keysAndValues ...interface{}) {
	if m.config.Logger != nil {
		m.config.Logger.Debug(msg, keysAndValues...)
	}
}
