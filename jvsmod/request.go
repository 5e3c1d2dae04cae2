package jvsmod

import "github.com/robloxxa/jvs-packets/packets"

var requestLayout = packets.Layout{
	SizeIndex:        1,
	DestinationIndex: 2,
	DataBeginIndex:   5,
}

// Request field offsets specific to the modified family.
const (
	requestSequenceIndex = 3
	requestCmdIndex      = 4
)

// RequestPacket is a master-to-slave packet of the modified family. It
// carries a sequence number and a command byte ahead of the data region.
type RequestPacket struct {
	packets.Buffer
}

// NewRequestPacket returns a zero-filled request packet with the default
// backing capacity.
func NewRequestPacket() *RequestPacket {
	return NewRequestPacketCapacity(packets.DefaultCapacity)
}

// NewRequestPacketCapacity returns a zero-filled request packet backed by
// capacity bytes. Capacity is fixed for the packet's lifetime.
func NewRequestPacketCapacity(capacity int) *RequestPacket {
	return &RequestPacket{Buffer: *packets.NewBuffer(requestLayout, capacity)}
}

// RequestPacketFromSlice returns a request packet initialized from a raw
// frame, copied verbatim into a default-capacity buffer.
func RequestPacketFromSlice(frame []byte) (*RequestPacket, error) {
	p := NewRequestPacket()
	if err := p.CopyFrom(frame); err != nil {
		return nil, err
	}
	return p, nil
}

// Sequence returns the SEQ byte.
func (p *RequestPacket) Sequence() byte {
	return p.Bytes()[requestSequenceIndex]
}

// SetSequence sets the SEQ byte.
func (p *RequestPacket) SetSequence(seq byte) {
	p.Bytes()[requestSequenceIndex] = seq
}

// Cmd returns the CMD byte.
func (p *RequestPacket) Cmd() byte {
	return p.Bytes()[requestCmdIndex]
}

// SetCmd sets the CMD byte.
func (p *RequestPacket) SetCmd(cmd byte) {
	p.Bytes()[requestCmdIndex] = cmd
}
