package jvs

import "github.com/robloxxa/jvs-packets/packets"

var requestLayout = packets.Layout{
	DestinationIndex: 1,
	SizeIndex:        2,
	DataBeginIndex:   3,
}

// RequestPacket is a master-to-slave packet of the standard family.
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
