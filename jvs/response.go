package jvs

import "github.com/robloxxa/jvs-packets/packets"

var responseLayout = packets.Layout{
	DestinationIndex: 1,
	SizeIndex:        2,
	DataBeginIndex:   4,
}

// reportIndex is the offset of the REPORT byte in response frames.
const reportIndex = 3

// ResponsePacket is a slave-to-master packet of the standard family. It
// carries a report code ahead of the data region.
type ResponsePacket struct {
	packets.Buffer
}

// NewResponsePacket returns a zero-filled response packet with the default
// backing capacity.
func NewResponsePacket() *ResponsePacket {
	return NewResponsePacketCapacity(packets.DefaultCapacity)
}

// NewResponsePacketCapacity returns a zero-filled response packet backed by
// capacity bytes. Capacity is fixed for the packet's lifetime.
func NewResponsePacketCapacity(capacity int) *ResponsePacket {
	return &ResponsePacket{Buffer: *packets.NewBuffer(responseLayout, capacity)}
}

// ResponsePacketFromSlice returns a response packet initialized from a raw
// frame, copied verbatim into a default-capacity buffer.
func ResponsePacketFromSlice(frame []byte) (*ResponsePacket, error) {
	p := NewResponsePacket()
	if err := p.CopyFrom(frame); err != nil {
		return nil, err
	}
	return p, nil
}

// Report returns the decoded report code.
func (p *ResponsePacket) Report() packets.Report {
	return packets.Report(p.ReportRaw())
}

// ReportRaw returns the raw REPORT byte.
func (p *ResponsePacket) ReportRaw() byte {
	return p.Bytes()[reportIndex]
}

// SetReport sets the REPORT byte.
func (p *ResponsePacket) SetReport(report byte) {
	p.Bytes()[reportIndex] = report
}
