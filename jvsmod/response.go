package jvsmod

import "github.com/robloxxa/jvs-packets/packets"

var responseLayout = packets.Layout{
	SizeIndex:        1,
	DestinationIndex: 2,
	DataBeginIndex:   7,
}

// Response field offsets specific to the modified family.
const (
	responseSequenceIndex = 3
	responseStatusIndex   = 4
	responseCmdIndex      = 5
	responseReportIndex   = 6
)

// ResponsePacket is a slave-to-master packet of the modified family. It
// echoes the request's sequence and command bytes and carries a status and
// a report code ahead of the data region.
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

// Sequence returns the SEQ byte.
func (p *ResponsePacket) Sequence() byte {
	return p.Bytes()[responseSequenceIndex]
}

// SetSequence sets the SEQ byte.
func (p *ResponsePacket) SetSequence(seq byte) {
	p.Bytes()[responseSequenceIndex] = seq
}

// Status returns the STATUS byte.
func (p *ResponsePacket) Status() byte {
	return p.Bytes()[responseStatusIndex]
}

// SetStatus sets the STATUS byte.
func (p *ResponsePacket) SetStatus(status byte) {
	p.Bytes()[responseStatusIndex] = status
}

// Cmd returns the CMD byte.
func (p *ResponsePacket) Cmd() byte {
	return p.Bytes()[responseCmdIndex]
}

// SetCmd sets the CMD byte.
func (p *ResponsePacket) SetCmd(cmd byte) {
	p.Bytes()[responseCmdIndex] = cmd
}

// Report returns the decoded report code.
func (p *ResponsePacket) Report() packets.Report {
	return packets.Report(p.ReportRaw())
}

// ReportRaw returns the raw REPORT byte.
func (p *ResponsePacket) ReportRaw() byte {
	return p.Bytes()[responseReportIndex]
}

// SetReport sets the REPORT byte.
func (p *ResponsePacket) SetReport(report byte) {
	p.Bytes()[responseReportIndex] = report
}
