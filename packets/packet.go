package packets

// Packet is implemented by every packet shape. It exposes the backing
// storage and the field layout so Reader and Writer can frame any shape
// without knowing its family.
//
// Bytes returns the full backing buffer, not just the logical packet;
// use Length (or Buffer.Slice) for the meaningful prefix.
type Packet interface {
	Bytes() []byte
	Layout() Layout
}

// Length returns the logical packet length of p, derived from its SIZE byte.
func Length(p Packet) int {
	return p.Layout().packetLen(p.Bytes())
}
