package packets

// Frame marker constants shared by both protocol families.
const (
	// SyncByte marks the beginning of every frame (0xE0).
	// Readers treat the first byte of a frame as raw; SyncByte is never escaped.
	SyncByte = 0xE0

	// MarkByte is the escape marker (0xD0).
	//
	// SyncByte is reserved for frame starts, so literal occurrences of
	// SyncByte or MarkByte inside a frame body are transmitted as MarkByte
	// followed by the value minus one: 0xE0 becomes D0 DF, 0xD0 becomes D0 CF.
	MarkByte = 0xD0
)

// MinPacketSize is the smallest meaningful frame in bytes:
// SYNC(1) + two fixed fields + SUM(1). Both families need at least this much.
const MinPacketSize = 4

// DefaultCapacity is the default backing-buffer capacity for new packets.
// The SIZE field is a single byte, so 256 covers any frame a peer can declare.
const DefaultCapacity = 256
