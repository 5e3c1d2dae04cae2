package packets

// appendEscaped appends b to dst, applying the MARK escape rule.
//
// SyncByte and MarkByte are the only values that require escaping; they are
// emitted as MarkByte followed by the value minus one (wrapping). Every
// other value is appended unchanged.
func appendEscaped(dst []byte, b byte) []byte {
	if b == SyncByte || b == MarkByte {
		return append(dst, MarkByte, b-1)
	}
	return append(dst, b)
}
