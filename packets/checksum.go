package packets

// Checksum computes the 8-bit wrapping sum of data.
//
// For a well-formed frame the checksum covers every byte after SYNC up to,
// but not including, the SUM slot, i.e. Checksum(buf[1 : length-1]).
// Overflow wraps silently (mod 256).
func Checksum(data []byte) byte {
	var sum byte
	for _, b := range data {
		sum += b
	}
	return sum
}
