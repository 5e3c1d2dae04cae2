// Package jvsmod provides the packet shapes of the modified JVS protocol
// family, a reordered and extended variant used by card and NFC readers.
//
// # Request Packet (master -> slave)
//
//	offset | 0    | 1    | 2    | 3   | 4   | 5..     | last |
//	field  | SYNC | SIZE | DEST | SEQ | CMD | DATA... | SUM  |
//
// # Response Packet (slave -> master)
//
//	offset | 0    | 1    | 2    | 3   | 4      | 5   | 6      | 7..     | last |
//	field  | SYNC | SIZE | DEST | SEQ | STATUS | CMD | REPORT | DATA... | SUM  |
//
// SIZE counts every byte after itself through SUM inclusive; note that it
// sits at offset 1 here, before the destination byte. Framing, escaping and
// checksum arithmetic are shared with the standard family and live in the
// packets package.
package jvsmod
