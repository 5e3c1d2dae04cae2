// Package jvs provides the packet shapes of the standard JVS protocol
// family, used by JAMMA-style arcade I/O buses.
//
// # Request Packet (master -> slave)
//
//	offset | 0    | 1    | 2    | 3..     | last |
//	field  | SYNC | DEST | SIZE | DATA... | SUM  |
//
// # Response Packet (slave -> master)
//
//	offset | 0    | 1    | 2    | 3      | 4..     | last |
//	field  | SYNC | DEST | SIZE | REPORT | DATA... | SUM  |
//
// SIZE counts every byte after itself through SUM inclusive. SUM is the
// 8-bit wrapping sum of every byte after SYNC through the last DATA byte.
// Framing, escaping and checksum arithmetic are shared with the modified
// family and live in the packets package.
package jvs
