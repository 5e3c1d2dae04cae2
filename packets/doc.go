// Package packets implements the framing layer shared by the JVS protocol
// families: fixed-capacity packet buffers with layout-driven field access,
// the SYNC/MARK byte-stuffing codec, and length-aware packet transfer over
// byte streams.
//
// # Frame Overview
//
// Every frame starts with the SYNC byte (0xE0) followed by a handful of
// fixed fields, a variable DATA region and a trailing one-byte checksum:
//
//	[SYNC][fixed fields...][SIZE][...][DATA...][SUM]
//
// The position of each fixed field is described by a Layout. The logical
// length of a frame is never stored; it is derived from the SIZE byte:
//
//	length = SizeIndex + buf[SizeIndex] + 1
//
// so SIZE counts every byte from just after itself through SUM inclusive.
//
// # Escaping
//
// SYNC may only ever appear as the first byte of a frame. Any SYNC or MARK
// value inside the frame body is transmitted as the two-byte sequence
// [MARK, value-1]; see Reader.ReadEscapedByte and Writer.WriteEscapedByte.
// The leading SYNC byte itself is never escaped.
//
// # Checksum
//
// The checksum is the 8-bit wrapping sum of every byte after SYNC up to,
// but not including, the SUM slot. Checksums are computed over the logical
// frame before escaping. Reader deliberately does not validate checksums;
// callers decide whether and when to verify (see Buffer.CalculateChecksum).
//
// # Packet Shapes
//
// Concrete packet types live in the family packages (jvs, jvsmod). They all
// embed Buffer and differ only in their Layout and extension accessors, so
// Reader and Writer operate on any of them through the Packet interface.
package packets
