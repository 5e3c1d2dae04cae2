// Package master implements the master side of a JVS exchange: it writes a
// request frame with a freshly computed checksum, reads the slave's response
// frame and verifies it, over any io.ReadWriter (a serial port, a TCP
// connection, an in-memory pipe in tests).
//
// # Usage
//
//	port, _ := serial.Open(&serial.Config{Address: "/dev/ttyUSB0"})
//	m := master.New(port,
//	    master.WithRetries(2),
//	    master.WithLogger(myLogger),
//	)
//
//	req := jvsmod.NewRequestPacket()
//	req.SetSync()
//	req.SetDest(0xFF)
//	req.SetCmd(0x02)
//	req.SetData([]byte{0x01, 0x02})
//
//	resp := jvsmod.NewResponsePacket()
//	if err := m.Exchange(ctx, req, resp); err != nil {
//	    log.Fatal(err)
//	}
//
// Requests of the modified family carry a sequence number; by default the
// master assigns it from an internal counter and verifies that the response
// echoes it. Exchanges are strictly one at a time per stream: a Master is
// not safe for concurrent use.
package master
