package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/robloxxa/jvs-packets/jvs"
	"github.com/robloxxa/jvs-packets/jvsmod"
	"github.com/robloxxa/jvs-packets/packets"
)

func decodeCmd() *cobra.Command {
	var (
		family string
		kind   string
		file   string
	)

	cmd := &cobra.Command{
		Use:   "decode [hex bytes]",
		Short: "Decode a captured frame and print its fields",
		Long: `Decode interprets a raw capture the way a bus reader would:
the escape sequences are undone and the fields of the selected packet shape
are printed. The capture must start at the SYNC byte.

Hex bytes may be given as arguments or read from a file; whitespace, commas
and 0x prefixes are ignored.`,
		Example: `  jvsutil decode E0 FF 03 01 02 05
  jvsutil decode --family modified --kind response --file capture.hex`,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := captureBytes(args, file)
			if err != nil {
				return err
			}
			if len(raw) == 0 {
				return fmt.Errorf("no capture bytes given")
			}
			return decodeFrame(cmd.OutOrStdout(), family, kind, raw)
		},
	}

	cmd.Flags().StringVar(&family, "family", familyStandard, "protocol family (standard|modified)")
	cmd.Flags().StringVar(&kind, "kind", "request", "packet direction (request|response)")
	cmd.Flags().StringVar(&file, "file", "", "read hex bytes from a file instead of arguments")

	return cmd
}

// captureBytes assembles the capture from arguments or a file and strips
// the usual hex-dump noise.
func captureBytes(args []string, file string) ([]byte, error) {
	var text string
	if file != "" {
		raw, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read capture: %w", err)
		}
		text = string(raw)
	} else {
		text = strings.Join(args, " ")
	}

	replacer := strings.NewReplacer(" ", "", "\t", "", "\n", "", "\r", "", ",", "", "0x", "", "0X", "")
	text = replacer.Replace(text)

	raw, err := hex.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("parse hex capture: %w", err)
	}
	return raw, nil
}

// decodeFrame reads one frame of the selected shape out of raw and prints
// its fields to w.
func decodeFrame(w io.Writer, family, kind string, raw []byte) error {
	r := packets.NewReader(bytes.NewReader(raw))

	switch family + "/" + kind {
	case familyStandard + "/request":
		p := jvs.NewRequestPacket()
		if _, err := r.ReadPacket(p); err != nil {
			return err
		}
		printCommon(w, &p.Buffer)
		return printChecksum(w, &p.Buffer)

	case familyStandard + "/response":
		p := jvs.NewResponsePacket()
		if _, err := r.ReadPacket(p); err != nil {
			return err
		}
		printCommon(w, &p.Buffer)
		fmt.Fprintf(w, "report:   0x%02X (%s)\n", p.ReportRaw(), p.Report())
		return printChecksum(w, &p.Buffer)

	case familyModified + "/request":
		p := jvsmod.NewRequestPacket()
		if _, err := r.ReadPacket(p); err != nil {
			return err
		}
		printCommon(w, &p.Buffer)
		fmt.Fprintf(w, "sequence: 0x%02X\n", p.Sequence())
		fmt.Fprintf(w, "cmd:      0x%02X\n", p.Cmd())
		return printChecksum(w, &p.Buffer)

	case familyModified + "/response":
		p := jvsmod.NewResponsePacket()
		if _, err := r.ReadPacket(p); err != nil {
			return err
		}
		printCommon(w, &p.Buffer)
		fmt.Fprintf(w, "sequence: 0x%02X\n", p.Sequence())
		fmt.Fprintf(w, "status:   0x%02X\n", p.Status())
		fmt.Fprintf(w, "cmd:      0x%02X\n", p.Cmd())
		fmt.Fprintf(w, "report:   0x%02X (%s)\n", p.ReportRaw(), p.Report())
		return printChecksum(w, &p.Buffer)

	default:
		return fmt.Errorf("unknown packet shape %s/%s", family, kind)
	}
}

func printCommon(w io.Writer, b *packets.Buffer) {
	fmt.Fprintf(w, "sync:     0x%02X\n", b.Sync())
	fmt.Fprintf(w, "dest:     0x%02X\n", b.Dest())
	fmt.Fprintf(w, "size:     %d\n", b.Size())
	fmt.Fprintf(w, "data:     % X\n", b.Data())
}

func printChecksum(w io.Writer, b *packets.Buffer) error {
	stored := b.Checksum()
	computed := packets.Checksum(b.Slice()[1 : b.Len()-1])
	if stored == computed {
		fmt.Fprintf(w, "checksum: 0x%02X (valid)\n", stored)
	} else {
		fmt.Fprintf(w, "checksum: 0x%02X (INVALID, computed 0x%02X)\n", stored, computed)
	}
	return nil
}
