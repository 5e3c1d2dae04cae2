package main

import (
	"bytes"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/robloxxa/jvs-packets/jvs"
	"github.com/robloxxa/jvs-packets/jvsmod"
	"github.com/robloxxa/jvs-packets/master"
	"github.com/robloxxa/jvs-packets/packets"
)

func pollCmd() *cobra.Command {
	var (
		configPath string
		address    string
		dest       uint8
		cmdByte    uint8
		dataHex    string
		retries    int
		delayMs    int
	)

	cmd := &cobra.Command{
		Use:   "poll",
		Short: "Send one request and print the decoded response",
		Long: `Poll builds a request of the configured family, sends it with a
computed checksum and prints the decoded response. For the modified family
the sequence number is assigned automatically and the command byte is taken
from --cmd.`,
		Example: `  jvsutil poll --config jvsutil.yaml --data "01 02"
  jvsutil poll --address /dev/ttyUSB0 --dest 0xFF --cmd 0x02 --data 0102`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if address != "" {
				cfg.Serial.Address = address
			}
			if cmd.Flags().Changed("dest") {
				cfg.Protocol.Destination = dest
			}

			data, err := captureBytes([]string{dataHex}, "")
			if err != nil {
				return err
			}

			logger, err := newLogger(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			port, err := cfg.Serial.open()
			if err != nil {
				return fmt.Errorf("open serial port: %w", err)
			}
			defer func() { _ = port.Close() }()

			m := master.New(port,
				master.WithLogger(&zapAdapter{s: logger.Sugar()}),
				master.WithRetries(retries),
				master.WithCommandDelay(time.Duration(delayMs)*time.Millisecond),
			)

			return poll(cmd, m, cfg, cmdByte, data)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to yaml configuration")
	cmd.Flags().StringVar(&address, "address", "", "serial port address (overrides config)")
	cmd.Flags().Uint8Var(&dest, "dest", 0xFF, "destination address (overrides config)")
	cmd.Flags().Uint8Var(&cmdByte, "cmd", 0, "command byte (modified family only)")
	cmd.Flags().StringVar(&dataHex, "data", "", "request data as hex bytes")
	cmd.Flags().IntVar(&retries, "retries", 0, "additional attempts for a failed exchange")
	cmd.Flags().IntVar(&delayMs, "delay", 0, "milliseconds to wait between request and response")

	return cmd
}

// poll performs one exchange and prints the response fields.
func poll(cmd *cobra.Command, m *master.Master, cfg *Config, cmdByte uint8, data []byte) error {
	out := cmd.OutOrStdout()

	switch cfg.Protocol.Family {
	case familyStandard:
		req := jvs.NewRequestPacket()
		req.SetSync()
		req.SetDest(cfg.Protocol.Destination)
		if err := req.SetData(data); err != nil {
			return err
		}

		resp := jvs.NewResponsePacket()
		if err := m.Exchange(cmd.Context(), req, resp); err != nil {
			return err
		}
		return decodeFrame(out, familyStandard, "response", rawFrame(&resp.Buffer))

	case familyModified:
		req := jvsmod.NewRequestPacket()
		req.SetSync()
		req.SetDest(cfg.Protocol.Destination)
		req.SetCmd(cmdByte)
		if err := req.SetData(data); err != nil {
			return err
		}

		resp := jvsmod.NewResponsePacket()
		if err := m.Exchange(cmd.Context(), req, resp); err != nil {
			return err
		}
		return decodeFrame(out, familyModified, "response", rawFrame(&resp.Buffer))

	default:
		return fmt.Errorf("unknown protocol family %q", cfg.Protocol.Family)
	}
}

// rawFrame re-serializes a decoded packet so decodeFrame can reuse the
// capture printing path.
func rawFrame(p packets.Packet) []byte {
	var buf bytes.Buffer
	if _, err := packets.NewWriter(&buf).WritePacket(p); err != nil {
		return nil
	}
	return buf.Bytes()
}
