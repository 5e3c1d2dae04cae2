package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/robloxxa/jvs-packets/jvs"
	"github.com/robloxxa/jvs-packets/jvsmod"
	"github.com/robloxxa/jvs-packets/packets"
)

func listenCmd() *cobra.Command {
	var (
		configPath string
		address    string
		kind       string
	)

	cmd := &cobra.Command{
		Use:   "listen",
		Short: "Attach to a serial port and log every frame",
		Long: `Listen opens the configured serial port and logs the fields of every
frame it can read. Bytes that do not start a valid frame are skipped one at
a time, which effectively resynchronizes on the next SYNC byte.`,
		Example: `  jvsutil listen --config jvsutil.yaml
  jvsutil listen --address /dev/ttyUSB0 --kind response`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if address != "" {
				cfg.Serial.Address = address
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

			logger.Info("listening",
				zap.String("address", cfg.Serial.Address),
				zap.Int("baud_rate", cfg.Serial.BaudRate),
				zap.String("family", cfg.Protocol.Family),
				zap.String("kind", kind),
			)

			return listen(packets.NewReader(port), logger, cfg.Protocol.Family, kind)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to yaml configuration")
	cmd.Flags().StringVar(&address, "address", "", "serial port address (overrides config)")
	cmd.Flags().StringVar(&kind, "kind", "response", "packet direction to decode (request|response)")

	return cmd
}

// listen reads frames forever, logging each one. A SyncError only skips the
// offending byte; any other error ends the loop.
func listen(r *packets.Reader, logger *zap.Logger, family, kind string) error {
	for {
		p, err := newShape(family, kind)
		if err != nil {
			return err
		}

		if _, err := r.ReadPacket(p); err != nil {
			if packets.IsSyncError(err) {
				logger.Debug("skipping stray byte", zap.Error(err))
				continue
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		logFrame(logger, p)
	}
}

// newShape builds an empty packet of the requested shape.
func newShape(family, kind string) (packets.Packet, error) {
	switch family + "/" + kind {
	case familyStandard + "/request":
		return jvs.NewRequestPacket(), nil
	case familyStandard + "/response":
		return jvs.NewResponsePacket(), nil
	case familyModified + "/request":
		return jvsmod.NewRequestPacket(), nil
	case familyModified + "/response":
		return jvsmod.NewResponsePacket(), nil
	default:
		return nil, fmt.Errorf("unknown packet shape %s/%s", family, kind)
	}
}

// logFrame logs the decoded fields of one frame.
func logFrame(logger *zap.Logger, p packets.Packet) {
	fields := []zap.Field{
		zap.Uint8("dest", p.Bytes()[p.Layout().DestinationIndex]),
		zap.Int("len", packets.Length(p)),
	}

	switch v := p.(type) {
	case *jvs.ResponsePacket:
		fields = append(fields,
			zap.String("report", v.Report().String()),
			zap.String("data", fmt.Sprintf("% X", v.Data())),
		)
	case *jvsmod.RequestPacket:
		fields = append(fields,
			zap.Uint8("seq", v.Sequence()),
			zap.Uint8("cmd", v.Cmd()),
			zap.String("data", fmt.Sprintf("% X", v.Data())),
		)
	case *jvsmod.ResponsePacket:
		fields = append(fields,
			zap.Uint8("seq", v.Sequence()),
			zap.Uint8("status", v.Status()),
			zap.Uint8("cmd", v.Cmd()),
			zap.String("report", v.Report().String()),
			zap.String("data", fmt.Sprintf("% X", v.Data())),
		)
	case *jvs.RequestPacket:
		fields = append(fields,
			zap.String("data", fmt.Sprintf("% X", v.Data())),
		)
	}

	logger.Info("frame", fields...)
}
