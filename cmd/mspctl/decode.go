package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rubenCodeforges/ardudeck-sub012/internal/msp"
	"github.com/rubenCodeforges/ardudeck-sub012/internal/msp/registry"
)

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <capture-file|->",
		Short: "Parse a raw MSP byte capture and print each frame",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := os.Stdin
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			return decodeStream(in, cfg.ChunkSize)
		},
	}
}

func decodeStream(in io.Reader, chunkSize int) error {
	reg := registry.Builtin()
	parser := msp.NewParser()
	buf := make([]byte, chunkSize)
	frames, rejected := 0, 0

	for {
		n, err := in.Read(buf)
		for _, ev := range parser.Feed(buf[:n]) {
			if ev.Err != nil {
				rejected++
				log.Warn().Err(ev.Err).Msg("frame rejected")
				continue
			}
			frames++
			reportFrame(reg, ev.Frame)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
	}

	log.Info().Int("frames", frames).Int("rejected", rejected).Msg("capture complete")
	return nil
}

func reportFrame(reg *registry.Registry, f *msp.Frame) {
	record, err := reg.Decode(f.Command, f.Payload)
	ev := log.Info().
		Str("gen", f.Generation.String()).
		Str("dir", f.Direction.String()).
		Str("msg", reg.Name(f.Command)).
		Int("size", len(f.Payload))
	if err != nil {
		ev.Err(err).Msg("payload decode failed")
		return
	}
	if raw, ok := record.(registry.Raw); ok {
		ev.Str("payload", fmt.Sprintf("% x", []byte(raw))).Msg("frame")
		return
	}
	ev.Str("record", fmt.Sprintf("%+v", record)).Msg("frame")
}
