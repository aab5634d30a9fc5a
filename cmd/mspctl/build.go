package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rubenCodeforges/ardudeck-sub012/internal/msp"
)

func newBuildCmd() *cobra.Command {
	var (
		command   uint16
		direction string
		flags     uint8
		payloadHx string
		forceV2   bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Construct one MSP frame and print its wire bytes as hex",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := parseDirection(direction)
			if err != nil {
				return err
			}
			payload, err := hex.DecodeString(payloadHx)
			if err != nil {
				return fmt.Errorf("decode payload hex: %w", err)
			}

			var wire []byte
			if forceV2 || cfg.PreferV2 {
				wire, err = msp.BuildV2(dir, command, flags, payload)
			} else {
				wire, err = msp.Build(dir, command, payload)
			}
			if err != nil {
				return err
			}
			fmt.Println(hex.EncodeToString(wire))
			return nil
		},
	}

	cmd.Flags().Uint16Var(&command, "cmd", 0, "command id")
	cmd.Flags().StringVar(&direction, "dir", "request", "frame direction: request, response, or error")
	cmd.Flags().Uint8Var(&flags, "flags", 0, "v2 flags byte")
	cmd.Flags().StringVar(&payloadHx, "payload", "", "payload bytes as hex")
	cmd.Flags().BoolVar(&forceV2, "v2", false, "force the v2 wire format")
	_ = cmd.MarkFlagRequired("cmd")
	return cmd
}

func parseDirection(s string) (msp.Direction, error) {
	switch s {
	case "request", "<":
		return msp.DirectionRequest, nil
	case "response", ">":
		return msp.DirectionResponse, nil
	case "error", "!":
		return msp.DirectionError, nil
	default:
		return 0, fmt.Errorf("unknown direction %q", s)
	}
}
