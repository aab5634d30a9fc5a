// mspctl is the operator tool for the ardudeck MSP codec: it decodes raw
// capture files, builds frames for transmission, and checks OSD font assets.
// It never opens a serial port itself; captures come from files or stdin.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rubenCodeforges/ardudeck-sub012/internal/logging"
)

var (
	cfgFile string
	cfg     toolConfig
)

var rootCmd = &cobra.Command{
	Use:           "mspctl",
	Short:         "Decode, build, and inspect MSP frames and OSD font assets",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.ConfigureRuntime("mspctl")
		var err error
		cfg, err = loadConfig(cfgFile)
		return err
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to mspctl TOML config")
	rootCmd.AddCommand(newDecodeCmd(), newBuildCmd(), newFontCmd())
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "mspctl:", err)
		os.Exit(1)
	}
}
