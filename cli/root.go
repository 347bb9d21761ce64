// Package cli maps subcommands and flags onto engine operations. It is
// glue only: every command loads a sequence through the codec, runs exactly
// one engine operation and hands the result back to the codec or the
// report renderer.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hannes-wan/pcap-editor/config"
	"github.com/hannes-wan/pcap-editor/consts"
)

const banner = `
██████╗  ██████╗ █████╗ ██████╗     ███████╗██████╗ ██╗██████╗ ██████╗ ███████╗██████╗
██╔══██╗██╔════╝██╔══██╗██╔══██╗    ██╔════╝██╔══██╗██║██╔══██╗██╔══██╗██╔════╝██╔══██╗
██████╔╝██║     ███████║██████╔╝    █████╗  ██║  ██║██║██║  ██║██║  ██║█████╗  ██████╔╝
██╔═══╝ ██║     ██╔══██║██╔═══╝     ██╔══╝  ██║  ██║██║██║  ██║██║  ██║██╔══╝  ██╔══██╗
██║     ╚██████╗██║  ██║██║         ███████╗██████╔╝██║██████╔╝██████╔╝███████╗██║  ██║
╚═╝      ╚═════╝╚═╝  ╚═╝╚═╝         ╚══════╝╚═════╝ ╚═╝╚═════╝ ╚═════╝ ╚══════╝╚═╝  ╚═╝
`

var settings config.AppSettings

// NewRootCmd creates the root pcap-editor command.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pcap-editor",
		Short: "Offline pcap transformation toolbox",
		Long: banner + `
pcap-editor manufactures and validates synthetic traffic traces: it rescales
capture timelines, thins or multiplies packet streams, audits timestamp
ordering and diffs two captures by content.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.AdjustLogLevel(settings.LogLevel)
		},
	}

	root.PersistentFlags().StringVarP(&settings.LogLevel, "log-level", "l",
		"info", "log level (debug|info|warn|error)")

	root.AddCommand(
		newTimeCompressCmd(),
		newTimeStretchCmd(),
		newDiluteCmd(),
		newAugmentCmd(),
		newDisorderDetectCmd(),
		newCompareCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute runs the command tree.
func Execute() error {
	return NewRootCmd().Execute()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "service: pcap-editor")
			fmt.Fprintln(out, "Version", consts.Version)
			fmt.Fprintln(out, "BuildTime", consts.BuildTime)
			fmt.Fprintln(out, "GitTag", consts.GitTag)
		},
	}
}
