package cli

import (
	"github.com/spf13/cobra"
	slog "github.com/vearne/simplelog"

	"github.com/hannes-wan/pcap-editor/codec"
	"github.com/hannes-wan/pcap-editor/engine"
	"github.com/hannes-wan/pcap-editor/report"
)

func newDisorderDetectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disorder-detect <input.pcap>",
		Short: "Report packets whose timestamps run backwards",
		Long: `Scans the capture once and reports every packet whose timestamp is
strictly earlier than its immediate predecessor's. Equal timestamps are fine.`,
		Example: `  pcap-editor disorder-detect capture.pcap`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, err := codec.ReadFile(args[0])
			if err != nil {
				return err
			}
			rep := engine.DetectDisorder(seq)
			for _, v := range rep.Violations {
				slog.Warn("out-of-order packet #%d: behind its predecessor by %v",
					v.OriginalIndex, v.Magnitude)
			}
			return report.RenderDisorder(cmd.OutOrStdout(), rep)
		},
	}
}

func newCompareCmd() *cobra.Command {
	var ignoreTimestamp bool

	cmd := &cobra.Command{
		Use:   "compare <reference.pcap> <candidate.pcap>",
		Short: "Diff two captures by packet content",
		Long: `Computes the content-hash multiset difference between a reference and a
candidate capture: which packets the candidate is missing and which it has
extra, independent of packet order.`,
		Example: `  pcap-editor compare golden.pcap replayed.pcap
  pcap-editor compare golden.pcap replayed.pcap --ignore-timestamp`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			reference, err := codec.ReadFile(args[0])
			if err != nil {
				return err
			}
			candidate, err := codec.ReadFile(args[1])
			if err != nil {
				return err
			}
			res := engine.Compare(reference, candidate, engine.CompareOptions{
				IgnoreTimestamp: ignoreTimestamp,
			})
			return report.RenderCompare(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().BoolVar(&ignoreTimestamp, "ignore-timestamp", false,
		"match packets on payload only, excluding timestamps from the hash")
	return cmd
}
