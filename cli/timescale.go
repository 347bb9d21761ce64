package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	slog "github.com/vearne/simplelog"

	"github.com/hannes-wan/pcap-editor/codec"
	"github.com/hannes-wan/pcap-editor/engine"
)

func newTimeCompressCmd() *cobra.Command {
	var factor float64

	cmd := &cobra.Command{
		Use:   "time-compress <input.pcap> <output.pcap>",
		Short: "Compress the capture timeline",
		Long: `Shrinks the inter-packet spacing of a capture by the given factor while
keeping the absolute start time, packet contents and relative order intact.`,
		Example: `  pcap-editor time-compress slow.pcap fast.pcap --factor 2.5`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if factor <= 1 {
				return fmt.Errorf("time-compress: factor must be greater than 1, got %g", factor)
			}
			return runScale(args[0], args[1], factor)
		},
	}

	cmd.Flags().Float64VarP(&factor, "factor", "f", 0, "compression factor (> 1)")
	_ = cmd.MarkFlagRequired("factor")
	return cmd
}

func newTimeStretchCmd() *cobra.Command {
	var factor float64

	cmd := &cobra.Command{
		Use:   "time-stretch <input.pcap> <output.pcap>",
		Short: "Stretch the capture timeline",
		Long: `Widens the inter-packet spacing of a capture by the given factor while
keeping the absolute start time, packet contents and relative order intact.`,
		Example: `  pcap-editor time-stretch burst.pcap slow.pcap --factor 4`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if factor <= 0 {
				return fmt.Errorf("time-stretch: factor must be greater than 0, got %g", factor)
			}
			// Stretching by s is scaling by 1/s.
			return runScale(args[0], args[1], 1/factor)
		},
	}

	cmd.Flags().Float64VarP(&factor, "factor", "f", 0, "stretch factor (> 0)")
	_ = cmd.MarkFlagRequired("factor")
	return cmd
}

func runScale(input, output string, factor float64) error {
	seq, err := codec.ReadFile(input)
	if err != nil {
		return err
	}
	if err := engine.Scale(seq, factor); err != nil {
		return err
	}
	if err := codec.WriteFile(output, seq); err != nil {
		return err
	}
	slog.Info("rescaled timeline: packets=%d factor=%g output=%s", seq.Len(), factor, output)
	return nil
}
