package cli

import (
	"github.com/spf13/cobra"
	slog "github.com/vearne/simplelog"

	"github.com/hannes-wan/pcap-editor/codec"
	"github.com/hannes-wan/pcap-editor/engine"
)

func newDiluteCmd() *cobra.Command {
	var factor int

	cmd := &cobra.Command{
		Use:   "dilute <input.pcap> <output.pcap>",
		Short: "Thin out a capture by deterministic sampling",
		Long: `Keeps every k-th packet of the capture (by original order) with its
timestamp unchanged, reducing packet count while preserving the shape of the
original time distribution.`,
		Example: `  pcap-editor dilute dense.pcap sparse.pcap --factor 10`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, err := codec.ReadFile(args[0])
			if err != nil {
				return err
			}
			out, err := engine.Dilute(seq, factor)
			if err != nil {
				return err
			}
			if err := codec.WriteFile(args[1], out); err != nil {
				return err
			}
			slog.Info("diluted capture: packets=%d kept=%d factor=%d output=%s",
				seq.Len(), out.Len(), factor, args[1])
			return nil
		},
	}

	cmd.Flags().IntVarP(&factor, "factor", "f", 0, "dilution factor (>= 1, keep every k-th packet)")
	_ = cmd.MarkFlagRequired("factor")
	return cmd
}

func newAugmentCmd() *cobra.Command {
	var factor int

	cmd := &cobra.Command{
		Use:   "augment <input.pcap> <output.pcap>",
		Short: "Multiply a capture by timestamp-interpolated duplication",
		Long: `Emits m copies of every packet. Duplicates are spread evenly across the
gap to the next packet so they never collide in time.`,
		Example: `  pcap-editor augment sparse.pcap dense.pcap --factor 3`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, err := codec.ReadFile(args[0])
			if err != nil {
				return err
			}
			out, err := engine.Augment(seq, factor)
			if err != nil {
				return err
			}
			if err := codec.WriteFile(args[1], out); err != nil {
				return err
			}
			slog.Info("augmented capture: packets=%d emitted=%d factor=%d output=%s",
				seq.Len(), out.Len(), factor, args[1])
			return nil
		},
	}

	cmd.Flags().IntVarP(&factor, "factor", "f", 0, "duplication factor (>= 1, copies per packet)")
	_ = cmd.MarkFlagRequired("factor")
	return cmd
}
