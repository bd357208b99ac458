package main

import (
	"fmt"
	"log"

	"fortio.org/safecast"
	"github.com/fatih/color"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"smartptr/infra/memory"
	"smartptr/infra/metrics"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ptrdemo",
		Short: "Walk through exclusive and shared ownership of a heap int",
		Long: `ptrdemo moves a Unique handle, then aliases a Shared handle three ways,
printing addresses, values and use counts along with every release.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
	cmd.Flags().Bool("no-color", false, "disable colored narration")
	cmd.Flags().Bool("quiet", false, "do not log each release")
	cmd.Flags().Bool("metrics", false, "dump release metrics in Prometheus text format")
	cmd.Flags().Int("history", 16, "number of release events to keep and print (power of two)")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf("ptrdemo: %v", err)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	noColor, _ := cmd.Flags().GetBool("no-color")
	quiet, _ := cmd.Flags().GetBool("quiet")
	dumpMetrics, _ := cmd.Flags().GetBool("metrics")
	history, _ := cmd.Flags().GetInt("history")

	if noColor {
		color.NoColor = true
	}

	size, err := safecast.Conv[uint64](history)
	if err != nil || size == 0 || size&(size-1) != 0 {
		return fmt.Errorf("--history must be a positive power of two, got %d", history)
	}

	out := cmd.OutOrStdout()
	ring := memory.NewReleaseRing(size)
	collector := metrics.NewReleaseCollector()
	reg := prometheus.NewRegistry()
	if err := collector.Register(reg); err != nil {
		return fmt.Errorf("register release collector: %w", err)
	}

	notifiers := []memory.Notifier{ring, collector}
	if !quiet {
		notifiers = append(notifiers, memory.NewLogNotifier(log.New(out, "", 0)))
	}
	defer memory.SetNotifier(memory.Multi(notifiers...))()

	n := newNarrator(out)
	exclusiveWalkthrough(n)
	fmt.Fprintln(out)
	sharedWalkthrough(n)

	fmt.Fprintln(out)
	n.heading("Release history")
	for _, ev := range ring.Snapshot() {
		fmt.Fprintln(out, ev)
	}

	if dumpMetrics {
		fmt.Fprintln(out)
		mfs, err := reg.Gather()
		if err != nil {
			return fmt.Errorf("gather metrics: %w", err)
		}
		for _, mf := range mfs {
			if _, err := expfmt.MetricFamilyToText(out, mf); err != nil {
				return fmt.Errorf("write metrics: %w", err)
			}
		}
	}
	return nil
}
