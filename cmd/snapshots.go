package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/zenigata-dev/zeni/internal/cli"
	"github.com/zenigata-dev/zeni/internal/dashboard"
)

var snapshotDays int

var snapshotsCmd = &cobra.Command{
	Use:   "snapshots",
	Short: "List daily valuation snapshots",
	RunE:  runSnapshotsList,
}

var snapshotsTakeCmd = &cobra.Command{
	Use:   "take",
	Short: "Record today's snapshot if missing",
	RunE:  runSnapshotsTake,
}

func init() {
	snapshotsCmd.Flags().IntVarP(&snapshotDays, "days", "n", 30, "Time window in days")
	snapshotsCmd.AddCommand(snapshotsTakeCmd)
	rootCmd.AddCommand(snapshotsCmd)
}

func runSnapshotsList(_ *cobra.Command, _ []string) error {
	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	now := time.Now()
	start := now.AddDate(0, 0, -snapshotDays)
	snaps, err := st.SnapshotsInRange(start.Format("2006-01-02"), now.Format("2006-01-02"))
	if err != nil {
		return err
	}
	if len(snaps) == 0 {
		fmt.Println("\n  No snapshots in the selected period.")
		return nil
	}

	cur := cfg.General.Currency
	values := make([]float64, 0, len(snaps))
	rows := make([][]string, 0, len(snaps))
	for _, s := range snaps {
		values = append(values, s.TotalAssets.InexactFloat64())
		rows = append(rows, []string{
			s.Date,
			cli.FormatMoney(s.TotalAssets, cur),
			cli.FormatSignedMoney(s.DailyChange, cur),
			cli.FormatPercent(s.CashRatio),
		})
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("SNAPSHOTS  Last %dd", snapshotDays)))
	fmt.Println()
	fmt.Printf("  %s\n\n", cli.RenderSparkline(values))
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Total", "Change", "Cash"},
		Rows:    rows,
	}))
	return nil
}

func runSnapshotsTake(_ *cobra.Command, _ []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	id, err := dashboard.EnsureSnapshot(st, time.Now())
	if err != nil {
		return err
	}
	fmt.Printf("  Snapshot %s for %s\n", shortID(id), time.Now().Format("2006-01-02"))
	return nil
}
