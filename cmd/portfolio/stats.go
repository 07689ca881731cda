package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/storage"
)

var (
	statsRecent int
	statsJSON   bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show visitor statistics",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		store, err := storage.Open(cfg.Storage.DataDir)
		if err != nil {
			return fmt.Errorf("opening storage: %w", err)
		}
		defer store.Close()

		stats, err := store.Stats(cmd.Context(), time.Now(), statsRecent)
		if err != nil {
			return fmt.Errorf("reading stats: %w", err)
		}
		if statsJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(stats)
		}
		return printStats(cmd.OutOrStdout(), stats)
	},
}

func init() {
	statsCmd.Flags().IntVarP(&statsRecent, "recent", "n", 10, "number of recent visits to list")
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "print JSON")
	rootCmd.AddCommand(statsCmd)
}

func printStats(w io.Writer, s *storage.Stats) error {
	fmt.Fprintf(w, "Total visits:     %d\n", s.TotalVisits)
	fmt.Fprintf(w, "Unique visitors:  %d\n", s.UniqueVisitors)
	fmt.Fprintf(w, "Today:            %d\n", s.VisitsToday)
	fmt.Fprintf(w, "This week:        %d\n", s.VisitsThisWeek)
	if len(s.Recent) == 0 {
		return nil
	}

	fmt.Fprintln(w)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TIME\tVISITOR\tPATH\tUSER AGENT")
	for _, v := range s.Recent {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", v.VisitedAt.Local().Format("Jan 2 15:04"), v.HashedIP, v.Path, v.UserAgent)
	}
	return tw.Flush()
}
