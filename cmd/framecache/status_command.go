package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "status [dir]",
		Short: "Show which frames a cache directory holds",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			dir := cfg.Disk.Dir
			if len(args) == 1 {
				dir = args[0]
			}

			summary, err := scanCacheDir(dir)
			if err != nil {
				return err
			}

			if jsonFlag {
				return writeJSON(cmd, summary)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Directory: %s\n", summary.Dir)
			fmt.Fprintf(out, "Frames:    %d\n", summary.Entries)
			fmt.Fprintf(out, "Size:      %s\n", humanBytes(summary.TotalBytes))
			fmt.Fprintf(out, "Disk free: %s of %s\n",
				humanBytes(int64(summary.FreeBytes)), humanBytes(int64(summary.TotalFSBytes)))

			if summary.Entries == 0 {
				fmt.Fprintln(out, "Cached ranges: none")
				return nil
			}

			rows := make([][]string, 0, len(summary.Ranges))
			for _, r := range summary.Ranges {
				rows = append(rows, []string{
					fmt.Sprintf("%d–%d", r.Start, r.End),
					strconv.FormatInt(r.End-r.Start+1, 10),
					humanBytes(summary.rangeBytes(r)),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Range", "Frames", "Size"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit machine-readable JSON")
	return cmd
}

func humanBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
