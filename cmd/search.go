package cmd

import (
	"bufio"
	"fmt"
	"strings"
	"time"

	"enstracker/internal/debounce"
	"enstracker/internal/inventory"
	"enstracker/internal/query"

	"github.com/spf13/cobra"
)

// searchDebounce is the quiet period between keystrokes before a query runs.
const searchDebounce = 300 * time.Millisecond

var SearchCmd = &cobra.Command{
	Use:   "search",
	Short: "Interactive inventory search; each input line refines the query.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		statusFilter, _ := cmd.Flags().GetString("status")
		limit, _ := cmd.Flags().GetInt("limit")

		s, closeStore, err := openStore()
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer closeStore()

		repo := inventory.NewRepository(s)
		out := cmd.OutOrStdout()

		runQuery := func(search string) {
			assets, err := repo.All()
			if err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
				return
			}

			res := query.Execute(assets, query.Query{
				Search:       search,
				StatusFilter: statusFilter,
				Page:         query.PageSpec{Number: 1, Size: limit},
			})

			for _, a := range res.Items {
				fmt.Fprintf(out, "%-12s %-10s %-24s %-16s %s\n", a.Tag, a.Type, a.Model, a.User, a.Status)
			}
			fmt.Fprintf(out, "Showing %d - %d of %d\n", res.PageStart, res.PageEnd, res.TotalCount)
		}

		d := debounce.New(searchDebounce)
		defer d.Stop()

		fmt.Fprintln(out, "Type to search, empty line lists everything, Ctrl-D quits.")
		runQuery("")

		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			text := strings.TrimSpace(scanner.Text())
			d.Schedule(func() { runQuery(text) })
		}

		// Give the last pending query its quiet period before exiting.
		time.Sleep(searchDebounce + 50*time.Millisecond)
		return scanner.Err()
	},
}
