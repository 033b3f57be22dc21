package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/barsleague/rosterize/internal/pipeline"
)

var (
	outJSON    string
	outMD      string
	listEmails bool
	noFooter   bool
)

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse <roster.csv>",
	Short: "Parse a roster export into the leadership hierarchy",
	Long: `Parse reads a roster CSV export, resolves every row against the
hierarchy catalog, and writes the resulting hierarchy:
- Tree sections keyed by sub-section, team, and role
- Flat member lists for list-style sections
- Vacant seats collected under vacant_positions

Example:
  rosterize parse roster.csv
  rosterize parse roster.csv --json hierarchy.json --md summary.md
  rosterize parse roster.csv --emails`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVar(&outJSON, "json", "hierarchy.json", "output JSON path")
	parseCmd.Flags().StringVar(&outMD, "md", "", "output Markdown summary path (optional)")
	parseCmd.Flags().BoolVar(&listEmails, "emails", false, "print the deduplicated primary-email list and exit")
	parseCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown summaries")
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg := buildConfig()

	p, err := pipeline.New(cfg)
	if err != nil {
		return err
	}

	res, err := p.ParseFile(args[0])
	if err != nil {
		return err
	}

	if verbose {
		reportStats(res)
	}

	if listEmails {
		for _, email := range res.Hierarchy.Emails() {
			fmt.Println(email)
		}
		return nil
	}

	renderer := pipeline.NewRenderer(!noFooter)
	if outJSON != "" {
		if err := renderer.RenderJSON(res, outJSON); err != nil {
			return err
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", outJSON)
		}
	}
	if outMD != "" {
		if err := renderer.RenderMarkdown(res, outMD); err != nil {
			return err
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote Markdown: %s\n", outMD)
		}
	}
	return nil
}

// reportStats surfaces the silently dropped rows under --verbose. They are
// informational only and never fail a run.
func reportStats(res *pipeline.Result) {
	summary := res.Hierarchy.Summarize()
	fmt.Fprintf(os.Stderr, "Filled: %d  Vacant: %d\n", summary.Filled, summary.Vacant)
	if res.Stats.Orphans > 0 {
		fmt.Fprintf(os.Stderr, "Dropped %d rows before the first section marker\n", res.Stats.Orphans)
	}
	if res.Stats.Unmatched > 0 {
		fmt.Fprintf(os.Stderr, "Ignored %d rows with unrecognized position titles\n", res.Stats.Unmatched)
	}
}
