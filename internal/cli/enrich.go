package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/barsleague/rosterize/internal/pipeline"
)

var (
	directoryURL  string
	lookupWorkers int
	enrichTimeout time.Duration
	noCache       bool
	enrichJSON    string
	enrichMD      string
)

// enrichCmd represents the enrich command
var enrichCmd = &cobra.Command{
	Use:   "enrich <roster.csv>",
	Short: "Parse a roster and attach member-directory account ids",
	Long: `Enrich parses the roster like parse does, then resolves every
primary email against the member directory with a bounded worker pool.
Transient directory failures (DNS, connection resets, timeouts, 429/5xx)
are retried with exponential backoff; an email the directory cannot
resolve is simply left without an account id.

Example:
  rosterize enrich roster.csv --directory-url https://directory.example.org
  rosterize enrich roster.csv --workers 20 --timeout 5m`,
	Args: cobra.ExactArgs(1),
	RunE: runEnrich,
}

func init() {
	rootCmd.AddCommand(enrichCmd)

	enrichCmd.Flags().StringVar(&directoryURL, "directory-url", "", "member directory base URL")
	enrichCmd.Flags().IntVar(&lookupWorkers, "workers", 0, "concurrent lookup workers (default from config)")
	enrichCmd.Flags().DurationVar(&enrichTimeout, "timeout", 5*time.Minute, "overall enrichment timeout")
	enrichCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the lookup result cache")
	enrichCmd.Flags().StringVar(&enrichJSON, "json", "hierarchy.json", "output JSON path")
	enrichCmd.Flags().StringVar(&enrichMD, "md", "", "output Markdown summary path (optional)")
}

func runEnrich(cmd *cobra.Command, args []string) error {
	cfg := buildConfig()
	if directoryURL != "" {
		cfg.Directory.BaseURL = directoryURL
	}
	if cfg.Directory.BaseURL == "" {
		return fmt.Errorf("no directory base URL configured (set --directory-url or ROSTERIZE_DIRECTORY_BASE_URL)")
	}
	if lookupWorkers > 0 {
		cfg.Concurrency.LookupWorkers = lookupWorkers
	}
	cfg.Cache.Enabled = !noCache

	p, err := pipeline.New(cfg)
	if err != nil {
		return err
	}

	res, err := p.ParseFile(args[0])
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), enrichTimeout)
	defer cancel()

	if verbose {
		fmt.Fprintf(os.Stderr, "Resolving %d emails against %s (workers: %d)\n",
			len(res.Hierarchy.Emails()), cfg.Directory.BaseURL, cfg.Concurrency.LookupWorkers)
	}
	p.Enrich(ctx, res)

	if verbose {
		reportStats(res)
	}

	renderer := pipeline.NewRenderer(!noFooter)
	if enrichJSON != "" {
		if err := renderer.RenderJSON(res, enrichJSON); err != nil {
			return err
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", enrichJSON)
		}
	}
	if enrichMD != "" {
		if err := renderer.RenderMarkdown(res, enrichMD); err != nil {
			return err
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote Markdown: %s\n", enrichMD)
		}
	}
	return nil
}
