// Package pipeline orchestrates a full roster run from export to report.
package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/barsleague/rosterize/internal/cache"
	"github.com/barsleague/rosterize/internal/directory"
	"github.com/barsleague/rosterize/internal/hierconf"
	"github.com/barsleague/rosterize/internal/model"
	"github.com/barsleague/rosterize/internal/report"
	"github.com/barsleague/rosterize/internal/roster"
)

// Pipeline wires the catalog, builder, and directory resolver together.
type Pipeline struct {
	catalog *hierconf.Catalog
	builder *roster.Builder
	config  *model.Config
}

// Result is the outcome of one roster run.
type Result struct {
	Hierarchy    *model.Hierarchy
	Stats        roster.Stats
	Completeness report.Completeness
	Version      string
}

// New creates a pipeline, loading the hierarchy catalog from the configured
// path. Catalog problems are fatal before any row is processed.
func New(cfg *model.Config) (*Pipeline, error) {
	catalog, err := hierconf.Load(cfg.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return &Pipeline{
		catalog: catalog,
		builder: roster.NewBuilder(catalog),
		config:  cfg,
	}, nil
}

// Catalog exposes the loaded catalog to callers that report against it.
func (p *Pipeline) Catalog() *hierconf.Catalog {
	return p.catalog
}

// ParseFile reads a roster export from a CSV file and builds the hierarchy.
func (p *Pipeline) ParseFile(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open roster: %w", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := roster.ReadCSV(f)
	if err != nil {
		return nil, err
	}
	return p.ParseRows(rows)
}

// ParseRows builds the hierarchy from pre-read rows.
func (p *Pipeline) ParseRows(rows [][]string) (*Result, error) {
	h, stats, err := p.builder.Build(rows)
	if err != nil {
		return nil, err
	}
	return &Result{
		Hierarchy:    h,
		Stats:        stats,
		Completeness: report.Check(p.catalog, h),
		Version:      p.catalog.Version,
	}, nil
}

// Enrich resolves every primary email in the result against the member
// directory and attaches the account ids. Lookups that fail or find no
// account leave their records untouched.
func (p *Pipeline) Enrich(ctx context.Context, res *Result) {
	client := directory.NewClient(p.config.Directory)
	resolver := directory.NewResolver(client, p.lookupCache(),
		p.config.Concurrency.LookupWorkers, p.config.Directory.MaxRetries)

	emails := res.Hierarchy.Emails()
	accounts := resolver.Resolve(ctx, emails)
	res.Hierarchy.ApplyAccounts(accounts)

	// Re-derive counts now that account ids are attached.
	res.Completeness = report.Check(p.catalog, res.Hierarchy)
}

// lookupCache builds the configured cache, nil when caching is disabled.
func (p *Pipeline) lookupCache() cache.Cache {
	if !p.config.Cache.Enabled {
		return nil
	}
	if p.config.Cache.Dir == "" {
		return cache.NewMemoryCache(p.config.Cache.MemoryTTL, p.config.Cache.MemoryTTL)
	}
	return cache.NewLayeredCache(p.config.Cache.MemoryTTL, p.config.Cache.Dir, p.config.Cache.DiskTTL)
}
