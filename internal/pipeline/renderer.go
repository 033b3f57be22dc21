package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// Renderer writes run results to files in the formats consumers expect.
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer.
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the serialized hierarchy. The shape (one key per
// configured section plus vacant_positions) is the output contract and
// must stay stable.
func (r *Renderer) RenderJSON(res *Result, path string) error {
	data, err := json.MarshalIndent(res.Hierarchy.Serialize(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal hierarchy: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

// RenderMarkdown writes a human-readable run summary: headline counts,
// vacant seats, and required-position gaps.
func (r *Renderer) RenderMarkdown(res *Result, path string) error {
	var b strings.Builder

	summary := res.Hierarchy.Summarize()
	b.WriteString("# Leadership Roster Summary\n\n")
	fmt.Fprintf(&b, "- Catalog version: %s\n", res.Version)
	fmt.Fprintf(&b, "- Filled positions: %d\n", summary.Filled)
	fmt.Fprintf(&b, "- With directory account: %d\n", summary.WithAccount)
	fmt.Fprintf(&b, "- Vacant seats: %d\n\n", summary.Vacant)

	if vacant := res.Hierarchy.VacantPaths(); len(vacant) > 0 {
		b.WriteString("## Vacant Seats\n\n")
		for _, p := range vacant {
			fmt.Fprintf(&b, "- `%s`\n", p)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Required Position Coverage\n\n")
	fmt.Fprintf(&b, "%d of %d required positions filled.\n\n",
		res.Completeness.Filled, res.Completeness.Required)
	for _, gap := range res.Completeness.Gaps {
		state := "never appeared in the export"
		if gap.Vacant {
			state = "marked vacant"
		}
		fmt.Fprintf(&b, "- `%s` (%s): %s\n", gap.Path, gap.Title, state)
	}
	if len(res.Completeness.Gaps) > 0 {
		b.WriteString("\n")
	}

	if r.includeFooter {
		fmt.Fprintf(&b, "---\nGenerated by rosterize on %s\n",
			time.Now().UTC().Format(time.RFC3339))
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}
