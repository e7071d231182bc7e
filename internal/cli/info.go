package cli

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/lodeworks/nbtkit/pkg/nbt"
)

// docStats summarizes a tag tree: per-type tag counts and the deepest
// nesting level reached.
type docStats struct {
	Counts   map[nbt.ID]int
	Total    int
	MaxDepth int
}

// collectStats walks the tree and tallies every tag, including composite
// containers themselves. The root counts as depth 0.
func collectStats(t nbt.Tag) *docStats {
	s := &docStats{Counts: make(map[nbt.ID]int)}
	s.walk(t, 0)
	return s
}

func (s *docStats) walk(t nbt.Tag, depth int) {
	s.Counts[t.ID()]++
	s.Total++
	if depth > s.MaxDepth {
		s.MaxDepth = depth
	}
	switch v := t.(type) {
	case *nbt.Compound:
		for _, e := range v.Tags() {
			s.walk(e, depth+1)
		}
	case *nbt.List:
		for _, e := range v.Tags() {
			s.walk(e, depth+1)
		}
	}
}

// infoCommand creates the info command, which prints a summary table for a
// document: root name, format, size, tag counts by type, and nesting depth.
func (c *CLI) infoCommand() *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Summarize a document",
		Long: `Print a summary of a document: root name, detected format, size on
disk, per-type tag counts, and the deepest nesting level.

Examples:
  nbtkit info level.dat
  nbtkit info --from snbt saved.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := parseFormat(from)
			if err != nil {
				return err
			}
			doc, detected, err := readDocument(args[0], f)
			if err != nil {
				return err
			}
			stats := collectStats(doc.Root)

			fmt.Println(StyleTitle.Render(args[0]))
			fmt.Println(summaryTable(doc, detected, stats).Render())
			fmt.Println(countsTable(stats).Render())
			return nil
		},
	}

	cmd.Flags().StringVarP(&from, "from", "f", string(formatAuto), "input format (auto|nbt|snbt|json|cbor)")

	return cmd
}

func summaryTable(doc *document, f format, stats *docStats) *table.Table {
	return newTable("Property", "Value").Rows(
		[]string{"Root name", rootLabel(doc.Name)},
		[]string{"Root type", doc.Root.ID().String()},
		[]string{"Format", string(f)},
		[]string{"Tags", fmt.Sprintf("%d", stats.Total)},
		[]string{"Max depth", fmt.Sprintf("%d", stats.MaxDepth)},
	)
}

func countsTable(stats *docStats) *table.Table {
	ids := make([]nbt.ID, 0, len(stats.Counts))
	for id := range stats.Counts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	t := newTable("Type", "Count")
	for _, id := range ids {
		t.Row(id.String(), fmt.Sprintf("%d", stats.Counts[id]))
	}
	return t
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			if col == 0 {
				return StyleDim
			}
			return StyleValue
		})
}
