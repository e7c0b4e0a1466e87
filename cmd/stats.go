package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"stackgraph/internal/builder"
	"stackgraph/internal/graph"
)

var statsJSON bool

// statsReport is the --json output of the stats command
type statsReport struct {
	Build builder.Stats  `json:"build"`
	Graph *graph.Summary `json:"graph"`
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize the interaction graph: size, degrees, isolated nodes, components",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, build, err := buildGraph(cmd)
		if err != nil {
			return err
		}
		report := statsReport{Build: build, Graph: graph.Summarize(g)}

		if statsJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		}

		printStats(cmd.OutOrStdout(), report)
		return nil
	},
}

func init() {
	addDumpFlags(statsCmd)
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(statsCmd)
}

func printStats(w io.Writer, r statsReport) {
	s := r.Graph
	fmt.Fprintf(w, "\n  Nodes: %s    Edges: %s\n", humanize.Comma(int64(s.Nodes)), humanize.Comma(int64(s.Edges)))
	fmt.Fprintf(w, "  mean degree: in=%.2f out=%.2f\n", s.MeanInDegree, s.MeanOutDegree)
	fmt.Fprintf(w, "  isolated:    %s (%.1f%%)\n", humanize.Comma(int64(s.IsolatedNodes)), s.IsolatedPercent)
	fmt.Fprintf(w, "  components:  %s, giant %s (%.1f%%)\n",
		humanize.Comma(int64(s.Components)), humanize.Comma(int64(s.GiantComponent)), s.GiantComponentPercent)

	b := r.Build
	fmt.Fprintf(w, "\n  Input\n")
	fmt.Fprintf(w, "  posts:    %s seen, %s skipped (unknown owner)\n",
		humanize.Comma(int64(b.PostsSeen)), humanize.Comma(int64(b.PostsSkipped)))
	fmt.Fprintf(w, "  comments: %s linked, %s skipped (unknown author)\n\n",
		humanize.Comma(int64(b.CommentsLinked)), humanize.Comma(int64(b.CommentsSkipped)))
}
