package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Build the interaction graph and write it as GML",
	Long: "Joins posts, comments and users into a directed graph with an edge from each " +
		"commenter to the post owner, weighted by comment score, and writes it in GML. " +
		"Reads the dump files when --posts, --comments and --users are set, the imported database otherwise.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("out") {
			cfg.Output = exportOut
		}

		g, _, err := buildGraph(cmd)
		if err != nil {
			return err
		}

		if cfg.Output == "" || cfg.Output == "-" {
			return g.WriteGML(cmd.OutOrStdout())
		}

		var buf bytes.Buffer
		if err := g.WriteGML(&buf); err != nil {
			return err
		}
		if err := os.WriteFile(cfg.Output, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", cfg.Output, err)
		}
		logger.Info("wrote graph",
			"path", cfg.Output,
			"size", humanize.Bytes(uint64(buf.Len())),
			"nodes", g.NumNodes(),
			"edges", g.NumEdges(),
		)
		return nil
	},
}

func init() {
	addDumpFlags(exportCmd)
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file (default stdout)")
	rootCmd.AddCommand(exportCmd)
}
