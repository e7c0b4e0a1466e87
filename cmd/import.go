package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"stackgraph/internal/config"
	"stackgraph/internal/db"
	"stackgraph/internal/dump"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Load Posts.xml, Comments.xml and Users.xml into the database",
	Long:  "Replaces the database contents with the given dump files. Creates the database when it does not exist.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		applyDumpFlags(cmd)
		if !cfg.HasDumpFiles() {
			return fmt.Errorf("import needs --posts, --comments and --users")
		}

		streams, err := dump.LoadFiles(cfg.Posts, cfg.Comments, cfg.Users)
		if err != nil {
			return err
		}

		path := cfg.DB
		if path == "" {
			path = config.DBFileName
		}
		d, err := db.OpenDB(path)
		if err != nil {
			return err
		}
		defer d.Close()

		stats, err := d.Import(streams)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "[import] %s\n", path)
		fmt.Fprintf(out, "  posts:    %s\n", humanize.Comma(int64(stats.Posts)))
		fmt.Fprintf(out, "  comments: %s\n", humanize.Comma(int64(stats.Comments)))
		fmt.Fprintf(out, "  users:    %s\n", humanize.Comma(int64(stats.Users)))
		if stats.DuplicateUsers > 0 {
			logger.Warn("dropped duplicate user ids", "count", stats.DuplicateUsers)
		}
		return nil
	},
}

func init() {
	addDumpFlags(importCmd)
	rootCmd.AddCommand(importCmd)
}
