package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"stackgraph/internal/builder"
	"stackgraph/internal/config"
	"stackgraph/internal/db"
	"stackgraph/internal/dump"
	"stackgraph/internal/graph"
	"stackgraph/internal/logging"
)

var (
	dbPath     string
	configPath string
	logLevel   string
	logFormat  string

	postsPath    string
	commentsPath string
	usersPath    string
)

var (
	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:           "stackgraph",
	Short:         "Build a user interaction graph from a Q&A site data dump",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(configPath)
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		if flags.Changed("db") {
			c.DB = dbPath
		}
		if flags.Changed("log-level") {
			c.LogLevel = logLevel
		}
		if flags.Changed("log-format") {
			c.LogFormat = logFormat
		}
		if err := c.Validate(); err != nil {
			return err
		}
		cfg = c
		logger = logging.New(c.LogLevel, c.LogFormat, cmd.ErrOrStderr())
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to .stackgraph.db database")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format: text or json")
}

// addDumpFlags registers --posts, --comments and --users on cmd
func addDumpFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&postsPath, "posts", "", "Path to Posts.xml")
	cmd.Flags().StringVar(&commentsPath, "comments", "", "Path to Comments.xml")
	cmd.Flags().StringVar(&usersPath, "users", "", "Path to Users.xml")
}

// applyDumpFlags copies explicitly set dump flags over the loaded config
func applyDumpFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	if flags.Changed("posts") {
		cfg.Posts = postsPath
	}
	if flags.Changed("comments") {
		cfg.Comments = commentsPath
	}
	if flags.Changed("users") {
		cfg.Users = usersPath
	}
}

// OpenDatabase discovers and opens an existing database
func OpenDatabase() (*db.DB, error) {
	path, err := config.DiscoverDB(cfg.DB)
	if err != nil {
		return nil, err
	}
	return db.OpenDB(path)
}

// loadStreams reads the dump files when all three are configured, and the
// imported database otherwise.
func loadStreams(cmd *cobra.Command) (*dump.Streams, error) {
	applyDumpFlags(cmd)

	if cfg.HasDumpFiles() {
		logger.Debug("reading dump files", "posts", cfg.Posts, "comments", cfg.Comments, "users", cfg.Users)
		return dump.LoadFiles(cfg.Posts, cfg.Comments, cfg.Users)
	}
	if cfg.Posts != "" || cfg.Comments != "" || cfg.Users != "" {
		return nil, fmt.Errorf("--posts, --comments and --users must be given together")
	}

	d, err := OpenDatabase()
	if err != nil {
		return nil, err
	}
	defer d.Close()

	logger.Debug("reading database", "path", d.Path)
	streams, err := d.Streams()
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", d.Path, err)
	}
	return streams, nil
}

// buildGraph runs a builder over the configured input
func buildGraph(cmd *cobra.Command) (*graph.Graph, builder.Stats, error) {
	streams, err := loadStreams(cmd)
	if err != nil {
		return nil, builder.Stats{}, err
	}

	b := builder.New(streams, builder.WithLogger(logger))
	if err := b.Process(); err != nil {
		return nil, builder.Stats{}, fmt.Errorf("building graph: %w", err)
	}
	g, err := b.Graph()
	if err != nil {
		return nil, builder.Stats{}, err
	}
	return g, b.Stats(), nil
}
