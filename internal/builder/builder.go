// Package builder joins posts, comments and users into a directed
// user-interaction graph: an edge commenter -> post owner for every comment,
// weighted by the comment score.
package builder

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"stackgraph/internal/dump"
	"stackgraph/internal/graph"
)

// Lifecycle errors.
var (
	// ErrAlreadyProcessed indicates Process was called more than once.
	ErrAlreadyProcessed = errors.New("builder: already processed")

	// ErrNotYetProcessed indicates Graph was called before Process.
	ErrNotYetProcessed = errors.New("builder: not yet processed")
)

// Stats counts what a build consumed and skipped.
type Stats struct {
	PostsSeen       int `json:"posts_seen"`
	PostsSkipped    int `json:"posts_skipped"`
	CommentsLinked  int `json:"comments_linked"`
	CommentsSkipped int `json:"comments_skipped"`
	Nodes           int `json:"nodes"`
	Edges           int `json:"edges"`
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger used for skip and progress messages.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) { b.logger = logger }
}

// Builder turns three record streams into a graph. It is single use:
// Process runs once, then Graph returns the result.
type Builder struct {
	streams *dump.Streams
	logger  *slog.Logger

	processed bool
	err       error
	graph     *graph.Graph
	stats     Stats
}

// New creates a Builder over streams. The streams are only read.
func New(streams *dump.Streams, opts ...Option) *Builder {
	b := &Builder{
		streams: streams,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Process builds the graph. For each post whose owner is a known user, the
// owner becomes a node; each comment on that post by a known user adds the
// commenter as a node and sets the edge commenter -> owner to the comment
// score. A later comment on the same ordered pair overwrites the weight.
// Posts and comments referencing unknown users are skipped.
//
// Any error aborts the build and no graph is kept.
func (b *Builder) Process() error {
	if b.processed {
		return ErrAlreadyProcessed
	}
	b.processed = true

	g, stats, err := b.build()
	if err != nil {
		b.err = err
		return err
	}
	b.graph = g
	b.stats = stats

	b.logger.Info("graph built",
		"nodes", stats.Nodes,
		"edges", stats.Edges,
		"posts", stats.PostsSeen,
		"posts_skipped", stats.PostsSkipped,
		"comments", stats.CommentsLinked,
		"comments_skipped", stats.CommentsSkipped,
	)
	return nil
}

func (b *Builder) build() (*graph.Graph, Stats, error) {
	var stats Stats
	streams := b.streams
	if streams == nil {
		streams = &dump.Streams{}
	}

	users := indexUsers(streams.Users)
	comments := groupComments(streams.Comments)
	g := graph.New(true)

	for _, post := range streams.Posts {
		stats.PostsSeen++
		ownerID := post.Get(dump.FieldOwnerUserID)
		postID := post.Get(dump.FieldID)

		owner, ok := users[ownerID]
		if !ok {
			stats.PostsSkipped++
			b.logger.Debug("skipping post: owner not found", "post", postID, "owner", ownerID)
			continue
		}
		if err := ensureUserNode(g, ownerID, owner); err != nil {
			return nil, stats, fmt.Errorf("post %q: %w", postID, err)
		}

		for _, comment := range comments[postID] {
			commenterID := comment.Get(dump.FieldUserID)
			commenter, ok := users[commenterID]
			if !ok {
				stats.CommentsSkipped++
				b.logger.Debug("skipping comment: author not found",
					"post", postID, "comment", comment.Get(dump.FieldID), "user", commenterID)
				continue
			}
			if err := ensureUserNode(g, commenterID, commenter); err != nil {
				return nil, stats, fmt.Errorf("post %q: %w", postID, err)
			}

			score, err := parseScore(comment.Get(dump.FieldScore))
			if err != nil {
				return nil, stats, fmt.Errorf("post %q comment %q: %w", postID, comment.Get(dump.FieldID), err)
			}
			if err := g.AddEdge(commenterID, ownerID, float64(score)); err != nil {
				return nil, stats, fmt.Errorf("post %q: %w", postID, err)
			}
			stats.CommentsLinked++
		}
	}

	stats.Nodes = g.NumNodes()
	stats.Edges = g.NumEdges()
	return g, stats, nil
}

// Graph returns the built graph.
func (b *Builder) Graph() (*graph.Graph, error) {
	if !b.processed {
		return nil, ErrNotYetProcessed
	}
	if b.err != nil {
		return nil, fmt.Errorf("build failed: %w", b.err)
	}
	return b.graph, nil
}

// Stats returns the counters of the last successful build.
func (b *Builder) Stats() Stats {
	return b.stats
}

func ensureUserNode(g *graph.Graph, id string, user dump.Record) error {
	if g.NodeExists(id) {
		return nil
	}
	return g.AddNode(id, userAttributes(user))
}

func userAttributes(user dump.Record) graph.Attributes {
	attrs := make(graph.Attributes, 0, len(dump.UserAttributes))
	for _, key := range dump.UserAttributes {
		attrs = append(attrs, graph.Attribute{Key: key, Value: user.Get(key)})
	}
	return attrs
}
