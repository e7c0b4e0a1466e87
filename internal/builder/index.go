package builder

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"stackgraph/internal/dump"
	"stackgraph/internal/graph"
)

// indexUsers maps user id to its record. When ids repeat, the first record
// in stream order wins. Records without an id cannot be joined and are left out.
func indexUsers(users []dump.Record) map[string]dump.Record {
	index := make(map[string]dump.Record, len(users))
	for _, u := range users {
		id := u.Get(dump.FieldID)
		if id == "" {
			continue
		}
		if _, seen := index[id]; !seen {
			index[id] = u
		}
	}
	return index
}

// groupComments buckets comments by PostId, keeping stream order within a bucket.
func groupComments(comments []dump.Record) map[string][]dump.Record {
	byPost := make(map[string][]dump.Record)
	for _, c := range comments {
		postID := c.Get(dump.FieldPostID)
		byPost[postID] = append(byPost[postID], c)
	}
	return byPost
}

// parseScore coerces a comment score to an integer. Decimal scores are
// truncated toward zero.
func parseScore(raw string) (int64, error) {
	s := strings.TrimSpace(raw)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	f, err := graph.ParseWeight(s)
	if err != nil {
		return 0, fmt.Errorf("score: %w", err)
	}
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, fmt.Errorf("score %q out of range: %w", raw, graph.ErrInvalidWeight)
	}
	return int64(f), nil
}
