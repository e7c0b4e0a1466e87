package db

import (
	"path/filepath"
	"reflect"
	"testing"

	"stackgraph/internal/dump"
)

// setupTestDB opens a fresh database file with the dump schema.
func setupTestDB(t *testing.T) *DB {
	t.Helper()
	d, err := OpenDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { d.Close() })
	return d
}

func sampleStreams() *dump.Streams {
	return &dump.Streams{
		Posts: []dump.Record{
			{"Id": "2", "OwnerUserId": "10"},
			{"Id": "1", "OwnerUserId": "20"},
			{"Id": "3"},
		},
		Comments: []dump.Record{
			{"Id": "101", "PostId": "1", "UserId": "10", "Score": "4"},
			{"Id": "100", "PostId": "2", "UserId": "20", "Score": "-1"},
			{"Id": "102", "PostId": "1", "UserId": "30", "Score": "2.5"},
		},
		Users: []dump.Record{
			{"Id": "20", "Reputation": "5", "DisplayName": "bob", "Views": "1", "UpVotes": "0", "DownVotes": "0"},
			{"Id": "10", "Reputation": "7", "DisplayName": `Ada "A"`, "Views": "2", "UpVotes": "1", "DownVotes": "3"},
		},
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	d := setupTestDB(t)
	if err := d.Migrate(); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
}

func TestImport_RoundTripPreservesOrder(t *testing.T) {
	d := setupTestDB(t)
	in := sampleStreams()

	stats, err := d.Import(in)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	want := ImportStats{Posts: 3, Comments: 3, Users: 2}
	if *stats != want {
		t.Errorf("stats = %+v, want %+v", *stats, want)
	}

	out, err := d.Streams()
	if err != nil {
		t.Fatalf("streams: %v", err)
	}

	// Missing attributes come back as empty strings
	in.Posts[2]["OwnerUserId"] = ""
	if !reflect.DeepEqual(in.Posts, out.Posts) {
		t.Errorf("posts = %v, want %v", out.Posts, in.Posts)
	}
	if !reflect.DeepEqual(in.Comments, out.Comments) {
		t.Errorf("comments = %v, want %v", out.Comments, in.Comments)
	}
	if !reflect.DeepEqual(in.Users, out.Users) {
		t.Errorf("users = %v, want %v", out.Users, in.Users)
	}
}

func TestImport_DuplicateUserFirstWins(t *testing.T) {
	d := setupTestDB(t)
	stats, err := d.Import(&dump.Streams{
		Users: []dump.Record{
			{"Id": "1", "DisplayName": "first"},
			{"Id": "1", "DisplayName": "second"},
		},
	})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if stats.Users != 1 || stats.DuplicateUsers != 1 {
		t.Errorf("stats = %+v, want 1 user and 1 duplicate", *stats)
	}

	u, err := d.GetUser("1")
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if u.DisplayName != "first" {
		t.Errorf("DisplayName = %q, want %q", u.DisplayName, "first")
	}
}

func TestImport_ReplacesPreviousContents(t *testing.T) {
	d := setupTestDB(t)
	if _, err := d.Import(sampleStreams()); err != nil {
		t.Fatalf("first import: %v", err)
	}
	if _, err := d.Import(&dump.Streams{Posts: []dump.Record{{"Id": "9", "OwnerUserId": "1"}}}); err != nil {
		t.Fatalf("second import: %v", err)
	}

	c, err := d.Counts()
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	if *c != (Counts{Posts: 1}) {
		t.Errorf("counts = %+v, want only 1 post", *c)
	}
}

func TestImport_NilStreams(t *testing.T) {
	d := setupTestDB(t)
	stats, err := d.Import(nil)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if *stats != (ImportStats{}) {
		t.Errorf("stats = %+v, want zero", *stats)
	}
}

func TestCounts(t *testing.T) {
	d := setupTestDB(t)
	if _, err := d.Import(sampleStreams()); err != nil {
		t.Fatal(err)
	}
	c, err := d.Counts()
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	want := Counts{Posts: 3, Comments: 3, Users: 2}
	if *c != want {
		t.Errorf("counts = %+v, want %+v", *c, want)
	}
}

func TestCommentsForPost(t *testing.T) {
	d := setupTestDB(t)
	if _, err := d.Import(sampleStreams()); err != nil {
		t.Fatal(err)
	}
	comments, err := d.CommentsForPost("1")
	if err != nil {
		t.Fatalf("comments: %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("got %d comments, want 2", len(comments))
	}
	if comments[0].ID != "101" || comments[1].ID != "102" {
		t.Errorf("order = [%s %s], want [101 102]", comments[0].ID, comments[1].ID)
	}
}

func TestGetUser_NotFound(t *testing.T) {
	d := setupTestDB(t)
	if _, err := d.GetUser("nobody"); err == nil {
		t.Error("expected error for missing user")
	}
}
