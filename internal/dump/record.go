// Package dump reads StackExchange data dump files (Posts.xml, Comments.xml,
// Users.xml) into flat attribute records.
package dump

// Field names used to join the three streams.
const (
	FieldID          = "Id"
	FieldOwnerUserID = "OwnerUserId"
	FieldPostID      = "PostId"
	FieldUserID      = "UserId"
	FieldScore       = "Score"
)

// UserAttributes are the user fields copied onto graph nodes, in export order.
var UserAttributes = []string{"Reputation", "DisplayName", "Views", "UpVotes", "DownVotes"}

// Record is one <row> of a dump file: attribute name -> raw value.
type Record map[string]string

// Get returns the value of field, or "" if the record does not carry it.
func (r Record) Get(field string) string {
	return r[field]
}

// Streams holds the three correlated record streams in document order.
type Streams struct {
	Posts    []Record
	Comments []Record
	Users    []Record
}
