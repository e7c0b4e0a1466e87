package dump

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
)

// Document roots of the three dump files.
const (
	RootPosts    = "posts"
	RootComments = "comments"
	RootUsers    = "users"
)

const rowElement = "row"

// ErrUnexpectedRoot indicates a dump file whose document element is not the expected one.
var ErrUnexpectedRoot = errors.New("dump: unexpected document root")

// ReadRecords decodes a dump document <root><row .../>...</root>. Every row
// element becomes a Record holding its attributes. Rows are read one token at
// a time so large dumps are never unmarshalled as a whole tree.
func ReadRecords(r io.Reader, root string) ([]Record, error) {
	dec := xml.NewDecoder(skipBOM(r))
	var records []Record
	depth := 0
	sawRoot := false

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", root, err)
		}

		switch el := tok.(type) {
		case xml.StartElement:
			depth++
			if depth == 1 {
				if el.Name.Local != root {
					return nil, fmt.Errorf("%w: got <%s>, want <%s>", ErrUnexpectedRoot, el.Name.Local, root)
				}
				sawRoot = true
				continue
			}
			if depth == 2 && el.Name.Local == rowElement {
				rec := make(Record, len(el.Attr))
				for _, a := range el.Attr {
					rec[a.Name.Local] = a.Value
				}
				records = append(records, rec)
			}
		case xml.EndElement:
			depth--
		}
	}

	if !sawRoot {
		return nil, fmt.Errorf("%w: empty document, want <%s>", ErrUnexpectedRoot, root)
	}
	return records, nil
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// skipBOM drops a leading UTF-8 byte order mark, which the dump exports carry.
func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		br.Discard(len(utf8BOM))
	}
	return br
}

// ReadFile opens path and reads its records.
func ReadFile(path, root string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	records, err := ReadRecords(f, root)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return records, nil
}

// LoadFiles reads Posts.xml, Comments.xml and Users.xml style files.
func LoadFiles(postsPath, commentsPath, usersPath string) (*Streams, error) {
	posts, err := ReadFile(postsPath, RootPosts)
	if err != nil {
		return nil, fmt.Errorf("loading posts: %w", err)
	}
	comments, err := ReadFile(commentsPath, RootComments)
	if err != nil {
		return nil, fmt.Errorf("loading comments: %w", err)
	}
	users, err := ReadFile(usersPath, RootUsers)
	if err != nil {
		return nil, fmt.Errorf("loading users: %w", err)
	}
	return &Streams{Posts: posts, Comments: comments, Users: users}, nil
}
