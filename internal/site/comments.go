package site

import (
	"fmt"
	"time"
)

// Comment is one visible comment on a document.
type Comment struct {
	Text           string
	Author         string
	AuthorFullName string
	Created        time.Time
}

// Querier is the opaque database boundary. A real deployment wires the
// framework ORM behind this.
type Querier interface {
	QueryRows(query string, args ...any) ([]map[string]any, error)
}

const commentListQuery = `select comment, comment_by_fullname, creation, comment_by
	from tabComment
	where comment_doctype = ?
	and ifnull(comment_type, 'Comment') = 'Comment'
	and comment_docname = ?
	order by creation`

// Comments returns the visible comments on a document, oldest first.
func Comments(db Querier, doctype, name string) ([]Comment, error) {
	rows, err := db.QueryRows(commentListQuery, doctype, name)
	if err != nil {
		return nil, fmt.Errorf("listing comments for %s %q: %w", doctype, name, err)
	}

	comments := make([]Comment, 0, len(rows))
	for _, row := range rows {
		c := Comment{
			Text:           stringField(row, "comment"),
			Author:         stringField(row, "comment_by"),
			AuthorFullName: stringField(row, "comment_by_fullname"),
		}
		if t, ok := row["creation"].(time.Time); ok {
			c.Created = t
		}
		comments = append(comments, c)
	}
	return comments, nil
}

func stringField(row map[string]any, key string) string {
	s, _ := row[key].(string)
	return s
}
