package models

import (
	"net/url"
	"strconv"
	"strings"
)

// SearchQuery is the per-session search state: submitted text, page, and the
// optional year/genre filters. Its encoded form is the shareable URL-query
// representation of a search.
type SearchQuery struct {
	Text     string
	Page     int
	Year     string
	GenreIDs []int
}

// Values renders the query as URL parameters: query, year (when set) and
// genres as a comma-joined id list (when non-empty). Page is transient and
// not part of the shareable form.
func (q SearchQuery) Values() url.Values {
	v := url.Values{}
	v.Set("query", q.Text)
	if q.Year != "" {
		v.Set("year", q.Year)
	}
	if len(q.GenreIDs) > 0 {
		ids := make([]string, len(q.GenreIDs))
		for i, id := range q.GenreIDs {
			ids[i] = strconv.Itoa(id)
		}
		v.Set("genres", strings.Join(ids, ","))
	}
	return v
}

// Encode returns the url-encoded shareable representation.
func (q SearchQuery) Encode() string {
	return q.Values().Encode()
}

// ParseSearchQuery reconstructs a SearchQuery from its encoded form.
// Malformed genre ids are skipped.
func ParseSearchQuery(encoded string) (SearchQuery, error) {
	values, err := url.ParseQuery(encoded)
	if err != nil {
		return SearchQuery{}, err
	}

	q := SearchQuery{
		Text: values.Get("query"),
		Year: values.Get("year"),
		Page: 1,
	}

	if raw := values.Get("genres"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			if id, err := strconv.Atoi(strings.TrimSpace(part)); err == nil {
				q.GenreIDs = append(q.GenreIDs, id)
			}
		}
	}

	return q, nil
}
