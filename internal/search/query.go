// Package search builds case-insensitive substring filters over a fixed set
// of text columns. It is intentionally small and deterministic:
//
//   - An empty or blank term matches every record.
//   - A non-empty term matches when ANY configured column contains it as an
//     unanchored, case-insensitive substring.
//   - Terms are always literal text: characters that are wildcards in SQL
//     LIKE patterns ('%', '_', and the escape character itself) are escaped,
//     so "100%" matches the three characters 1-0-0 followed by a percent
//     sign, nothing else.
//
// There is no tokenization, stemming, or ranking; result order is left to
// the caller's sort.
package search

import (
	"strings"

	"gorm.io/gorm"
)

// Scope is a reusable filter over a fixed column set. The zero value is not
// useful; construct one with NewScope or the entity helpers below.
type Scope struct {
	columns []string
	term    string
}

// NewScope returns a Scope matching term against columns. Columns must be
// trusted identifiers (they are interpolated into SQL); terms are bound as
// parameters and may contain anything.
func NewScope(term string, columns ...string) Scope {
	return Scope{columns: columns, term: strings.TrimSpace(term)}
}

// Movies filters movies by title.
func Movies(term string) Scope {
	return NewScope(term, "title")
}

// Genres filters genres by name, slug, or description.
func Genres(term string) Scope {
	return NewScope(term, "name", "slug", "description")
}

// Actors filters actors by name or slug.
func Actors(term string) Scope {
	return NewScope(term, "name", "slug")
}

// Empty reports whether the scope matches everything (blank term).
func (s Scope) Empty() bool { return s.term == "" }

// Apply is a GORM scope: it attaches the OR-of-LIKEs condition to tx, or
// returns tx unchanged when the term is blank. Use with tx.Scopes(s.Apply).
func (s Scope) Apply(tx *gorm.DB) *gorm.DB {
	if s.Empty() || len(s.columns) == 0 {
		return tx
	}
	pattern := "%" + escapeLike(strings.ToLower(s.term)) + "%"

	var b strings.Builder
	args := make([]any, 0, len(s.columns))
	for i, col := range s.columns {
		if i > 0 {
			b.WriteString(" OR ")
		}
		b.WriteString("LOWER(")
		b.WriteString(col)
		b.WriteString(`) LIKE ? ESCAPE '\`)
		b.WriteString(`'`)
		args = append(args, pattern)
	}
	return tx.Where("("+b.String()+")", args...)
}

// escapeLike neutralizes LIKE metacharacters so the term is matched
// literally. Backslash is the declared escape character.
func escapeLike(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		`%`, `\%`,
		`_`, `\_`,
	)
	return r.Replace(s)
}
