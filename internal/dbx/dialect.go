package dbx

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

func ParseDialect(s string) (Dialect, error) {
	switch Dialect(strings.ToLower(strings.TrimSpace(s))) {
	case Postgres:
		return Postgres, nil
	case SQLite:
		return SQLite, nil
	}
	return "", fmt.Errorf("dbx: unsupported dialect %q", s)
}

// Translate rewrites portable SQL (positional "?" markers, 0/1 flag
// literals) into the dialect's own form. SQLite is the identity.
func (d Dialect) Translate(query string) string {
	if d != Postgres {
		return query
	}
	return WithReturningID(CoerceBooleans(Rebind(query)))
}

// Rebind replaces every "?" outside quoted literals and identifiers
// with $1..$n, left to right.
func Rebind(query string) string {
	if !strings.Contains(query, "?") {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)

	n := 0
	var quote rune
	for _, r := range query {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
			b.WriteRune(r)
		case r == '\'' || r == '"':
			quote = r
			b.WriteRune(r)
		case r == '?':
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

var boolLiteral = regexp.MustCompile(`(?i)\b(is_available|is_active|is_popular|is_read)\s*=\s*([01])\b`)

// CoerceBooleans turns "flag = 1" / "flag = 0" comparisons on the known
// boolean columns into true/false literals. Other columns are untouched.
func CoerceBooleans(query string) string {
	return boolLiteral.ReplaceAllStringFunc(query, func(m string) string {
		sub := boolLiteral.FindStringSubmatch(m)
		if sub[2] == "1" {
			return sub[1] + " = true"
		}
		return sub[1] + " = false"
	})
}

// WithReturningID appends "RETURNING id" to INSERT statements that do
// not already carry a RETURNING clause.
func WithReturningID(query string) string {
	if !isInsert(query) || hasReturning(query) {
		return query
	}
	trimmed := strings.TrimRight(strings.TrimSpace(query), "; \t\n")
	return trimmed + " RETURNING id"
}

func isInsert(query string) bool {
	q := strings.TrimSpace(query)
	return len(q) >= 6 && strings.EqualFold(q[:6], "INSERT")
}

func hasReturning(query string) bool {
	return strings.Contains(strings.ToUpper(query), "RETURNING")
}
