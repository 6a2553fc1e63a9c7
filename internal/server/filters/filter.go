// Package filters turns optional URL query parameters into SQL WHERE
// clauses. Each endpoint owns a Registry: an explicit allow-list that maps a
// parameter name to the constructor of its predicate. Parameters missing
// from the registry are ignored.
package filters

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// placeholder marks where a Condition's argument goes; Where renumbers it.
const placeholder = "?"

// Condition is a single predicate. Expr holds one placeholder per element
// of Args.
type Condition struct {
	Expr string
	Args []any
}

// Builder constructs the predicate for one parameter value.
type Builder func(value string) Condition

// Like matches rows whose column contains value anywhere (LIKE '%value%').
// The comparison is case-sensitive and wildcards inside value are not escaped.
// A value containing NUL matches nothing, as stored text never holds one.
func Like(column string) Builder {
	return func(value string) Condition {
		if strings.ContainsRune(value, 0) {
			return Condition{Expr: "FALSE"}
		}
		return Condition{Expr: column + " LIKE " + placeholder, Args: []any{"%" + value + "%"}}
	}
}

// TextLike is Like applied to the canonical text form of a non-text column,
// such as a date or timestamp.
func TextLike(column string) Builder {
	return Like("CAST(" + column + " AS TEXT)")
}

// EqualNumber matches rows whose numeric column equals value exactly.
// A value that is not a number matches nothing.
func EqualNumber(column string) Builder {
	return func(value string) Condition {
		n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return Condition{Expr: "FALSE"}
		}
		return Condition{Expr: column + " = " + placeholder, Args: []any{n}}
	}
}

// Filter is the conjunction of its conditions.
type Filter struct {
	Conditions []Condition
}

func (f Filter) Empty() bool {
	return len(f.Conditions) == 0
}

// Where renders "WHERE c1 AND c2 ..." with PostgreSQL positional
// placeholders starting at $start, together with the arguments in order.
// An empty filter renders as "".
func (f Filter) Where(start int) (string, []any) {
	if f.Empty() {
		return "", nil
	}

	n := start
	parts := make([]string, 0, len(f.Conditions))
	args := make([]any, 0, len(f.Conditions))
	for _, c := range f.Conditions {
		expr := c.Expr
		for _, a := range c.Args {
			expr = strings.Replace(expr, placeholder, fmt.Sprintf("$%d", n), 1)
			args = append(args, a)
			n++
		}
		parts = append(parts, expr)
	}

	return "WHERE " + strings.Join(parts, " AND "), args
}

// Registry maps recognised query parameter names to predicate builders.
type Registry map[string]Builder

// Fields lists the recognised parameter names in sorted order.
func (r Registry) Fields() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build collects a condition for every recognised parameter present in
// params, in sorted name order. Only the first value of a repeated
// parameter is used. A present but empty value still yields a condition.
func (r Registry) Build(params url.Values) Filter {
	var f Filter
	for _, name := range r.Fields() {
		values, ok := params[name]
		if !ok || len(values) == 0 {
			continue
		}
		f.Conditions = append(f.Conditions, r[name](values[0]))
	}
	return f
}
