// Package query provides a typed, composable predicate tree for the
// search engine. Filters compile into predicates here and are only
// rendered to SQL at the persistence boundary, so filter compilation
// is testable without a storage engine.
package query

import "strings"

// Predicate is a single SQL condition rendered as a clause with
// positional "?" placeholders and the matching flattened arguments.
type Predicate interface {
	Clause() (string, []any)
}

type eq struct {
	column string
	value  any
}

func (p eq) Clause() (string, []any) {
	return p.column + " = ?", []any{p.value}
}

// Eq matches rows where column equals value.
func Eq(column string, value any) Predicate {
	return eq{column: column, value: value}
}

type in struct {
	column string
	values []any
}

func (p in) Clause() (string, []any) {
	placeholders := make([]string, len(p.values))
	for i := range p.values {
		placeholders[i] = "?"
	}

	return p.column + " IN (" + strings.Join(placeholders, ",") + ")", p.values
}

// In matches rows where column is any of values. Callers must not
// pass an empty set; absent set-membership filters compile to no
// predicate at all.
func In[T any](column string, values []T) Predicate {
	args := make([]any, len(values))
	for i, v := range values {
		args[i] = v
	}

	return in{column: column, values: args}
}

type cmp struct {
	column   string
	operator string
	value    any
}

func (p cmp) Clause() (string, []any) {
	return p.column + " " + p.operator + " ?", []any{p.value}
}

// Gte matches rows where column >= value (inclusive lower bound).
func Gte(column string, value any) Predicate {
	return cmp{column: column, operator: ">=", value: value}
}

// Lte matches rows where column <= value (inclusive upper bound).
func Lte(column string, value any) Predicate {
	return cmp{column: column, operator: "<=", value: value}
}

type between struct {
	column string
	lo, hi any
}

func (p between) Clause() (string, []any) {
	return p.column + " BETWEEN ? AND ?", []any{p.lo, p.hi}
}

// Between matches rows where column falls inclusively between lo and hi.
func Between(column string, lo, hi any) Predicate {
	return between{column: column, lo: lo, hi: hi}
}

type exists struct {
	subquery string
	args     []any
	negated  bool
}

func (p exists) Clause() (string, []any) {
	prefix := "EXISTS ("
	if p.negated {
		prefix = "NOT EXISTS ("
	}

	return prefix + p.subquery + ")", p.args
}

// Exists matches rows for which the correlated subquery yields at
// least one row. Cross-entity filters join through intermediate
// entities this way instead of predicating on a direct column.
func Exists(subquery string, args ...any) Predicate {
	return exists{subquery: subquery, args: args}
}

// NotExists is the negation of Exists.
func NotExists(subquery string, args ...any) Predicate {
	return exists{subquery: subquery, args: args, negated: true}
}

type expr struct {
	sql  string
	args []any
}

func (p expr) Clause() (string, []any) {
	return p.sql, p.args
}

// Expr wraps a raw computed-expression condition, used for derived
// filters (e.g. minute deltas between timestamp columns) that have no
// stored column to predicate on.
func Expr(sql string, args ...any) Predicate {
	return expr{sql: sql, args: args}
}

type matchAll struct{}

func (matchAll) Clause() (string, []any) {
	return "1=1", nil
}

// MatchAll is the unrestricted predicate used for admin/manager scopes.
func MatchAll() Predicate {
	return matchAll{}
}

type conjunction struct {
	preds []Predicate
}

func (p conjunction) Clause() (string, []any) {
	if len(p.preds) == 0 {
		return matchAll{}.Clause()
	}

	clauses := make([]string, 0, len(p.preds))
	var args []any
	for _, pred := range p.preds {
		clause, predArgs := pred.Clause()
		clauses = append(clauses, "("+clause+")")
		args = append(args, predArgs...)
	}

	return strings.Join(clauses, " AND "), args
}

// And combines predicates with logical AND, skipping nils. An empty
// combination matches everything. No OR combinator is exposed; the
// engine's filter semantics are purely conjunctive.
func And(preds ...Predicate) Predicate {
	kept := make([]Predicate, 0, len(preds))
	for _, p := range preds {
		if p != nil {
			kept = append(kept, p)
		}
	}

	return conjunction{preds: kept}
}
