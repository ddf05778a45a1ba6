package qb

import (
	"fmt"
	"strings"
)

type binaryOp string

const (
	Eq      binaryOp = "="
	NE      binaryOp = "<>"
	GT      binaryOp = ">"
	GE      binaryOp = ">="
	LT      binaryOp = "<"
	LE      binaryOp = "<="
	Like    binaryOp = "LIKE"
	NotLike binaryOp = "NOT LIKE"
	In      binaryOp = "IN"
	NotIn   binaryOp = "NOT IN"
)

func (op binaryOp) isList() bool {
	return op == In || op == NotIn
}

// cond is one AND-ed predicate. List operators carry one bind per element of
// Rhs, the others exactly one.
type cond struct {
	Lhs string
	Op  binaryOp
	Rhs []interface{}
}

func (c cond) arity() int {
	return len(c.Rhs)
}

// toSql renders the predicate, taking its placeholders off the front of phs.
func (c cond) toSql(phs *[]string) string {
	if c.Op.isList() {
		var list []string
		for range c.Rhs {
			list = append(list, pop(phs))
		}
		return fmt.Sprintf("%s %s (%s)", c.Lhs, c.Op, strings.Join(list, ","))
	}
	return fmt.Sprintf("%s %s %s", c.Lhs, c.Op, pop(phs))
}

type whereClause []cond

func (w whereClause) arity() int {
	n := 0
	for _, c := range w {
		n += c.arity()
	}
	return n
}

func (w whereClause) args() []interface{} {
	args := []interface{}{}
	for _, c := range w {
		args = append(args, c.Rhs...)
	}
	return args
}

// toSql returns " WHERE a = ? AND b IN (?,?)", or "" when there is nothing
// to filter on.
func (w whereClause) toSql(phs *[]string) string {
	if len(w) == 0 {
		return ""
	}
	parts := make([]string, 0, len(w))
	for _, c := range w {
		parts = append(parts, c.toSql(phs))
	}
	return " WHERE " + strings.Join(parts, " AND ")
}

// Filter is an ad hoc equality predicate passed to OneArray, OneObject,
// OneJSON and Delete.
type Filter func(b *Builder)

// By filters on column = value.
func By(column string, value interface{}) Filter {
	return func(b *Builder) {
		b.Where(column, value)
	}
}

// ByID filters on the configured primary key.
func ByID(value interface{}) Filter {
	return func(b *Builder) {
		b.WhereID(value)
	}
}
