package qb

import (
	"fmt"
	"strings"
)

// Op names one of the statements a builder can render.
type Op int

const (
	OpSelect Op = iota
	OpCount
	OpInsert
	OpUpdate
	OpDelete
)

func (o Op) String() string {
	switch o {
	case OpSelect:
		return "SELECT"
	case OpCount:
		return "COUNT"
	case OpInsert:
		return "INSERT"
	case OpUpdate:
		return "UPDATE"
	case OpDelete:
		return "DELETE"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// buildMode is the hint a terminal passes to route.
type buildMode int

const (
	modeNone buildMode = iota
	modeOnlyUpdate
	modeCount
	modeDelete
)

type path int

const (
	pathSelect path = iota
	pathCount
	pathWrite
	pathDelete
)

// route picks the statement a terminal runs. Pending Set values always win:
// a builder with values writes, whatever terminal consumed it.
func (b *Builder) route(mode buildMode) path {
	if len(b.setCols) > 0 {
		return pathWrite
	}
	switch mode {
	case modeDelete:
		return pathDelete
	case modeCount:
		return pathCount
	default:
		return pathSelect
	}
}

// ToSql renders op against the current state without running it or
// consuming the builder.
func (b *Builder) ToSql(op Op) (string, []interface{}) {
	switch op {
	case OpCount:
		return b.selectSql(true)
	case OpInsert:
		return b.insertSql()
	case OpUpdate:
		return b.updateSql()
	case OpDelete:
		return b.deleteSql()
	default:
		return b.selectSql(false)
	}
}

func (b *Builder) placeholders(n int) []string {
	return b.conn.Dialect.PlaceHolderGenerator(n)
}

// selectSql renders SELECT, or SELECT COUNT(...) AS count when count is set.
// ORDER BY, LIMIT and OFFSET are rendered for counts too.
func (b *Builder) selectSql(count bool) (string, []interface{}) {
	columns := "*"
	if len(b.columns) > 0 {
		columns = strings.Join(b.columns, ",")
	}
	if count {
		columns = fmt.Sprintf("COUNT(%s) AS count", columns)
	}
	phs := b.placeholders(b.where.arity())

	var sb strings.Builder
	fmt.Fprintf(&sb, "SELECT %s FROM %s", columns, b.table)
	if len(b.joins) > 0 {
		sb.WriteString(" " + strings.Join(b.joins, " "))
	}
	sb.WriteString(b.where.toSql(&phs))
	if len(b.orders) > 0 {
		sb.WriteString(" ORDER BY " + strings.Join(b.orders, ","))
	}
	if b.limit != nil {
		fmt.Fprintf(&sb, " LIMIT %d", *b.limit)
	}
	if b.offset != nil {
		fmt.Fprintf(&sb, " OFFSET %d", *b.offset)
	}
	return sb.String(), b.where.args()
}

func (b *Builder) insertSql() (string, []interface{}) {
	phs := b.placeholders(len(b.setCols))
	return fmt.Sprintf("INSERT INTO %s(%s) VALUES(%s)",
		b.table,
		strings.Join(b.setCols, ","),
		strings.Join(phs, ","),
	), b.setValues()
}

// updateSql binds the SET values first, then the WHERE values.
func (b *Builder) updateSql() (string, []interface{}) {
	phs := b.placeholders(len(b.setCols) + b.where.arity())
	pairs := make([]string, 0, len(b.setCols))
	for _, column := range b.setCols {
		pairs = append(pairs, column+"="+pop(&phs))
	}
	q := fmt.Sprintf("UPDATE %s SET %s", b.table, strings.Join(pairs, ",")) + b.where.toSql(&phs)
	return q, append(b.setValues(), b.where.args()...)
}

func (b *Builder) deleteSql() (string, []interface{}) {
	phs := b.placeholders(b.where.arity())
	return "DELETE FROM " + b.table + b.where.toSql(&phs), b.where.args()
}
