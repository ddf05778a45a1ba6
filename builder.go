package qb

import (
	"fmt"
	"maps"
	"slices"
)

// Values maps column names to the values written by Save and Update.
type Values map[string]interface{}

// Builder accumulates the clauses of a single statement against one table.
// Every clause method returns the builder itself; the first terminal
// operation (ToArray, Count, Save, Delete, ...) consumes it.
type Builder struct {
	conn  *Connection
	table string

	columns []string
	joins   []string
	where   whereClause
	setCols []string
	sets    map[string]interface{}
	orders  []string
	limit   *int
	offset  *int

	consumed bool
}

func newBuilder(conn *Connection, table string) *Builder {
	return &Builder{
		conn:  conn,
		table: table,
		sets:  map[string]interface{}{},
	}
}

// Select adds columns to the projection. Calls accumulate.
func (b *Builder) Select(columns ...string) *Builder {
	b.columns = append(b.columns, columns...)
	return b
}

// SelectAs adds "expr AS alias" to the projection.
func (b *Builder) SelectAs(expr, alias string) *Builder {
	b.columns = append(b.columns, fmt.Sprintf("%s AS %s", expr, alias))
	return b
}

// Join adds an INNER JOIN. condition is written into the SQL as is.
func (b *Builder) Join(table, condition string) *Builder {
	b.joins = append(b.joins, fmt.Sprintf("INNER JOIN %s ON %s", table, condition))
	return b
}

// LeftJoin adds a LEFT JOIN. condition is written into the SQL as is.
func (b *Builder) LeftJoin(table, condition string) *Builder {
	b.joins = append(b.joins, fmt.Sprintf("LEFT JOIN %s ON %s", table, condition))
	return b
}

func (b *Builder) Where(column string, value interface{}) *Builder {
	return b.addWhere(column, Eq, value)
}

// WhereID filters on the connection's primary key column.
func (b *Builder) WhereID(value interface{}) *Builder {
	return b.addWhere(b.conn.config.PrimaryKey, Eq, value)
}

func (b *Builder) WhereNot(column string, value interface{}) *Builder {
	return b.addWhere(column, NE, value)
}

func (b *Builder) WhereGt(column string, value interface{}) *Builder {
	return b.addWhere(column, GT, value)
}

func (b *Builder) WhereGte(column string, value interface{}) *Builder {
	return b.addWhere(column, GE, value)
}

func (b *Builder) WhereLt(column string, value interface{}) *Builder {
	return b.addWhere(column, LT, value)
}

func (b *Builder) WhereLte(column string, value interface{}) *Builder {
	return b.addWhere(column, LE, value)
}

func (b *Builder) WhereLike(column string, pattern interface{}) *Builder {
	return b.addWhere(column, Like, pattern)
}

func (b *Builder) WhereNotLike(column string, pattern interface{}) *Builder {
	return b.addWhere(column, NotLike, pattern)
}

// WhereIn renders column IN (?,...,?) with one placeholder per value.
func (b *Builder) WhereIn(column string, values ...interface{}) *Builder {
	return b.addWhereList(column, In, values)
}

func (b *Builder) WhereNotIn(column string, values ...interface{}) *Builder {
	return b.addWhereList(column, NotIn, values)
}

func (b *Builder) addWhere(column string, op binaryOp, value interface{}) *Builder {
	b.where = append(b.where, cond{Lhs: column, Op: op, Rhs: []interface{}{value}})
	return b
}

func (b *Builder) addWhereList(column string, op binaryOp, values []interface{}) *Builder {
	rhs := make([]interface{}, len(values))
	copy(rhs, values)
	b.where = append(b.where, cond{Lhs: column, Op: op, Rhs: rhs})
	return b
}

// Set records a value to write. Setting a column twice keeps the last value.
func (b *Builder) Set(column string, value interface{}) *Builder {
	if _, exists := b.sets[column]; !exists {
		b.setCols = append(b.setCols, column)
	}
	b.sets[column] = value
	return b
}

// SetValues calls Set for every entry, in column name order.
func (b *Builder) SetValues(values Values) *Builder {
	for _, column := range slices.Sorted(maps.Keys(values)) {
		b.Set(column, values[column])
	}
	return b
}

func (b *Builder) Asc(column string) *Builder {
	b.orders = append(b.orders, column+" ASC")
	return b
}

func (b *Builder) Desc(column string) *Builder {
	b.orders = append(b.orders, column+" DESC")
	return b
}

// Limit sets LIMIT n. A negative n removes the clause.
func (b *Builder) Limit(n int) *Builder {
	b.limit = nonNegative(n)
	return b
}

// Offset sets OFFSET n. A negative n removes the clause.
func (b *Builder) Offset(n int) *Builder {
	b.offset = nonNegative(n)
	return b
}

func nonNegative(n int) *int {
	if n < 0 {
		return nil
	}
	return &n
}

func (b *Builder) setValues() []interface{} {
	values := make([]interface{}, 0, len(b.setCols))
	for _, column := range b.setCols {
		values = append(values, b.sets[column])
	}
	return values
}
