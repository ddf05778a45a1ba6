package qb

import (
	"reflect"

	"github.com/gertd/go-pluralize"
	"github.com/iancoleman/strcase"
)

// TableNamer lets a type pick its own table name for TableFor.
type TableNamer interface {
	TableName() string
}

// TableFor starts a builder on the table of entity: TableName() when it
// implements TableNamer, otherwise the plural snake case of its type name
// (Todo -> todos, BlogPost -> blog_posts).
func (c *Connection) TableFor(entity interface{}) *Builder {
	return c.Table(tableNameOf(entity))
}

func tableNameOf(entity interface{}) string {
	if namer, ok := entity.(TableNamer); ok {
		return namer.TableName()
	}
	t := reflect.TypeOf(entity)
	for t.Kind() == reflect.Ptr || t.Kind() == reflect.Slice {
		t = t.Elem()
	}
	return pluralize.NewClient().Plural(strcase.ToSnake(t.Name()))
}
