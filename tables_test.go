package qb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type Todo struct{}

type Person struct{}

type BlogPost struct{}

type legacyUser struct{}

func (legacyUser) TableName() string { return "tbl_user" }

func TestTableNameOf(t *testing.T) {
	assert.Equal(t, "todos", tableNameOf(Todo{}))
	assert.Equal(t, "todos", tableNameOf(&Todo{}))
	assert.Equal(t, "todos", tableNameOf([]*Todo{}))
	assert.Equal(t, "people", tableNameOf(Person{}))
	assert.Equal(t, "blog_posts", tableNameOf(&BlogPost{}))
	assert.Equal(t, "tbl_user", tableNameOf(legacyUser{}))
}

func TestTableFor(t *testing.T) {
	conn := newRenderConnection(t, Dialects.MySQL, Config{})
	q, args := conn.TableFor(&Todo{}).WhereID(1).ToSql(OpSelect)
	assert.Equal(t, "SELECT * FROM todos WHERE id = ?", q)
	assert.Equal(t, []interface{}{1}, args)
}
