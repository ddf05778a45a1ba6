package qb

import (
	"context"
	"testing"
)

func BenchmarkSelectSql(b *testing.B) {
	conn, _ := New(nil, Dialects.PostgreSQL, Config{})
	for i := 0; i < b.N; i++ {
		conn.Table("posts").
			Select("id", "body").
			Where("author_id", 1).
			WhereIn("category_id", 1, 2, 3).
			Desc("id").
			Limit(10).
			ToSql(OpSelect)
	}
}

func BenchmarkUpdateSql(b *testing.B) {
	conn, _ := New(nil, Dialects.PostgreSQL, Config{})
	values := Values{"title": "x", "body": "y", "published": true}
	for i := 0; i < b.N; i++ {
		conn.Table("posts").WhereID(1).SetValues(values).ToSql(OpUpdate)
	}
}

func BenchmarkSqliteRoundTrip(b *testing.B) {
	ctx := context.Background()
	conn, err := Connect(ConnectionConfig{Driver: "sqlite3", ConnectionString: ":memory:"})
	if err != nil {
		b.Fatal(err)
	}
	defer conn.Close()
	conn.DB().SetMaxOpenConns(1)
	if _, err := conn.DB().Exec(`CREATE TABLE IF NOT EXISTS posts (id INTEGER PRIMARY KEY, body text)`); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		res, err := conn.Table("posts").Save(ctx, Values{"body": "hello"})
		if err != nil {
			b.Fatal(err)
		}
		if _, err := conn.Table("posts").OneArray(ctx, ByID(res.LastInsertID)); err != nil {
			b.Fatal(err)
		}
	}
}
