package qb

import (
	"context"
	"fmt"

	"github.com/jedib0t/go-pretty/table"
)

// ToTable runs the SELECT and renders the rows as a text table, columns in
// result order.
func (b *Builder) ToTable(ctx context.Context) (string, error) {
	if err := b.consume(nil); err != nil {
		return "", err
	}
	columns, rows, err := b.fetchMaps(ctx, modeNone, 0)
	if err = b.conn.handle(err); err != nil {
		return "", err
	}
	return renderTable(columns, rows), nil
}

func renderTable(columns []string, rows []map[string]interface{}) string {
	w := table.NewWriter()
	header := table.Row{}
	for _, column := range columns {
		header = append(header, column)
	}
	w.AppendHeader(header)
	for _, row := range rows {
		r := table.Row{}
		for _, column := range columns {
			v := row[column]
			if v == nil {
				v = "NULL"
			}
			r = append(r, fmt.Sprint(v))
		}
		w.AppendRow(r)
	}
	w.AppendFooter(table.Row{fmt.Sprintf("%d rows", len(rows))})
	return w.Render()
}
