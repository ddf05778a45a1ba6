package qb

import (
	"database/sql"
	"reflect"
	"strings"

	"github.com/iancoleman/strcase"
)

// bindToMap scans up to limit rows (all of them when limit <= 0) into maps
// keyed by column name. []byte values are returned as strings.
func bindToMap(rows *sql.Rows, limit int) ([]string, []map[string]interface{}, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}
	ms := []map[string]interface{}{}
	for rows.Next() {
		ptrs := make([]interface{}, len(columns))
		for i := range ptrs {
			ptrs[i] = new(interface{})
		}
		err = rows.Scan(ptrs...)
		if err != nil {
			return nil, nil, err
		}
		m := map[string]interface{}{}
		for i, ptr := range ptrs {
			v := *(ptr.(*interface{}))
			if bs, ok := v.([]byte); ok {
				v = string(bs)
			}
			m[columns[i]] = v
		}
		ms = append(ms, m)
		if limit > 0 && len(ms) == limit {
			break
		}
	}
	return columns, ms, rows.Err()
}

func checkSliceDestination(dest interface{}) error {
	t := reflect.TypeOf(dest)
	if t == nil || t.Kind() != reflect.Ptr || t.Elem().Kind() != reflect.Slice {
		return ErrInvalidDestination
	}
	elem := t.Elem().Elem()
	if elem.Kind() == reflect.Ptr {
		elem = elem.Elem()
	}
	if elem.Kind() != reflect.Struct {
		return ErrInvalidDestination
	}
	return nil
}

func checkStructDestination(dest interface{}) error {
	v := reflect.ValueOf(dest)
	if v.Kind() != reflect.Ptr || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return ErrInvalidDestination
	}
	return nil
}

// bindObjects binds rows into dest, either a pointer to a slice of structs
// (or struct pointers) or a pointer to a single struct. It returns the number
// of rows bound.
func bindObjects(rows *sql.Rows, dest interface{}, limit int) (int, error) {
	columns, err := rows.Columns()
	if err != nil {
		return 0, err
	}
	v := reflect.ValueOf(dest).Elem()

	if v.Kind() == reflect.Struct {
		if !rows.Next() {
			return 0, rows.Err()
		}
		fields := columnFields(v.Type(), columns)
		if err := rows.Scan(scanTargets(v, fields)...); err != nil {
			return 0, err
		}
		return 1, nil
	}

	// since dest is a pointer to a slice, the element is either T or *T
	elemType := v.Type().Elem()
	structType := elemType
	if elemType.Kind() == reflect.Ptr {
		structType = elemType.Elem()
	}
	fields := columnFields(structType, columns)
	out := reflect.MakeSlice(v.Type(), 0, 0)
	n := 0
	for rows.Next() {
		item := reflect.New(structType)
		if err := rows.Scan(scanTargets(item.Elem(), fields)...); err != nil {
			return n, err
		}
		if elemType.Kind() == reflect.Ptr {
			out = reflect.Append(out, item)
		} else {
			out = reflect.Append(out, item.Elem())
		}
		n++
		if limit > 0 && n == limit {
			break
		}
	}
	if err := rows.Err(); err != nil {
		return n, err
	}
	v.Set(out)
	return n, nil
}

// columnFields resolves every column to a field index path, nil when the
// struct has no matching field.
func columnFields(t reflect.Type, columns []string) [][]int {
	byName := map[string][]int{}
	collectFields(t, nil, byName)
	fields := make([][]int, len(columns))
	for i, column := range columns {
		if idx, ok := byName[column]; ok {
			fields[i] = idx
			continue
		}
		// users.id
		if dot := strings.LastIndex(column, "."); dot >= 0 {
			fields[i] = byName[column[dot+1:]]
		}
	}
	return fields
}

// collectFields maps column names to fields. A `db` tag wins over the snake
// cased field name, "-" skips the field, and embedded structs are flattened.
func collectFields(t reflect.Type, parent []int, byName map[string][]int) {
	for i := 0; i < t.NumField(); i++ {
		ft := t.Field(i)
		idx := append(append([]int{}, parent...), i)
		if ft.Anonymous && ft.Type.Kind() == reflect.Struct {
			collectFields(ft.Type, idx, byName)
			continue
		}
		if ft.PkgPath != "" {
			continue
		}
		name := ft.Tag.Get("db")
		if name == "-" {
			continue
		}
		if name == "" {
			name = strcase.ToSnake(ft.Name)
		}
		if _, exists := byName[name]; !exists {
			byName[name] = idx
		}
	}
}

func scanTargets(v reflect.Value, fields [][]int) []interface{} {
	targets := make([]interface{}, len(fields))
	for i, idx := range fields {
		if idx == nil {
			targets[i] = new(interface{})
			continue
		}
		targets[i] = v.FieldByIndex(idx).Addr().Interface()
	}
	return targets
}
