package qb

import (
	"context"
	"database/sql"
)

// Result describes what Save, Update and Delete did.
type Result struct {
	// LastInsertID is the generated key when Inserted is true and the
	// dialect reports one.
	LastInsertID int64
	RowsAffected int64
	// Inserted is true when an INSERT ran, either directly or as the
	// fallback of an UPDATE that matched nothing.
	Inserted bool
}

// execution is what run hands back: open rows for the read paths, a Result
// for the others.
type execution struct {
	rows   *sql.Rows
	result Result
}

func (e *execution) close() {
	if e.rows != nil {
		e.rows.Close()
	}
}

func (b *Builder) consume(filters []Filter) error {
	if b.consumed {
		return ErrBuilderConsumed
	}
	b.consumed = true
	for _, f := range filters {
		f(b)
	}
	return nil
}

func (b *Builder) run(ctx context.Context, mode buildMode) (*execution, error) {
	switch p := b.route(mode); p {
	case pathWrite:
		res, err := b.write(ctx, mode == modeOnlyUpdate)
		if err != nil {
			return nil, err
		}
		return &execution{result: res}, nil
	case pathDelete:
		q, args := b.deleteSql()
		res, err := b.conn.exec(ctx, q, args)
		if err != nil {
			return nil, err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return nil, err
		}
		return &execution{result: Result{RowsAffected: affected}}, nil
	default:
		q, args := b.selectSql(p == pathCount)
		rows, err := b.conn.query(ctx, q, args)
		if err != nil {
			return nil, err
		}
		return &execution{rows: rows}, nil
	}
}

// write updates when there are conditions and inserts otherwise. An UPDATE
// that touches no row is retried as an INSERT unless onlyUpdate is set.
func (b *Builder) write(ctx context.Context, onlyUpdate bool) (Result, error) {
	if len(b.where) > 0 {
		q, args := b.updateSql()
		res, err := b.conn.exec(ctx, q, args)
		if err != nil {
			return Result{}, err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return Result{}, err
		}
		if affected > 0 || onlyUpdate {
			return Result{RowsAffected: affected}, nil
		}
	}

	q, args := b.insertSql()
	res, err := b.conn.exec(ctx, q, args)
	if err != nil {
		return Result{}, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return Result{}, err
	}
	out := Result{RowsAffected: affected, Inserted: true}
	if b.conn.Dialect.SupportsLastInsertID {
		out.LastInsertID, err = res.LastInsertId()
		if err != nil {
			return Result{}, err
		}
	}
	return out, nil
}

func (b *Builder) fetchMaps(ctx context.Context, mode buildMode, limit int) ([]string, []map[string]interface{}, error) {
	ex, err := b.run(ctx, mode)
	if err != nil {
		return nil, nil, err
	}
	defer ex.close()
	if ex.rows == nil {
		return nil, []map[string]interface{}{}, nil
	}
	return bindToMap(ex.rows, limit)
}

// ToArray runs the SELECT and returns every row as a column -> value map.
func (b *Builder) ToArray(ctx context.Context) ([]map[string]interface{}, error) {
	if err := b.consume(nil); err != nil {
		return nil, err
	}
	_, rows, err := b.fetchMaps(ctx, modeNone, 0)
	if err != nil {
		return []map[string]interface{}{}, b.conn.handle(err)
	}
	return rows, b.conn.handle(nil)
}

// OneArray returns the first row, or nil when nothing matched.
func (b *Builder) OneArray(ctx context.Context, filters ...Filter) (map[string]interface{}, error) {
	if err := b.consume(filters); err != nil {
		return nil, err
	}
	_, rows, err := b.fetchMaps(ctx, modeNone, 1)
	if err != nil {
		return nil, b.conn.handle(err)
	}
	if len(rows) == 0 {
		return nil, b.conn.handle(nil)
	}
	return rows[0], b.conn.handle(nil)
}

// ToObject runs the SELECT and binds every row into dest, which must be a
// pointer to a slice of structs or of struct pointers.
func (b *Builder) ToObject(ctx context.Context, dest interface{}) error {
	if err := b.consume(nil); err != nil {
		return err
	}
	if err := checkSliceDestination(dest); err != nil {
		return err
	}
	_, err := b.fetchObjects(ctx, dest, 0)
	return b.conn.handle(err)
}

// OneObject binds the first row into dest, a pointer to a struct. It reports
// whether a row was found; dest is left untouched when none was.
func (b *Builder) OneObject(ctx context.Context, dest interface{}, filters ...Filter) (bool, error) {
	if err := b.consume(filters); err != nil {
		return false, err
	}
	if err := checkStructDestination(dest); err != nil {
		return false, err
	}
	n, err := b.fetchObjects(ctx, dest, 1)
	return n > 0, b.conn.handle(err)
}

func (b *Builder) fetchObjects(ctx context.Context, dest interface{}, limit int) (int, error) {
	ex, err := b.run(ctx, modeNone)
	if err != nil {
		return 0, err
	}
	defer ex.close()
	if ex.rows == nil {
		return 0, nil
	}
	return bindObjects(ex.rows, dest, limit)
}

// ToJSON runs the SELECT and encodes the rows as a JSON array.
func (b *Builder) ToJSON(ctx context.Context) (string, error) {
	rows, err := b.ToArray(ctx)
	if err != nil {
		return "", err
	}
	return encodeJSON(rows, b.conn.config.JSONOptions)
}

// OneJSON encodes the first row as a JSON object, or null when nothing
// matched.
func (b *Builder) OneJSON(ctx context.Context, filters ...Filter) (string, error) {
	row, err := b.OneArray(ctx, filters...)
	if err != nil {
		return "", err
	}
	return encodeJSON(row, b.conn.config.JSONOptions)
}

// Count runs SELECT COUNT(...) AS count and returns the first column of the
// first row.
func (b *Builder) Count(ctx context.Context) (int64, error) {
	if err := b.consume(nil); err != nil {
		return 0, err
	}
	n, err := b.count(ctx)
	return n, b.conn.handle(err)
}

func (b *Builder) count(ctx context.Context) (int64, error) {
	ex, err := b.run(ctx, modeCount)
	if err != nil {
		return 0, err
	}
	defer ex.close()
	if ex.rows == nil {
		return 0, nil
	}
	if !ex.rows.Next() {
		return 0, ex.rows.Err()
	}
	var n int64
	if err := ex.rows.Scan(&n); err != nil {
		return 0, err
	}
	return n, ex.rows.Err()
}

// Save writes the pending values: UPDATE when there are conditions, INSERT
// when there are none or when the UPDATE matched no row.
func (b *Builder) Save(ctx context.Context, values ...Values) (Result, error) {
	return b.save(ctx, modeNone, values)
}

// Update is Save without the INSERT fallback. An UPDATE that matches no row
// is not an error; it returns a Result with RowsAffected == 0.
func (b *Builder) Update(ctx context.Context, values ...Values) (Result, error) {
	return b.save(ctx, modeOnlyUpdate, values)
}

func (b *Builder) save(ctx context.Context, mode buildMode, values []Values) (Result, error) {
	if err := b.consume(nil); err != nil {
		return Result{}, err
	}
	for _, v := range values {
		b.SetValues(v)
	}
	if len(b.setCols) == 0 {
		return Result{}, ErrNoValues
	}
	ex, err := b.run(ctx, mode)
	if err != nil {
		return Result{}, b.conn.handle(err)
	}
	return ex.result, b.conn.handle(nil)
}

// Delete removes the matching rows and returns how many went. Without any
// condition it empties the table.
func (b *Builder) Delete(ctx context.Context, filters ...Filter) (int64, error) {
	if err := b.consume(filters); err != nil {
		return 0, err
	}
	ex, err := b.run(ctx, modeDelete)
	if err != nil {
		return 0, b.conn.handle(err)
	}
	return ex.result.RowsAffected, b.conn.handle(nil)
}
