// File: internal/database/fake_rows.go
package database

import (
	"fmt"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// FakeRow 實作 pgx.Row，依序把 Values 寫入 Scan 的目的指標。
// nil 代表 SQL NULL，目的端會被設為零值。
type FakeRow struct {
	Values []any
	Err    error
}

func (r *FakeRow) Scan(dest ...any) error {
	if r.Err != nil {
		return r.Err
	}
	return assignValues(r.Values, dest)
}

// FakeRows 實作 pgx.Rows，每一列為一組 Values
type FakeRows struct {
	Data    [][]any
	ScanErr error
	Error   error

	idx    int
	Closed bool
}

func (r *FakeRows) Close()                                       { r.Closed = true }
func (r *FakeRows) Err() error                                   { return r.Error }
func (r *FakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *FakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *FakeRows) Next() bool {
	if r.idx < len(r.Data) {
		r.idx++
		return true
	}
	return false
}
func (r *FakeRows) Scan(dest ...any) error {
	if r.ScanErr != nil {
		return r.ScanErr
	}
	return assignValues(r.Data[r.idx-1], dest)
}
func (r *FakeRows) Values() ([]any, error) { return r.Data[r.idx-1], nil }
func (r *FakeRows) RawValues() [][]byte    { return nil }
func (r *FakeRows) Conn() *pgx.Conn        { return nil }

func assignValues(values []any, dest []any) error {
	if len(values) != len(dest) {
		return fmt.Errorf("fake scan: %d values for %d destinations", len(values), len(dest))
	}
	for i, d := range dest {
		dv := reflect.ValueOf(d)
		if dv.Kind() != reflect.Ptr || dv.IsNil() {
			return fmt.Errorf("fake scan: destination %d is not a pointer", i)
		}
		target := dv.Elem()
		if values[i] == nil {
			target.Set(reflect.Zero(target.Type()))
			continue
		}
		v := reflect.ValueOf(values[i])
		switch {
		case v.Type().AssignableTo(target.Type()):
			target.Set(v)
		case v.Type().ConvertibleTo(target.Type()):
			target.Set(v.Convert(target.Type()))
		case target.Kind() == reflect.Ptr && v.Type().ConvertibleTo(target.Type().Elem()):
			p := reflect.New(target.Type().Elem())
			p.Elem().Set(v.Convert(target.Type().Elem()))
			target.Set(p)
		default:
			return fmt.Errorf("fake scan: cannot assign %T to %s", values[i], target.Type())
		}
	}
	return nil
}
