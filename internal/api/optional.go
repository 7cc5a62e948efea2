// File: internal/api/optional.go
package api

import (
	"encoding/json"
	"reflect"
)

// Optional 記錄欄位是否出現在 JSON 請求中。
// 未出現 (Set == false) 的欄位在 ApplyTo 時不會覆寫既有值；
// 明確給 null 時 Set 與 Null 皆為 true。
type Optional[T any] struct {
	Value T
	Set   bool
	Null  bool
}

// Some 建立一個已設定的 Optional
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	o.Value = v
	o.Set = true
	o.Null = string(b) == "null"
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// ApplyTo 只在欄位有出現時寫入 dst
func (o Optional[T]) ApplyTo(dst *T) {
	if o.Set {
		*dst = o.Value
	}
}

func (o Optional[T]) IsSet() bool { return o.Set }

func (o Optional[T]) IsNull() bool { return o.Null }

func (o Optional[T]) Interface() any { return o.Value }

// Nullable 回報 T 是否能存放 null
func (o Optional[T]) Nullable() bool {
	switch reflect.TypeOf(&o.Value).Elem().Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface:
		return true
	}
	return false
}

// presence 是 Optional[T] 不依賴型別參數的檢視
type presence interface {
	IsSet() bool
	IsNull() bool
	Nullable() bool
	Interface() any
}
