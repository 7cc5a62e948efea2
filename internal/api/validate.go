// File: internal/api/validate.go
package api

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps go-playground/validator for Echo.
// 一般欄位用 validate tag；Optional 欄位用 patch tag，只在欄位出現時檢查。
type Validator struct {
	validator *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)
	return &Validator{validator: v}
}

// normalizer 在規則檢查前整理輸入，例如去除 Email 前後空白
type normalizer interface {
	normalize()
}

// Validate implements echo.Validator
func (cv *Validator) Validate(i any) error {
	if n, ok := i.(normalizer); ok {
		n.normalize()
	}
	if err := cv.validator.Struct(i); err != nil {
		return toValidationError(err)
	}
	return cv.validatePatch(i)
}

func (cv *Validator) validatePatch(i any) error {
	rv := reflect.ValueOf(i)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}

	var fields []FieldError
	rt := rv.Type()
	for n := 0; n < rt.NumField(); n++ {
		sf := rt.Field(n)
		if !sf.IsExported() {
			continue
		}
		p, ok := rv.Field(n).Interface().(presence)
		if !ok || !p.IsSet() {
			continue
		}
		name := jsonFieldName(sf)
		if p.IsNull() && !p.Nullable() {
			fields = append(fields, FieldError{Field: name, Rule: "notnull"})
			continue
		}
		tag := sf.Tag.Get("patch")
		if tag == "" {
			continue
		}
		if err := cv.validator.Var(p.Interface(), tag); err != nil {
			var verrs validator.ValidationErrors
			if !errors.As(err, &verrs) {
				return err
			}
			for _, fe := range verrs {
				fields = append(fields, FieldError{Field: name, Rule: fe.Tag(), Param: fe.Param()})
			}
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func toValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field: fieldPath(fe.Namespace()),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}
	return out
}

// fieldPath 去掉最外層的型別名稱，例如 "BulkUpdateSettingsRequest.settings[0].key" → "settings[0].key"
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func jsonFieldName(sf reflect.StructField) string {
	name := strings.SplitN(sf.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return sf.Name
	}
	return name
}
