// backend/src/normalizer/merge.go
package normalizer

import (
	"reflect"

	"github.com/username/taxsarthi/backend/src/validation"
)

// overlay copies every present field of patch onto the identically named
// field of dst. dst must be a pointer to a value-typed form struct;
// patch a (possibly nil) pointer to a backend section whose leaves are
// pointers — a nil leaf means "absent", so the default in dst survives.
// This one merge serves every scalar-map section; nothing is duplicated
// per section.
func overlay(dst, patch any) {
	pv := reflect.ValueOf(patch)
	if !pv.IsValid() || pv.Kind() != reflect.Pointer || pv.IsNil() {
		return
	}
	pv = pv.Elem()
	dv := reflect.ValueOf(dst).Elem()

	for i := 0; i < pv.NumField(); i++ {
		target := dv.FieldByName(pv.Type().Field(i).Name)
		if !target.IsValid() || !target.CanSet() {
			continue
		}
		src := pv.Field(i)
		if src.Kind() == reflect.Pointer {
			if src.IsNil() {
				continue
			}
			src = src.Elem()
		}
		setCoerced(target, src)
	}
}

// setCoerced assigns src to dst, preserving the declared type of the
// default: numeric defaults stay numeric (FlexAmount collapses to
// float64), string defaults stay strings and are sanitized on the way
// in.
func setCoerced(dst, src reflect.Value) {
	switch dst.Kind() {
	case reflect.Float64:
		switch src.Kind() {
		case reflect.Float32, reflect.Float64:
			dst.SetFloat(src.Float())
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			dst.SetFloat(float64(src.Int()))
		}
	case reflect.Int:
		switch src.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			dst.SetInt(src.Int())
		case reflect.Float32, reflect.Float64:
			dst.SetInt(int64(src.Float()))
		}
	case reflect.String:
		if src.Kind() == reflect.String {
			dst.SetString(validation.CleanText(src.String()))
		}
	case reflect.Bool:
		if src.Kind() == reflect.Bool {
			dst.SetBool(src.Bool())
		}
	case reflect.Struct:
		if src.Type() == dst.Type() {
			dst.Set(src)
		}
	}
}
