package mixin

import (
	"fmt"
	"reflect"
	"strings"
)

// Repr renders a struct as <Type(field=value, ...)>. Fields appear in
// declaration order under their json name; embedded, unexported and
// json:"-" fields are skipped. Strings are single-quoted.
func Repr(v any) string {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "<nil>"
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return fmt.Sprintf("<%v>", v)
	}

	rt := rv.Type()
	attrs := make([]string, 0, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if field.Anonymous || !field.IsExported() {
			continue
		}
		name := fieldName(field)
		if name == "" {
			continue
		}
		attrs = append(attrs, name+"="+reprValue(rv.Field(i)))
	}
	return fmt.Sprintf("<%s(%s)>", rt.Name(), strings.Join(attrs, ", "))
}

func fieldName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return ""
	}
	if name, _, _ := strings.Cut(tag, ","); name != "" {
		return name
	}
	return strings.ToLower(field.Name)
}

func reprValue(v reflect.Value) string {
	if v.Kind() == reflect.String {
		return "'" + v.String() + "'"
	}
	return fmt.Sprintf("%v", v.Interface())
}
