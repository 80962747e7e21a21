package form

import (
	"fmt"
	"reflect"
	"strconv"
)

// Marshaler is implemented by types that render themselves as a form field.
type Marshaler interface {
	MarshalForm() (string, error)
}

// FormatValue returns the textual form of value. ok is false when value is
// absent: nil, a nil pointer, interface, slice, map, func or chan.
func FormatValue(value any) (text string, ok bool, err error) {
	if value == nil {
		return "", false, nil
	}
	return formatReflect(reflect.ValueOf(value))
}

func formatReflect(v reflect.Value) (string, bool, error) {
	for {
		if isNil(v) {
			return "", false, nil
		}
		if m, ok := asMarshaler(v); ok {
			s, err := m.MarshalForm()
			if err != nil {
				return "", false, err
			}
			return s, true, nil
		}
		if s, ok := asStringer(v); ok {
			return s.String(), true, nil
		}
		if v.Kind() != reflect.Pointer && v.Kind() != reflect.Interface {
			break
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.String:
		return v.String(), true, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), true, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(v.Uint(), 10), true, nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, v.Type().Bits()), true, nil
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), true, nil
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return string(v.Bytes()), true, nil
		}
	}
	return fmt.Sprint(v.Interface()), true, nil
}

// asMarshaler also finds MarshalForm declared on *T when v holds a T, by
// checking the pointer of an addressable copy.
func asMarshaler(v reflect.Value) (Marshaler, bool) {
	if m, ok := v.Interface().(Marshaler); ok {
		return m, true
	}
	m, ok := addressable(v).Addr().Interface().(Marshaler)
	return m, ok
}

func asStringer(v reflect.Value) (fmt.Stringer, bool) {
	if s, ok := v.Interface().(fmt.Stringer); ok {
		return s, true
	}
	s, ok := addressable(v).Addr().Interface().(fmt.Stringer)
	return s, ok
}

func addressable(v reflect.Value) reflect.Value {
	if v.CanAddr() {
		return v
	}
	c := reflect.New(v.Type()).Elem()
	c.Set(v)
	return c
}

func isNil(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
