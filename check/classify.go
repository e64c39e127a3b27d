package check

import (
	"reflect"
	"time"

	"github.com/lyraproj/semver/semver"
)

// ValueKind is the closed set of categories that an argument value can
// belong to. Every Value classifies as exactly one kind.
type ValueKind int

const (
	Missing ValueKind = iota
	Null
	UndefinedMarker
	Textual
	Numeric
	Boolean
	Sequential
	Structured
	FunctionLike
	Nominal
)

// KindOf classifies a value. time.Time and semver versions classify as
// Nominal rather than Structured so that constraints on plain structured
// data do not accept them by accident.
func KindOf(v Value) ValueKind {
	if v == nil {
		return Null
	}
	if v == Undefined {
		return UndefinedMarker
	}
	switch v.(type) {
	case time.Time, *time.Time, semver.Version:
		return Nominal
	}
	t := reflect.TypeOf(v)
	switch t.Kind() {
	case reflect.String:
		return Textual
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return Numeric
	case reflect.Bool:
		return Boolean
	case reflect.Slice, reflect.Array:
		return Sequential
	case reflect.Map, reflect.Struct:
		return Structured
	case reflect.Ptr:
		if t.Elem().Kind() == reflect.Struct {
			return Structured
		}
		return Nominal
	case reflect.Func:
		return FunctionLike
	}
	return Nominal
}

func (k ValueKind) String() string {
	switch k {
	case Missing:
		return `missing`
	case Null:
		return `null`
	case UndefinedMarker:
		return `undef`
	case Textual:
		return `textual`
	case Numeric:
		return `numeric`
	case Boolean:
		return `boolean`
	case Sequential:
		return `sequential`
	case Structured:
		return `structured`
	case FunctionLike:
		return `function`
	}
	return `nominal`
}
