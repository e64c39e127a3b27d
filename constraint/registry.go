package constraint

import (
	"io"
	"reflect"
	"sync"
	"time"

	"github.com/lyraproj/issue/issue"
	"github.com/sigh0829/check-args/check"
)

type nominalType struct {
	name string
	typ  reflect.Type
}

var registryLock sync.RWMutex
var registry = map[string]*nominalType{}

// Register makes a named nominal type available as a constraint. Membership
// is by type identity: a value is an instance when its type is the sample's
// type, a pointer to it, or implements it when the sample is an interface
// type. Registration happens at declaration time only; the registry is
// append-only.
func Register(name string, sample interface{}) check.Constraint {
	var typ reflect.Type
	switch s := sample.(type) {
	case nil:
		panic(check.Error(check.CHECK_BAD_DESCRIPTOR, issue.H{`type`: `nil`}))
	case reflect.Type:
		typ = s
	default:
		typ = reflect.TypeOf(sample)
	}
	t := &nominalType{name, typ}
	registryLock.Lock()
	registry[name] = t
	registryLock.Unlock()
	return t
}

// Named returns the registered constraint with the given name.
func Named(name string) (check.Constraint, bool) {
	registryLock.RLock()
	t, ok := registry[name]
	registryLock.RUnlock()
	if !ok {
		return nil, false
	}
	return t, true
}

// NameFor returns the registered name of a value's type, or the empty
// string when the type was never registered.
func NameFor(v check.Value) string {
	if v == nil || v == check.Undefined {
		return ``
	}
	vt := reflect.TypeOf(v)
	registryLock.RLock()
	defer registryLock.RUnlock()
	for _, t := range registry {
		if t.instanceType(vt) {
			return t.name
		}
	}
	return ``
}

func ofType(typ reflect.Type) check.Constraint {
	registryLock.RLock()
	for _, t := range registry {
		if t.typ == typ {
			registryLock.RUnlock()
			return t
		}
	}
	registryLock.RUnlock()
	return &nominalType{typ.String(), typ}
}

func (t *nominalType) IsInstance(v check.Value) bool {
	if v == nil || v == check.Undefined {
		return false
	}
	return t.instanceType(reflect.TypeOf(v))
}

func (t *nominalType) instanceType(vt reflect.Type) bool {
	if vt == t.typ {
		return true
	}
	if t.typ.Kind() == reflect.Interface {
		return vt.Implements(t.typ)
	}
	return vt.Kind() == reflect.Ptr && vt.Elem() == t.typ
}

func (t *nominalType) Name() string {
	return t.name
}

func (t *nominalType) ToString(w io.Writer) {
	io.WriteString(w, t.name)
}

func (t *nominalType) String() string {
	return check.ConstraintString(t)
}

// Date matches time.Time instances.
var Date = Register(`Date`, time.Time{})
