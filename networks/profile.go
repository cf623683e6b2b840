package networks

import "reflect"

// Profile is a network parameter profile as seen by this package.  Only the
// identifier is ever read; profiles are never constructed, validated or
// mutated here.
//
// NetworkID returns the identifier string of the network, for example
// "org.bitcoin.production" or "peercoin.main".  An empty string means the
// profile has no identifier.
type Profile interface {
	NetworkID() string
}

// Equaler may be implemented by a Profile that defines its own notion of
// equality.  When it is not implemented, two profiles are equal when they
// are the same comparable value.
type Equaler interface {
	Equal(other Profile) bool
}

// Identifier is a bare identifier string usable wherever a Profile is
// expected.
type Identifier string

// NetworkID returns the identifier itself.
func (id Identifier) NetworkID() string {
	return string(id)
}

// String returns the identifier in human-readable form.
func (id Identifier) String() string {
	return string(id)
}

// isNilProfile reports whether p is nil or an interface holding a nil
// pointer, map, slice or func.
func isNilProfile(p Profile) bool {
	if p == nil {
		return true
	}
	v := reflect.ValueOf(p)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// sameProfile reports whether a and b are equal profiles.  It never panics,
// even for profiles whose dynamic type is not comparable.
func sameProfile(a, b Profile) bool {
	if e, ok := a.(Equaler); ok {
		return e.Equal(b)
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	// A comparable type may still hold values that are not, such as a
	// struct with an interface field set to a slice.
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ta.Comparable() && valueComparable(va) && valueComparable(vb) {
		return a == b
	}

	// Values of non-comparable types are only equal to themselves, which
	// can only be observed through their address.  Non-comparable structs
	// and arrays must implement Equaler to be deduplicated.
	switch va.Kind() {
	case reflect.Map, reflect.Func:
		return va.Pointer() == vb.Pointer()
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	}
	return false
}

// valueComparable reports whether v can be compared with == without
// panicking.  Nil interfaces compare fine.
func valueComparable(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Interface:
		return v.IsNil() || valueComparable(v.Elem())
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if !valueComparable(v.Field(i)) {
				return false
			}
		}
		return true
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if !valueComparable(v.Index(i)) {
				return false
			}
		}
		return true
	}
	return v.Type().Comparable()
}
