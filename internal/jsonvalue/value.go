// Package jsonvalue provides the in-memory value tree shared by the
// parser and the printer: JsonValue from spec.md §3, modeled as a tagged
// variant (a Kind discriminator plus kind-specific payload fields) per
// the "Tagged variant vs inheritance" design note in spec.md §9.
package jsonvalue

// Kind identifies which JSON production a Value represents.
type Kind uint8

const (
	KindNull Kind = iota
	KindTrue
	KindFalse
	KindObject
	KindArray
	KindString
	KindNumber
)

// String returns a human-readable form of the kind, used by the parse
// --dump-tree subcommand and in test failure messages.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindTrue:
		return "True"
	case KindFalse:
		return "False"
	case KindObject:
		return "Object"
	case KindArray:
		return "Array"
	case KindString:
		return "String"
	case KindNumber:
		return "Number"
	default:
		return "Unknown"
	}
}

// Value is a recursive JSON value. Object and Array own their children;
// destroying a Value recursively releases all descendants (there are no
// cycles in a parse tree, so ordinary garbage collection is sufficient —
// no reference counting is needed, per spec.md §9).
type Value struct {
	kind Kind

	objEntries map[string]*Value
	objKeys    []string // preserves insertion order, see ObjectSet

	arrElems []*Value

	str string
	num float64
}

// Kind returns the kind of the value. A nil receiver reports KindNull so
// that callers can treat an absent child defensively.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

func NewNull() *Value  { return &Value{kind: KindNull} }
func NewTrue() *Value  { return &Value{kind: KindTrue} }
func NewFalse() *Value { return &Value{kind: KindFalse} }

// NewBool returns NewTrue() or NewFalse() depending on b.
func NewBool(b bool) *Value {
	if b {
		return NewTrue()
	}
	return NewFalse()
}

func NewNumber(n float64) *Value { return &Value{kind: KindNumber, num: n} }
func NewString(s string) *Value  { return &Value{kind: KindString, str: s} }

func NewArray() *Value {
	return &Value{kind: KindArray, arrElems: make([]*Value, 0)}
}

func NewObject() *Value {
	return &Value{
		kind:       KindObject,
		objEntries: make(map[string]*Value),
		objKeys:    make([]string, 0),
	}
}

// StringValue returns the string payload, or "" if this is not a String.
func (v *Value) StringValue() string {
	if v == nil || v.kind != KindString {
		return ""
	}
	return v.str
}

// NumberValue returns the float64 payload, or 0 if this is not a Number.
func (v *Value) NumberValue() float64 {
	if v == nil || v.kind != KindNumber {
		return 0
	}
	return v.num
}

// ObjectSet associates key with child, preserving insertion order. If
// key already exists its value is replaced in place and the key keeps
// its original position — i.e. duplicate keys resolve last-write-wins
// (spec.md §9 Open Question 4).
func (v *Value) ObjectSet(key string, child *Value) {
	if v == nil || v.kind != KindObject {
		return
	}
	if _, exists := v.objEntries[key]; !exists {
		v.objKeys = append(v.objKeys, key)
	}
	v.objEntries[key] = child
}

// ObjectGet returns the value for key, or nil if absent or the receiver
// is not an object.
func (v *Value) ObjectGet(key string) *Value {
	if v == nil || v.kind != KindObject {
		return nil
	}
	return v.objEntries[key]
}

// ObjectKeys returns the object's keys in insertion order.
func (v *Value) ObjectKeys() []string {
	if v == nil || v.kind != KindObject {
		return nil
	}
	keys := make([]string, len(v.objKeys))
	copy(keys, v.objKeys)
	return keys
}

// ArrayAppend appends child to the array.
func (v *Value) ArrayAppend(child *Value) {
	if v == nil || v.kind != KindArray {
		return
	}
	v.arrElems = append(v.arrElems, child)
}

// ArrayElements returns a shallow copy of the array's elements, in order.
func (v *Value) ArrayElements() []*Value {
	if v == nil || v.kind != KindArray {
		return nil
	}
	elements := make([]*Value, len(v.arrElems))
	copy(elements, v.arrElems)
	return elements
}

// ArrayLen returns the number of elements, or 0 if not an array.
func (v *Value) ArrayLen() int {
	if v == nil || v.kind != KindArray {
		return 0
	}
	return len(v.arrElems)
}

// Equal reports whether v and other describe the same JSON value. Number
// payloads are compared with ==; callers that need the IEEE-equality
// property described in spec.md §8 can compare Number leaves themselves
// with their own tolerance.
func Equal(v, other *Value) bool {
	if v.Kind() != other.Kind() {
		return false
	}
	switch v.Kind() {
	case KindNull, KindTrue, KindFalse:
		return true
	case KindString:
		return v.StringValue() == other.StringValue()
	case KindNumber:
		return v.NumberValue() == other.NumberValue()
	case KindArray:
		a, b := v.ArrayElements(), other.ArrayElements()
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if !Equal(a[i], b[i]) {
				return false
			}
		}
		return true
	case KindObject:
		ak, bk := v.ObjectKeys(), other.ObjectKeys()
		if len(ak) != len(bk) {
			return false
		}
		for i := range ak {
			if ak[i] != bk[i] {
				return false
			}
			if !Equal(v.ObjectGet(ak[i]), other.ObjectGet(bk[i])) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
