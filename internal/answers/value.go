package answers

import (
	"encoding/json"
	"fmt"
)

// Kind discriminates the payload of a Value.
type Kind int

const (
	KindEmpty Kind = iota
	KindString
	KindNumber
	KindBool
	KindList
)

// Value is a single indicator answer: a string (select, chips, text, date),
// a number (numeric, scale, range), a boolean (yes/no) or a list of strings
// (multi-choice). Exactly one payload is set, discriminated by Kind. It
// marshals to and from the bare JSON value, so the persisted answer map
// keeps the plain shape clients send.
type Value struct {
	kind Kind
	str  string
	num  float64
	b    bool
	list []string
}

func String(s string) Value      { return Value{kind: KindString, str: s} }
func Number(n float64) Value     { return Value{kind: KindNumber, num: n} }
func Bool(b bool) Value          { return Value{kind: KindBool, b: b} }
func List(items ...string) Value { return Value{kind: KindList, list: items} }

func (v Value) Kind() Kind { return v.kind }

// Str returns the string payload and whether the value is a string.
func (v Value) Str() (string, bool) {
	return v.str, v.kind == KindString
}

// Num returns the numeric payload and whether the value is a number.
func (v Value) Num() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// Flag returns the boolean payload and whether the value is a boolean.
func (v Value) Flag() (bool, bool) {
	return v.b, v.kind == KindBool
}

// Items returns the list payload and whether the value is a list.
func (v Value) Items() ([]string, bool) {
	return v.list, v.kind == KindList
}

// IsEmpty reports whether the value is unset or an empty string.
// An empty string counts as unanswered everywhere an answer is consumed.
func (v Value) IsEmpty() bool {
	return v.kind == KindEmpty || (v.kind == KindString && v.str == "")
}

// Equal is strict equality: kinds must match, no coercion between string,
// number and boolean payloads.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == other.str
	case KindNumber:
		return v.num == other.num
	case KindBool:
		return v.b == other.b
	case KindList:
		if len(v.list) != len(other.list) {
			return false
		}
		for i := range v.list {
			if v.list[i] != other.list[i] {
				return false
			}
		}
		return true
	}
	return true // both empty
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.str)
	case KindNumber:
		return json.Marshal(v.num)
	case KindBool:
		return json.Marshal(v.b)
	case KindList:
		if v.list == nil {
			return json.Marshal([]string{})
		}
		return json.Marshal(v.list)
	}
	return []byte("null"), nil
}

func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch t := raw.(type) {
	case nil:
		*v = Value{}
	case string:
		*v = String(t)
	case float64:
		*v = Number(t)
	case bool:
		*v = Bool(t)
	case []any:
		items := make([]string, 0, len(t))
		for _, it := range t {
			s, ok := it.(string)
			if !ok {
				return fmt.Errorf("answer list items must be strings, got %T", it)
			}
			items = append(items, s)
		}
		*v = List(items...)
	default:
		return fmt.Errorf("unsupported answer value type %T", t)
	}
	return nil
}
