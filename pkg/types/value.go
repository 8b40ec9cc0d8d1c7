// SPDX-FileCopyrightText: 2026 specdex
// SPDX-License-Identifier: FSL-1.1-MIT

package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ValueKind identifies the dynamic type carried by a Value.
type ValueKind int

const (
	// KindNull is a JSON null.
	KindNull ValueKind = iota

	// KindString is a string value.
	KindString

	// KindInt is an integral number.
	KindInt

	// KindFloat is a non-integral number.
	KindFloat

	// KindBool is a boolean value.
	KindBool

	// KindArray is an ordered list of values.
	KindArray

	// KindObject is a string-keyed map of values.
	KindObject
)

// Value is a closed tagged union over the JSON value space. It decodes any
// legal JSON value without failure, which is what the polymorphic
// default/example schema fields require.
type Value struct {
	// Kind identifies which member carries the value
	Kind ValueKind

	// Str holds the value when Kind is KindString
	Str string

	// Int holds the value when Kind is KindInt
	Int int64

	// Float holds the value when Kind is KindFloat
	Float float64

	// Bool holds the value when Kind is KindBool
	Bool bool

	// Arr holds the value when Kind is KindArray
	Arr []Value

	// Obj holds the value when Kind is KindObject
	Obj map[string]Value
}

// StringValue returns a Value of KindString.
func StringValue(s string) Value { return Value{Kind: KindString, Str: s} }

// IntValue returns a Value of KindInt.
func IntValue(i int64) Value { return Value{Kind: KindInt, Int: i} }

// FloatValue returns a Value of KindFloat.
func FloatValue(f float64) Value { return Value{Kind: KindFloat, Float: f} }

// BoolValue returns a Value of KindBool.
func BoolValue(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// NullValue returns a Value of KindNull.
func NullValue() Value { return Value{Kind: KindNull} }

// UnmarshalJSON decodes any JSON value into the tagged union.
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	*v = valueOf(raw)
	return nil
}

// valueOf converts a decoded generic JSON value into a Value.
func valueOf(raw interface{}) Value {
	switch t := raw.(type) {
	case nil:
		return NullValue()
	case bool:
		return BoolValue(t)
	case string:
		return StringValue(t)
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return IntValue(i)
		}
		f, _ := t.Float64()
		return FloatValue(f)
	case float64:
		if i := int64(t); float64(i) == t {
			return IntValue(i)
		}
		return FloatValue(t)
	case []interface{}:
		arr := make([]Value, 0, len(t))
		for _, item := range t {
			arr = append(arr, valueOf(item))
		}
		return Value{Kind: KindArray, Arr: arr}
	case map[string]interface{}:
		obj := make(map[string]Value, len(t))
		for key, item := range t {
			obj[key] = valueOf(item)
		}
		return Value{Kind: KindObject, Obj: obj}
	default:
		return StringValue(fmt.Sprintf("%v", t))
	}
}

// MarshalJSON encodes the union member in its native JSON form.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.native())
}

// MarshalYAML encodes the union member in its native YAML form.
func (v Value) MarshalYAML() (interface{}, error) {
	return v.native(), nil
}

// native returns the Go value corresponding to the union member.
func (v Value) native() interface{} {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindInt:
		return v.Int
	case KindFloat:
		return v.Float
	case KindBool:
		return v.Bool
	case KindArray:
		arr := make([]interface{}, 0, len(v.Arr))
		for _, item := range v.Arr {
			arr = append(arr, item.native())
		}
		return arr
	case KindObject:
		obj := make(map[string]interface{}, len(v.Obj))
		for key, item := range v.Obj {
			obj[key] = item.native()
		}
		return obj
	default:
		return nil
	}
}

// String returns the canonical string form used for catalog storage:
// %g-style compact formatting for floats, literal true/false/null tokens,
// strings verbatim, and compact JSON for arrays and objects.
func (v Value) String() string {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindArray, KindObject:
		data, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(data)
	default:
		return "null"
	}
}

// ParseValue re-infers the original typed value from its canonical string
// form. Inference order: null, bool, int, float, JSON array/object, string.
// A literal string "true" re-infers as a bool; the ambiguity is inherent to
// the string-only storage column and is accepted.
func ParseValue(s string) Value {
	switch s {
	case "null":
		return NullValue()
	case "true":
		return BoolValue(true)
	case "false":
		return BoolValue(false)
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return IntValue(i)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return FloatValue(f)
	}

	if len(s) > 0 && (s[0] == '[' || s[0] == '{') {
		var v Value
		if err := json.Unmarshal([]byte(s), &v); err == nil {
			return v
		}
	}

	return StringValue(s)
}

// EnumList is a list of enum members normalized to string form. Source
// documents may declare enum members as strings, integers, floats, or
// booleans; all are coerced at decode time.
type EnumList []string

// UnmarshalJSON decodes a heterogeneous enum array, stringifying each member.
func (e *EnumList) UnmarshalJSON(data []byte) error {
	var values []Value
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}

	members := make([]string, 0, len(values))
	for _, v := range values {
		members = append(members, v.String())
	}
	*e = members
	return nil
}
