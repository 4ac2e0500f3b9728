package bson

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/standardbeagle/goassets/internal/intern"
	"github.com/standardbeagle/goassets/internal/logx"
)

// Getters (§4.3). Each has a by-name form (object-kind objects) and a
// by-index form (array-kind objects). Out-of-range/missing/mismatched
// reads return ok=false without touching any caller state; scalar
// getters perform the documented limited conversions (int<->bool,
// int<->float).

func GetInt(obj *Object, name string) (int64, bool)    { return intFromProp(obj.Get(name)) }
func GetIntAt(obj *Object, idx int) (int64, bool)       { return intFromProp(obj.At(idx)) }
func GetFloat(obj *Object, name string) (float32, bool) { return floatFromProp(obj.Get(name)) }
func GetFloatAt(obj *Object, idx int) (float32, bool)   { return floatFromProp(obj.At(idx)) }
func GetBool(obj *Object, name string) (bool, bool)     { return boolFromProp(obj.Get(name)) }
func GetBoolAt(obj *Object, idx int) (bool, bool)       { return boolFromProp(obj.At(idx)) }
func GetString(obj *Object, name string) (string, bool) { return stringFromProp(obj.Get(name)) }
func GetStringAt(obj *Object, idx int) (string, bool)   { return stringFromProp(obj.At(idx)) }
func GetObject(obj *Object, name string) (*Object, bool) { return objectFromProp(obj.Get(name)) }
func GetObjectAt(obj *Object, idx int) (*Object, bool)   { return objectFromProp(obj.At(idx)) }

func intFromProp(p *Property) (int64, bool) {
	if p == nil {
		return 0, false
	}
	switch p.Kind {
	case ValueInt:
		return p.IntVal, true
	case ValueFloat:
		return int64(p.FloatVal), true
	case ValueBool:
		if p.BoolVal {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

func floatFromProp(p *Property) (float32, bool) {
	if p == nil {
		return 0, false
	}
	switch p.Kind {
	case ValueFloat:
		return p.FloatVal, true
	case ValueInt:
		return float32(p.IntVal), true
	default:
		return 0, false
	}
}

func boolFromProp(p *Property) (bool, bool) {
	if p == nil {
		return false, false
	}
	switch p.Kind {
	case ValueBool:
		return p.BoolVal, true
	case ValueInt:
		return p.IntVal != 0, true
	default:
		return false, false
	}
}

func stringFromProp(p *Property) (string, bool) {
	if p == nil || p.Kind != ValueString {
		return "", false
	}
	return p.StrVal, true
}

func objectFromProp(p *Property) (*Object, bool) {
	if p == nil || p.Kind != ValueObject {
		return nil, false
	}
	return p.ObjectVal, true
}

// Vector/matrix values are stored as whitespace-separated formatted
// strings and parsed on read (§4.3).

func GetVec2(obj *Object, name string) (v [2]float32, ok bool) {
	ok = parseFloatFields(obj.Get(name), v[:])
	return
}

func GetVec3(obj *Object, name string) (v [3]float32, ok bool) {
	ok = parseFloatFields(obj.Get(name), v[:])
	return
}

func GetVec4(obj *Object, name string) (v [4]float32, ok bool) {
	ok = parseFloatFields(obj.Get(name), v[:])
	return
}

func GetMat4(obj *Object, name string) (v [16]float32, ok bool) {
	ok = parseFloatFields(obj.Get(name), v[:])
	return
}

// parseFloatFields fills out with the whitespace-separated float
// fields of p's stored string, failing if the count doesn't match.
func parseFloatFields(p *Property, out []float32) bool {
	if p == nil || p.Kind != ValueString {
		return false
	}
	fields := strings.Fields(p.StrVal)
	if len(fields) != len(out) {
		return false
	}
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return false
		}
		out[i] = float32(v)
	}
	return true
}

func formatVecN(v []float32) string {
	parts := make([]string, len(v))
	for i, f := range v {
		parts[i] = strconv.FormatFloat(float64(f), 'g', -1, 32)
	}
	return strings.Join(parts, " ")
}

// GetName reads a field as the interned case-insensitive Name of its
// stored string ("name-as-string" accessor, §4.3).
func GetName(obj *Object, name string) (intern.Name, bool) {
	s, ok := stringFromProp(obj.Get(name))
	if !ok {
		return 0, false
	}
	if s == "" {
		return 0, true
	}
	return intern.NewName(s), true
}

// GetStringID reads a field as the interned case-sensitive StringID of
// its stored string ("string-id-as-string" accessor, §4.3).
func GetStringID(obj *Object, name string) (intern.StringID, bool) {
	s, ok := stringFromProp(obj.Get(name))
	if !ok {
		return 0, false
	}
	if s == "" {
		return 0, true
	}
	return intern.NewStringID(s), true
}

// Builders (§4.3). Adding by name on an object that already contains
// that name replaces the prior value, with a debug-level notice
// (mirroring the original's trace-level warning); Go's GC makes the
// explicit free a no-op, so only the notice is reproduced.

func SetInt(obj *Object, name string, v int64) {
	setNamed(obj, &Property{Name: name, Kind: ValueInt, IntVal: v})
}

func SetFloat(obj *Object, name string, v float32) {
	setNamed(obj, &Property{Name: name, Kind: ValueFloat, FloatVal: v})
}

func SetBool(obj *Object, name string, v bool) {
	setNamed(obj, &Property{Name: name, Kind: ValueBool, BoolVal: v})
}

func SetString(obj *Object, name string, v string) {
	setNamed(obj, &Property{Name: name, Kind: ValueString, StrVal: v})
}

func SetVec2(obj *Object, name string, v [2]float32) { SetString(obj, name, formatVecN(v[:])) }
func SetVec3(obj *Object, name string, v [3]float32) { SetString(obj, name, formatVecN(v[:])) }
func SetVec4(obj *Object, name string, v [4]float32) { SetString(obj, name, formatVecN(v[:])) }
func SetMat4(obj *Object, name string, v [16]float32) { SetString(obj, name, formatVecN(v[:])) }

func SetName(obj *Object, name string, v intern.Name) {
	SetString(obj, name, intern.NameString(v))
}

func SetStringID(obj *Object, name string, v intern.StringID) {
	SetString(obj, name, intern.StringIDString(v))
}

func SetObject(obj *Object, name string, child *Object) {
	setNamed(obj, &Property{Name: name, Kind: ValueObject, ObjectVal: child})
}

func setNamed(obj *Object, p *Property) {
	if obj.Kind != ObjectKindObject {
		panic(fmt.Sprintf("bson: Set%s called on an array-kind object", p.Kind))
	}
	if replaced := obj.set(p); replaced {
		logx.Debugf("bson: replacing existing property %q", p.Name)
	}
}

// Array builders append an unnamed element (§4.3).

func NewObjectOf(kind ObjectKind) *Object { return newObject(kind) }

func AppendInt(obj *Object, v int64)    { obj.append(&Property{Kind: ValueInt, IntVal: v}) }
func AppendFloat(obj *Object, v float32) { obj.append(&Property{Kind: ValueFloat, FloatVal: v}) }
func AppendBool(obj *Object, v bool)    { obj.append(&Property{Kind: ValueBool, BoolVal: v}) }
func AppendString(obj *Object, v string) { obj.append(&Property{Kind: ValueString, StrVal: v}) }
func AppendObject(obj *Object, child *Object) {
	obj.append(&Property{Kind: ValueObject, ObjectVal: child})
}
