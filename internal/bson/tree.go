package bson

// ObjectKind distinguishes object-kind objects (named properties) from
// array-kind objects (unnamed, order-significant elements), per §3.
type ObjectKind int

const (
	ObjectKindObject ObjectKind = iota
	ObjectKindArray
)

// ValueKind is the tag of a property's union value.
type ValueKind int

const (
	ValueInt ValueKind = iota
	ValueFloat
	ValueString
	ValueBool
	ValueObject
)

func (k ValueKind) String() string {
	switch k {
	case ValueInt:
		return "int"
	case ValueFloat:
		return "float"
	case ValueString:
		return "string"
	case ValueBool:
		return "boolean"
	case ValueObject:
		return "object"
	default:
		return "unknown"
	}
}

// Property carries a name (empty for array elements), a type tag, and
// a union value (§3). Only the field matching Kind is meaningful.
type Property struct {
	Name      string
	Kind      ValueKind
	IntVal    int64
	FloatVal  float32
	StrVal    string
	BoolVal   bool
	ObjectVal *Object
}

// Object is either object-kind (properties named) or array-kind
// (properties unnamed, order significant). It owns its properties and
// any nested objects transitively (§3's ownership note).
type Object struct {
	Kind       ObjectKind
	Properties []*Property
}

// Tree is a parsed BSON document; Root is always an object-kind object.
type Tree struct {
	Root *Object
}

func newObject(kind ObjectKind) *Object {
	return &Object{Kind: kind, Properties: make([]*Property, 0, 4)}
}

// Get returns the named property of an object-kind object, or nil if
// absent. Always nil for an array-kind object.
func (o *Object) Get(name string) *Property {
	if o == nil || o.Kind != ObjectKindObject {
		return nil
	}
	for _, p := range o.Properties {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// At returns the i-th element of an array-kind object, or nil if out
// of range. Always nil for an object-kind object.
func (o *Object) At(i int) *Property {
	if o == nil || o.Kind != ObjectKindArray {
		return nil
	}
	if i < 0 || i >= len(o.Properties) {
		return nil
	}
	return o.Properties[i]
}

// Len returns the number of elements/properties directly on o.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.Properties)
}

// set replaces an existing same-named property on an object-kind
// object (builders §4.3's "replaces the prior value" rule), or appends
// a new one. Returns true if a prior value was replaced.
func (o *Object) set(p *Property) bool {
	if o.Kind == ObjectKindObject {
		for i, existing := range o.Properties {
			if existing.Name == p.Name {
				o.Properties[i] = p
				return true
			}
		}
	}
	o.Properties = append(o.Properties, p)
	return false
}

// append adds an unnamed property to an array-kind object.
func (o *Object) append(p *Property) {
	o.Properties = append(o.Properties, p)
}
