package bson

import (
	"io"
	"strconv"
	"strings"
)

const indentUnit = "    "

// Write renders t as formatted BSON text (§4.3). Properties render as
// `name = value\n`; array elements render as `value\n`; nested
// objects/arrays open on the value's line and close on a freshly
// indented line. The traversal runs twice against a shared driver
// function — once to measure the output size, once to fill a
// preallocated strings.Builder — guaranteeing the two passes produce
// identical output because they execute the identical code path.
func Write(t *Tree) (string, error) {
	drive := func(w io.StringWriter) {
		writeProperties(w, t.Root.Properties, t.Root.Kind, 0)
	}

	var counter sizeCounter
	drive(&counter)

	var b strings.Builder
	b.Grow(counter.n)
	drive(&b)

	return b.String(), nil
}

// sizeCounter is an io.StringWriter that only tallies bytes, used for
// the writer's measuring pass.
type sizeCounter struct{ n int }

func (c *sizeCounter) WriteString(s string) (int, error) {
	c.n += len(s)
	return len(s), nil
}

func writeProperties(w io.StringWriter, props []*Property, kind ObjectKind, indent int) {
	for _, p := range props {
		writeIndent(w, indent)
		if kind == ObjectKindObject {
			w.WriteString(p.Name)
			w.WriteString(" = ")
		}
		writeValue(w, p, indent)
		w.WriteString("\n")
	}
}

func writeValue(w io.StringWriter, p *Property, indent int) {
	switch p.Kind {
	case ValueInt:
		w.WriteString(strconv.FormatInt(p.IntVal, 10))
	case ValueFloat:
		w.WriteString(strconv.FormatFloat(float64(p.FloatVal), 'g', -1, 32))
	case ValueString:
		w.WriteString(quoteString(p.StrVal))
	case ValueBool:
		if p.BoolVal {
			w.WriteString("true")
		} else {
			w.WriteString("false")
		}
	case ValueObject:
		child := p.ObjectVal
		if child.Kind == ObjectKindArray {
			w.WriteString("[\n")
		} else {
			w.WriteString("{\n")
		}
		writeProperties(w, child.Properties, child.Kind, indent+1)
		writeIndent(w, indent)
		if child.Kind == ObjectKindArray {
			w.WriteString("]")
		} else {
			w.WriteString("}")
		}
	}
}

func writeIndent(w io.StringWriter, indent int) {
	for i := 0; i < indent; i++ {
		w.WriteString(indentUnit)
	}
}

func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"', '\\':
			b.WriteByte('\\')
			b.WriteByte(s[i])
		default:
			b.WriteByte(s[i])
		}
	}
	b.WriteByte('"')
	return b.String()
}
