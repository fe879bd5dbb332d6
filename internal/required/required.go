// Package required reports JSON object keys that a Go type needs but a document lacks.
//
// encoding/json style decoders leave missing fields at their zero value. The API
// bindings treat a missing non-optional field as a decode failure, so every response
// body is checked against a Schema compiled from the target type.
//
// A field is optional when it is a pointer, an interface, or carries omitempty in its
// json tag. A required field, array element or map value sent as null counts as
// missing, since the decoder would leave it at its zero value. Keys match the way
// the decoder matches them: exactly first, then case-insensitively.
// Types implementing json.Unmarshaler or encoding.TextUnmarshaler are opaque.
package required

import (
	"bytes"
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// MissingError names the first missing key, as a dotted path. Null is set when the
// key was present with a null value. An empty Path means the whole document.
type MissingError struct {
	Path string
	Null bool
}

func (e *MissingError) Error() string {
	switch {
	case e.Path == "":
		return "document is null"
	case e.Null:
		return fmt.Sprintf("required field %q is null", e.Path)
	}
	return fmt.Sprintf("missing required field %q", e.Path)
}

type kind uint8

const (
	leaf kind = iota
	object
	array
	mapping
)

type node struct {
	kind   kind
	fields []field
	elem   *node
	// elemNullable is set for arrays and maps of pointers or interfaces.
	elemNullable bool
}

type field struct {
	key      string
	required bool
	node     *node
}

// Schema is immutable once compiled.
type Schema struct {
	root     *node
	nullable bool
}

var (
	jsonUnmarshaler = reflect.TypeOf((*json.Unmarshaler)(nil)).Elem()
	textUnmarshaler = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

// For compiles the schema of t.
func For(t reflect.Type) *Schema {
	return &Schema{root: compile(t, make(map[reflect.Type]*node)), nullable: nullable(t)}
}

// Check returns a *MissingError for the first required key absent from data.
// Malformed JSON is not reported here; the decoder does that.
func (s *Schema) Check(data []byte) error {
	if !s.nullable && isNull(data) {
		return &MissingError{Null: true}
	}
	return s.root.check(data, "")
}

func nullable(t reflect.Type) bool {
	return t.Kind() == reflect.Pointer || t.Kind() == reflect.Interface
}

func isNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}

func opaque(t reflect.Type) bool {
	if t.Implements(jsonUnmarshaler) || t.Implements(textUnmarshaler) {
		return true
	}
	pt := reflect.PointerTo(t)
	return pt.Implements(jsonUnmarshaler) || pt.Implements(textUnmarshaler)
}

func compile(t reflect.Type, seen map[reflect.Type]*node) *node {
	if n, ok := seen[t]; ok {
		return n
	}
	if opaque(t) {
		return &node{kind: leaf}
	}
	switch t.Kind() {
	case reflect.Pointer:
		return compile(t.Elem(), seen)
	case reflect.Slice, reflect.Array:
		if t.Elem().Kind() == reflect.Uint8 {
			return &node{kind: leaf}
		}
		n := &node{kind: array, elemNullable: nullable(t.Elem())}
		seen[t] = n
		n.elem = compile(t.Elem(), seen)
		return n
	case reflect.Map:
		n := &node{kind: mapping, elemNullable: nullable(t.Elem())}
		seen[t] = n
		n.elem = compile(t.Elem(), seen)
		return n
	case reflect.Struct:
		n := &node{kind: object}
		seen[t] = n
		n.fields = structFields(t, seen)
		return n
	default:
		return &node{kind: leaf}
	}
}

func structFields(t reflect.Type, seen map[reflect.Type]*node) []field {
	var fields []field
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		tag := sf.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")

		ft := sf.Type
		if sf.Anonymous && name == "" {
			et := ft
			if et.Kind() == reflect.Pointer {
				et = et.Elem()
			}
			if et.Kind() == reflect.Struct && !opaque(et) {
				fields = append(fields, structFields(et, seen)...)
				continue
			}
		}
		if !sf.IsExported() {
			continue
		}
		if name == "" {
			name = sf.Name
		}
		optional := nullable(ft) ||
			hasOpt(opts, "omitempty") || hasOpt(opts, "omitzero")
		fields = append(fields, field{
			key:      name,
			required: !optional,
			node:     compile(ft, seen),
		})
	}
	return fields
}

func hasOpt(opts, want string) bool {
	for opts != "" {
		var o string
		o, opts, _ = strings.Cut(opts, ",")
		if o == want {
			return true
		}
	}
	return false
}

func (n *node) check(data []byte, path string) error {
	if n == nil || n.kind == leaf {
		return nil
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || isNull(data) {
		return nil
	}

	switch n.kind {
	case object:
		var m map[string]json.RawMessage
		if err := json.Unmarshal(data, &m); err != nil {
			return nil
		}
		for _, f := range n.fields {
			raw, ok := lookup(m, f.key)
			if !ok {
				if f.required {
					return &MissingError{Path: join(path, f.key)}
				}
				continue
			}
			if f.required && isNull(raw) {
				return &MissingError{Path: join(path, f.key), Null: true}
			}
			if err := f.node.check(raw, join(path, f.key)); err != nil {
				return err
			}
		}
	case array:
		var a []json.RawMessage
		if err := json.Unmarshal(data, &a); err != nil {
			return nil
		}
		for i, raw := range a {
			if !n.elemNullable && isNull(raw) {
				return &MissingError{Path: path + "[" + strconv.Itoa(i) + "]", Null: true}
			}
			if err := n.elem.check(raw, path+"["+strconv.Itoa(i)+"]"); err != nil {
				return err
			}
		}
	case mapping:
		var m map[string]json.RawMessage
		if err := json.Unmarshal(data, &m); err != nil {
			return nil
		}
		for k, raw := range m {
			if !n.elemNullable && isNull(raw) {
				return &MissingError{Path: join(path, k), Null: true}
			}
			if err := n.elem.check(raw, join(path, k)); err != nil {
				return err
			}
		}
	}
	return nil
}

// lookup finds key in m, falling back to a case-insensitive match.
func lookup(m map[string]json.RawMessage, key string) (json.RawMessage, bool) {
	if raw, ok := m[key]; ok {
		return raw, true
	}
	for k, raw := range m {
		if strings.EqualFold(k, key) {
			return raw, true
		}
	}
	return nil, false
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
