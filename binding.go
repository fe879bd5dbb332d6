package trakt

import (
	"bytes"
	"encoding"
	"fmt"
	"net/url"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/gorilla/schema"

	"github.com/ansg191/trakt/internal/urltmpl"
)

type role uint8

const (
	rolePath role = iota + 1
	roleQuery
	roleBody
)

var roleTags = [...]string{rolePath: "path", roleQuery: "query", roleBody: "body"}

func (r role) String() string { return roleTags[r] }

var (
	textMarshalerType   = reflect.TypeFor[encoding.TextMarshaler]()
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
	stringType          = reflect.TypeFor[string]()
)

// boundField is a request field bound to a path placeholder, query key or body key.
type boundField struct {
	index     []int
	goName    string
	typ       reflect.Type
	role      role
	name      string
	omitempty bool
	clientID  bool
	text      bool
}

// FieldInfo describes a bound request field.
type FieldInfo struct {
	Field     string // Go field name
	Name      string // wire name
	Omitempty bool
}

// requestPlan is derived once per request type and read-only afterwards.
type requestPlan struct {
	typ     reflect.Type
	path    []boundField
	query   []boundField
	body    []boundField
	shadow  reflect.Type
	encoder *schema.Encoder
	decoder *schema.Decoder
}

// CheckRequest reports whether req's type can be bound to template: the template
// must parse, every field must carry exactly one role tag with a supported type,
// and the placeholders must equal the path field names.
func CheckRequest(template string, req any) error {
	tmpl, err := urltmpl.Parse(template)
	if err != nil {
		return err
	}
	t := reflect.TypeOf(req)
	if t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	_, err = compileRequest(t, tmpl)
	return err
}

func compileRequest(t reflect.Type, tmpl *urltmpl.Template) (*requestPlan, error) {
	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("request type %v is not a struct", t)
	}
	p := &requestPlan{typ: t}
	if err := p.collect(t, nil); err != nil {
		return nil, err
	}

	fields := make(map[string]bool, len(p.path))
	for _, f := range p.path {
		fields[f.name] = true
	}
	placeholders := make(map[string]bool)
	for _, name := range tmpl.Params() {
		placeholders[name] = true
		if !fields[name] {
			return nil, fmt.Errorf("endpoint %q: placeholder {%s} has no path field in %s", tmpl, name, t)
		}
	}
	for _, f := range p.path {
		if !placeholders[f.name] {
			return nil, fmt.Errorf("endpoint %q: path field %s.%s (%q) has no placeholder", tmpl, t, f.goName, f.name)
		}
	}

	if len(p.query) > 0 {
		p.shadow = shadowStruct(p.query)
		p.encoder = schema.NewEncoder()
		p.encoder.SetAliasTag("query")
		p.decoder = schema.NewDecoder()
		p.decoder.SetAliasTag("query")
		p.decoder.IgnoreUnknownKeys(true)
	}
	return p, nil
}

func (p *requestPlan) collect(t reflect.Type, index []int) error {
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		idx := append(slices.Clone(index), i)

		var (
			r   role
			tag string
		)
		for candidate := rolePath; candidate <= roleBody; candidate++ {
			v, ok := sf.Tag.Lookup(candidate.String())
			if !ok {
				continue
			}
			if r != 0 {
				return fmt.Errorf("field %s.%s has both %s and %s tags", t, sf.Name, r, candidate)
			}
			r, tag = candidate, v
		}

		if r == 0 {
			if sf.Anonymous && sf.Type.Kind() == reflect.Struct {
				if err := p.collect(sf.Type, idx); err != nil {
					return err
				}
				continue
			}
			if !sf.IsExported() {
				continue
			}
			return fmt.Errorf("field %s.%s has no path, query or body tag", t, sf.Name)
		}
		if !sf.IsExported() {
			return fmt.Errorf("unexported field %s.%s cannot carry a %s tag", t, sf.Name, r)
		}

		name, opts, _ := strings.Cut(tag, ",")
		if name == "" || name == "-" {
			return fmt.Errorf("field %s.%s has an empty %s name", t, sf.Name, r)
		}
		f := boundField{index: idx, goName: sf.Name, typ: sf.Type, role: r, name: name}
		for opts != "" {
			var opt string
			opt, opts, _ = strings.Cut(opts, ",")
			switch {
			case opt == "omitempty" && r != rolePath:
				f.omitempty = true
			case opt == "clientid" && r == roleBody && sf.Type.Kind() == reflect.String:
				f.clientID = true
			default:
				return fmt.Errorf("field %s.%s: unsupported %s option %q", t, sf.Name, r, opt)
			}
		}

		var err error
		switch r {
		case rolePath:
			f.text, err = checkPathType(sf.Type)
			p.path, err = appendUnique(p.path, f, err)
		case roleQuery:
			f.text, err = checkQueryType(sf.Type)
			if sf.Type.Kind() == reflect.Pointer {
				f.omitempty = true
			}
			p.query, err = appendUnique(p.query, f, err)
		case roleBody:
			err = checkBodyType(sf.Type)
			p.body, err = appendUnique(p.body, f, err)
		}
		if err != nil {
			return fmt.Errorf("field %s.%s: %w", t, sf.Name, err)
		}
	}
	return nil
}

func appendUnique(fields []boundField, f boundField, err error) ([]boundField, error) {
	if err != nil {
		return fields, err
	}
	for _, existing := range fields {
		if existing.name == f.name {
			return fields, fmt.Errorf("%s name %q already bound to %s", f.role, f.name, existing.goName)
		}
	}
	return append(fields, f), nil
}

func isText(t reflect.Type) bool {
	return t.Implements(textMarshalerType) && reflect.PointerTo(t).Implements(textUnmarshalerType)
}

func isScalar(k reflect.Kind) bool {
	switch k {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func checkPathType(t reflect.Type) (bool, error) {
	if isText(t) {
		return true, nil
	}
	if isScalar(t.Kind()) && t.Kind() != reflect.Bool && t.Kind() != reflect.Float32 && t.Kind() != reflect.Float64 {
		return false, nil
	}
	return false, fmt.Errorf("unsupported path type %s", t)
}

func checkQueryType(t reflect.Type) (bool, error) {
	elem := t
	if t.Kind() == reflect.Pointer || (t.Kind() == reflect.Slice && t.Elem().Kind() != reflect.Uint8) {
		elem = t.Elem()
	}
	if isText(elem) {
		return true, nil
	}
	if isScalar(elem.Kind()) {
		return false, nil
	}
	return false, fmt.Errorf("unsupported query type %s", t)
}

func checkBodyType(t reflect.Type) error {
	switch t.Kind() {
	case reflect.Chan, reflect.Func, reflect.UnsafePointer, reflect.Complex64, reflect.Complex128:
		return fmt.Errorf("unsupported body type %s", t)
	}
	return nil
}

// shadowStruct returns the flat struct the schema encoder and decoder operate
// on: field i carries query field i, with text values replaced by strings.
func shadowStruct(query []boundField) reflect.Type {
	fields := make([]reflect.StructField, len(query))
	for i, f := range query {
		tag := f.name
		if f.omitempty {
			tag += ",omitempty"
		}
		fields[i] = reflect.StructField{
			Name: "F" + strconv.Itoa(i),
			Type: shadowType(f),
			Tag:  reflect.StructTag(`query:"` + tag + `"`),
		}
	}
	return reflect.StructOf(fields)
}

func shadowType(f boundField) reflect.Type {
	if !f.text {
		return f.typ
	}
	switch f.typ.Kind() {
	case reflect.Pointer:
		return reflect.PointerTo(stringType)
	case reflect.Slice:
		return reflect.SliceOf(stringType)
	default:
		return stringType
	}
}

func (p *requestPlan) infos(r role) []FieldInfo {
	var src []boundField
	switch r {
	case rolePath:
		src = p.path
	case roleQuery:
		src = p.query
	case roleBody:
		src = p.body
	}
	out := make([]FieldInfo, len(src))
	for i, f := range src {
		out[i] = FieldInfo{Field: f.goName, Name: f.name, Omitempty: f.omitempty}
	}
	return out
}

func marshalText(v reflect.Value) (string, error) {
	b, err := v.Interface().(encoding.TextMarshaler).MarshalText()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func unmarshalText(dst reflect.Value, s string) error {
	return dst.Addr().Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(s))
}

type zeroer interface {
	IsZero() bool
}

func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Slice, reflect.Map, reflect.String, reflect.Array:
		return v.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return v.IsNil()
	}
	if z, ok := v.Interface().(zeroer); ok {
		return z.IsZero()
	}
	return v.IsZero()
}

func (p *requestPlan) pathValues(v reflect.Value) (map[string]string, error) {
	values := make(map[string]string, len(p.path))
	for _, f := range p.path {
		fv := v.FieldByIndex(f.index)
		var s string
		switch {
		case f.text:
			var err error
			if s, err = marshalText(fv); err != nil {
				return nil, &BuildError{Kind: BuildSerialize, Param: f.name, Err: err}
			}
		case fv.CanInt():
			s = strconv.FormatInt(fv.Int(), 10)
		case fv.CanUint():
			s = strconv.FormatUint(fv.Uint(), 10)
		default:
			s = fv.String()
		}
		if s == "" {
			continue
		}
		values[f.name] = s
	}
	return values, nil
}

func (p *requestPlan) encodeQuery(v reflect.Value) ([]urltmpl.Pair, error) {
	if len(p.query) == 0 {
		return nil, nil
	}
	sv := reflect.New(p.shadow).Elem()
	for i, f := range p.query {
		fv := v.FieldByIndex(f.index)
		dst := sv.Field(i)
		if !f.text {
			dst.Set(fv)
			continue
		}
		if err := setShadowText(dst, fv, f.omitempty); err != nil {
			return nil, &BuildError{Kind: BuildSerialize, Param: f.name, Err: err}
		}
	}

	values := make(map[string][]string)
	if err := p.encoder.Encode(sv.Addr().Interface(), values); err != nil {
		return nil, &BuildError{Kind: BuildSerialize, Err: err}
	}
	var pairs []urltmpl.Pair
	for _, f := range p.query {
		for _, s := range values[f.name] {
			pairs = append(pairs, urltmpl.Pair{Key: f.name, Value: s})
		}
	}
	return pairs, nil
}

func setShadowText(dst, fv reflect.Value, omitempty bool) error {
	switch fv.Kind() {
	case reflect.Pointer:
		if fv.IsNil() {
			return nil
		}
		s, err := marshalText(fv.Elem())
		if err != nil {
			return err
		}
		dst.Set(reflect.ValueOf(&s))
	case reflect.Slice:
		out := make([]string, fv.Len())
		for i := range out {
			s, err := marshalText(fv.Index(i))
			if err != nil {
				return err
			}
			out[i] = s
		}
		dst.Set(reflect.ValueOf(out))
	default:
		if omitempty && isEmptyValue(fv) {
			return nil
		}
		s, err := marshalText(fv)
		if err != nil {
			return err
		}
		dst.SetString(s)
	}
	return nil
}

func (p *requestPlan) encodeBody(v reflect.Value, ctx Context) ([]byte, error) {
	if len(p.body) == 0 {
		return nil, nil
	}
	var b bytes.Buffer
	b.WriteByte('{')
	first := true
	for _, f := range p.body {
		fv := v.FieldByIndex(f.index)
		if f.clientID && fv.String() == "" {
			fv = reflect.ValueOf(ctx.ClientID)
		}
		if f.omitempty && isEmptyValue(fv) {
			continue
		}
		raw, err := json.Marshal(fv.Interface())
		if err != nil {
			return nil, &BuildError{Kind: BuildSerialize, Param: f.name, Err: err}
		}
		if !first {
			b.WriteByte(',')
		}
		first = false
		key, _ := json.Marshal(f.name)
		b.Write(key)
		b.WriteByte(':')
		b.Write(raw)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

// decodePath sets the path fields of v from the values matched in a URL path.
func (p *requestPlan) decodePath(v reflect.Value, values map[string]string) error {
	for _, f := range p.path {
		if err := setFromString(v.FieldByIndex(f.index), values[f.name], f.text); err != nil {
			return &ParseError{Kind: ParseDecode, Err: fmt.Errorf("path %s: %w", f.name, err)}
		}
	}
	return nil
}

func setFromString(dst reflect.Value, s string, text bool) error {
	if text {
		return unmarshalText(dst, s)
	}
	switch {
	case dst.CanInt():
		n, err := strconv.ParseInt(s, 10, dst.Type().Bits())
		if err != nil {
			return err
		}
		dst.SetInt(n)
	case dst.CanUint():
		n, err := strconv.ParseUint(s, 10, dst.Type().Bits())
		if err != nil {
			return err
		}
		dst.SetUint(n)
	default:
		dst.SetString(s)
	}
	return nil
}

func (p *requestPlan) decodeQuery(v reflect.Value, query url.Values) error {
	if len(p.query) == 0 {
		return nil
	}
	sv := reflect.New(p.shadow)
	if err := p.decoder.Decode(sv.Interface(), query); err != nil {
		return &ParseError{Kind: ParseDecode, Err: err}
	}
	sv = sv.Elem()
	for i, f := range p.query {
		fv := v.FieldByIndex(f.index)
		src := sv.Field(i)
		if !f.text {
			fv.Set(src)
			continue
		}
		if err := copyShadowText(fv, src); err != nil {
			return &ParseError{Kind: ParseDecode, Err: fmt.Errorf("query %s: %w", f.name, err)}
		}
	}
	return nil
}

func copyShadowText(dst, src reflect.Value) error {
	switch dst.Kind() {
	case reflect.Pointer:
		if src.IsNil() {
			return nil
		}
		elem := reflect.New(dst.Type().Elem())
		if err := unmarshalText(elem.Elem(), src.Elem().String()); err != nil {
			return err
		}
		dst.Set(elem)
	case reflect.Slice:
		if src.Len() == 0 {
			return nil
		}
		out := reflect.MakeSlice(dst.Type(), src.Len(), src.Len())
		for i := 0; i < src.Len(); i++ {
			if err := unmarshalText(out.Index(i), src.Index(i).String()); err != nil {
				return err
			}
		}
		dst.Set(out)
	default:
		if src.String() == "" {
			return nil
		}
		return unmarshalText(dst, src.String())
	}
	return nil
}

func (p *requestPlan) decodeBody(v reflect.Value, body []byte) error {
	if len(p.body) == 0 || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(body, &m); err != nil {
		return &ParseError{Kind: ParseDecode, Err: err}
	}
	for _, f := range p.body {
		raw, ok := m[f.name]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, v.FieldByIndex(f.index).Addr().Interface()); err != nil {
			return &ParseError{Kind: ParseDecode, Err: fmt.Errorf("body %s: %w", f.name, err)}
		}
	}
	return nil
}
