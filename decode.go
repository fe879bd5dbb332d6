package trakt

import (
	"bytes"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/ansg191/trakt/internal/required"
)

type responseKind uint8

const (
	responseEmpty responseKind = iota + 1
	responseDirect
	responseBody
	responsePage
)

func (k responseKind) String() string {
	switch k {
	case responseEmpty:
		return "empty"
	case responseDirect:
		return "direct"
	case responseBody:
		return "body"
	case responsePage:
		return "paginated"
	default:
		return "unknown"
	}
}

type headerField struct {
	index    int
	name     string
	optional bool
}

// responsePlan is derived once per response type and read-only afterwards.
type responsePlan struct {
	typ     reflect.Type
	kind    responseKind
	field   int // body or pagination field
	headers []headerField
	schema  *required.Schema
}

var pagerType = reflect.TypeFor[pager]()

func compileResponse(t reflect.Type) (*responsePlan, error) {
	p := &responsePlan{typ: t, field: -1}
	if t.Kind() != reflect.Struct {
		if t.Kind() == reflect.Pointer || t.Kind() == reflect.Interface {
			return nil, fmt.Errorf("response type %s must not be a pointer or interface", t)
		}
		p.kind = responseDirect
		p.schema = required.For(t)
		return p, nil
	}
	if t.NumField() == 0 {
		p.kind = responseEmpty
		return p, nil
	}

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if h, ok := sf.Tag.Lookup("header"); ok {
			name, opts, _ := strings.Cut(h, ",")
			if name == "" {
				return nil, fmt.Errorf("field %s.%s has an empty header name", t, sf.Name)
			}
			if sf.Tag.Get("json") != "-" {
				return nil, fmt.Errorf("header field %s.%s must be tagged json:\"-\"", t, sf.Name)
			}
			switch sf.Type.Kind() {
			case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
				reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
				reflect.String:
			default:
				return nil, fmt.Errorf("header field %s.%s has unsupported type %s", t, sf.Name, sf.Type)
			}
			p.headers = append(p.headers, headerField{index: i, name: http.CanonicalHeaderKey(name), optional: opts == "omitempty"})
			continue
		}

		switch sf.Tag.Get("trakt") {
		case "":
			continue
		case "body", "pagination":
		default:
			return nil, fmt.Errorf("field %s.%s has unknown trakt tag %q", t, sf.Name, sf.Tag.Get("trakt"))
		}
		if p.field >= 0 {
			return nil, fmt.Errorf("response type %s has more than one body or pagination field", t)
		}
		if !sf.IsExported() {
			return nil, fmt.Errorf("unexported field %s.%s cannot be a response body", t, sf.Name)
		}
		p.field = i
		if sf.Tag.Get("trakt") == "pagination" {
			if !reflect.PointerTo(sf.Type).Implements(pagerType) {
				return nil, fmt.Errorf("pagination field %s.%s must be a trakt.Page, got %s", t, sf.Name, sf.Type)
			}
			p.kind = responsePage
			p.schema = required.For(reflect.New(sf.Type).Interface().(pager).itemsType())
		} else {
			p.kind = responseBody
			p.schema = required.For(sf.Type)
		}
	}

	if p.kind == 0 {
		p.kind = responseDirect
		p.schema = required.For(t)
	}
	return p, nil
}

// decode fills the value dst points to from res. The status has already been checked.
// dst is left untouched when decoding fails.
func (p *responsePlan) decode(dst reflect.Value, res *HTTPResponse) error {
	out := reflect.New(p.typ)
	if err := p.decodeInto(out.Elem(), res); err != nil {
		return err
	}
	dst.Elem().Set(out.Elem())
	return nil
}

func (p *responsePlan) decodeInto(v reflect.Value, res *HTTPResponse) error {
	for _, h := range p.headers {
		if err := decodeHeader(v.Field(h.index), res.Header, h); err != nil {
			return err
		}
	}

	switch p.kind {
	case responseEmpty:
		return nil
	case responsePage:
		if err := p.schema.Check(res.Body); err != nil {
			return decodeError(err)
		}
		return v.Field(p.field).Addr().Interface().(pager).decodePage(res.Body, res.Header)
	case responseBody:
		v = v.Field(p.field)
	}

	if err := p.schema.Check(res.Body); err != nil {
		return decodeError(err)
	}
	if err := json.Unmarshal(res.Body, v.Addr().Interface()); err != nil {
		return decodeError(err)
	}
	return nil
}

func decodeHeader(dst reflect.Value, h http.Header, f headerField) error {
	if dst.Kind() == reflect.String {
		raw := h.Get(f.name)
		if raw == "" && !f.optional {
			return &ParseError{Kind: ParseMissingHeader, Header: f.name}
		}
		dst.SetString(raw)
		return nil
	}
	n, err := headerInt(h, f.name, f.optional)
	if err != nil {
		return err
	}
	if dst.CanUint() {
		if n < 0 || dst.OverflowUint(uint64(n)) {
			return &ParseError{Kind: ParseDecode, Header: f.name, Err: fmt.Errorf("value %d out of range", n)}
		}
		dst.SetUint(uint64(n))
		return nil
	}
	if dst.OverflowInt(n) {
		return &ParseError{Kind: ParseDecode, Header: f.name, Err: fmt.Errorf("value %d out of range", n)}
	}
	dst.SetInt(n)
	return nil
}

// encode is the inverse of decode, used by fakes to answer a request.
func (p *responsePlan) encode(v reflect.Value, status int) (*HTTPResponse, error) {
	res := &HTTPResponse{
		StatusCode: status,
		Header:     http.Header{"Content-Type": {"application/json"}},
	}
	for _, h := range p.headers {
		fv := v.Field(h.index)
		if h.optional && fv.IsZero() {
			continue
		}
		var s string
		switch {
		case fv.Kind() == reflect.String:
			s = fv.String()
		case fv.CanUint():
			s = strconv.FormatUint(fv.Uint(), 10)
		default:
			s = strconv.FormatInt(fv.Int(), 10)
		}
		res.Header.Set(h.name, s)
	}

	var (
		body []byte
		err  error
	)
	switch p.kind {
	case responseEmpty:
		return res, nil
	case responsePage:
		page := reflect.New(v.Field(p.field).Type())
		page.Elem().Set(v.Field(p.field))
		body, err = page.Interface().(pager).encodePage(res.Header)
	case responseBody:
		body, err = json.Marshal(nonNil(v.Field(p.field)).Interface())
	default:
		body, err = json.Marshal(nonNil(v).Interface())
	}
	if err != nil {
		return nil, fmt.Errorf("encode %s response: %w", p.typ, err)
	}
	res.Body = body
	return res, nil
}

// nonNil swaps a nil slice or map for an empty one so it encodes as [] or {}, not null.
func nonNil(v reflect.Value) reflect.Value {
	switch {
	case v.Kind() == reflect.Slice && v.IsNil():
		return reflect.MakeSlice(v.Type(), 0, 0)
	case v.Kind() == reflect.Map && v.IsNil():
		return reflect.MakeMap(v.Type())
	}
	return v
}

// statusError builds the ParseStatus error for an unexpected status, reading the
// API's error envelope from the body when there is one.
func statusError(res *HTTPResponse) *ParseError {
	api := NewAPIError(res.StatusCode, "")
	if body := bytes.TrimSpace(res.Body); len(body) > 0 && body[0] == '{' {
		var envelope struct {
			Error       string `json:"error"`
			Description string `json:"error_description"`
		}
		if json.Unmarshal(body, &envelope) == nil {
			api.Message = envelope.Error
			api.Description = envelope.Description
		}
	}
	return &ParseError{Kind: ParseStatus, StatusCode: res.StatusCode, API: api}
}
