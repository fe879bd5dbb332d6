package trakt

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"slices"

	"github.com/ansg191/trakt/internal/urltmpl"
)

// Endpoint binds a request type to a URL template and a response type.
// Endpoints are declared as package-level variables; NewEndpoint panics when
// Req's path fields and the template's placeholders differ, so a mismatch is
// caught when the program starts.
//
//	var Summary = trakt.NewEndpoint[SummaryRequest, SummaryResponse]("/movies/{id}")
//
// An Endpoint must not be modified after initialisation; Build and Parse are
// safe for concurrent use.
type Endpoint[Req any, Res any] struct {
	name   string
	meta   Metadata
	tmpl   *urltmpl.Template
	expect []int
	req    *requestPlan
	res    *responsePlan
}

// NewEndpoint derives the binding for Req and Res. The default method is GET
// and the default expected status is 200.
func NewEndpoint[Req any, Res any](template string) *Endpoint[Req, Res] {
	tmpl, err := urltmpl.Parse(template)
	if err != nil {
		panic("trakt: " + err.Error())
	}
	reqPlan, err := compileRequest(reflect.TypeFor[Req](), tmpl)
	if err != nil {
		panic("trakt: " + err.Error())
	}
	resPlan, err := compileResponse(reflect.TypeFor[Res]())
	if err != nil {
		panic(fmt.Sprintf("trakt: endpoint %q: %v", template, err))
	}
	return &Endpoint[Req, Res]{
		meta: Metadata{
			Endpoint: template,
			Method:   http.MethodGet,
		},
		tmpl:   tmpl,
		expect: []int{http.StatusOK},
		req:    reqPlan,
		res:    resPlan,
	}
}

// Method sets the HTTP method (e.g., "POST", "DELETE").
func (e *Endpoint[Req, Res]) Method(m string) *Endpoint[Req, Res] {
	e.meta.Method = m
	return e
}

// Auth sets the authorization requirement.
func (e *Endpoint[Req, Res]) Auth(a AuthRequirement) *Endpoint[Req, Res] {
	e.meta.Auth = a
	return e
}

// Expect replaces the set of status codes Parse accepts. The first code is the
// one EncodeResponse answers with.
func (e *Endpoint[Req, Res]) Expect(codes ...int) *Endpoint[Req, Res] {
	if len(codes) == 0 {
		panic("trakt: Expect needs at least one status code")
	}
	e.expect = slices.Clone(codes)
	return e
}

// Describe sets a human-readable name, used in listings and logs.
func (e *Endpoint[Req, Res]) Describe(name string) *Endpoint[Req, Res] {
	e.name = name
	return e
}

func (e *Endpoint[Req, Res]) Metadata() Metadata { return e.meta }

// EndpointInfo is the type-erased description of an endpoint.
type EndpointInfo struct {
	Name     string
	Metadata Metadata
	Expect   []int
	Request  reflect.Type
	Response reflect.Type
	Path     []FieldInfo
	Query    []FieldInfo
	Body     []FieldInfo
	Shape    string
}

func (e *Endpoint[Req, Res]) Info() EndpointInfo {
	return EndpointInfo{
		Name:     e.name,
		Metadata: e.meta,
		Expect:   slices.Clone(e.expect),
		Request:  e.req.typ,
		Response: e.res.typ,
		Path:     e.req.infos(rolePath),
		Query:    e.req.infos(roleQuery),
		Body:     e.req.infos(roleBody),
		Shape:    e.res.kind.String(),
	}
}

// Build converts req into an HTTP request addressed relative to ctx.BaseURL.
func (e *Endpoint[Req, Res]) Build(ctx Context, req Req) (*HTTPRequest, error) {
	if err := ctx.Validate(); err != nil {
		return nil, err
	}
	if e.meta.Auth == AuthRequired && ctx.OAuthToken == "" {
		return nil, &BuildError{Kind: BuildMissingToken, Err: ErrMissingToken}
	}
	if err := validate.Struct(req); err != nil {
		return nil, invalidError(err)
	}

	v := reflect.ValueOf(req)
	path, err := e.req.pathValues(v)
	if err != nil {
		return nil, err
	}
	query, err := e.req.encodeQuery(v)
	if err != nil {
		return nil, err
	}
	u, err := urltmpl.Build(ctx.BaseURL, e.tmpl, path, query)
	if err != nil {
		var param string
		if errors.Is(err, urltmpl.ErrMissingParam) {
			for _, name := range e.tmpl.Params() {
				if _, ok := path[name]; !ok {
					param = name
					break
				}
			}
		}
		return nil, &BuildError{Kind: BuildMissingPathParam, Param: param, Err: err}
	}
	body, err := e.req.encodeBody(v, ctx)
	if err != nil {
		return nil, err
	}

	header := http.Header{}
	header.Set("Content-Type", "application/json")
	header.Set("trakt-api-version", APIVersion)
	header.Set("trakt-api-key", ctx.ClientID)
	if ctx.OAuthToken != "" {
		header.Set("Authorization", "Bearer "+ctx.OAuthToken)
	}
	return &HTTPRequest{
		Method: e.meta.Method,
		URL:    u,
		Header: header,
		Body:   body,
	}, nil
}

// Parse converts res into a Res.
func (e *Endpoint[Req, Res]) Parse(res *HTTPResponse) (Res, error) {
	var out Res
	if err := e.ParseInto(res, &out); err != nil {
		var zero Res
		return zero, err
	}
	return out, nil
}

// ParseInto is Parse for types implementing Response:
//
//	func (r *SummaryResponse) Parse(res *trakt.HTTPResponse) error {
//		return Summary.ParseInto(res, r)
//	}
func (e *Endpoint[Req, Res]) ParseInto(res *HTTPResponse, dst *Res) error {
	if !slices.Contains(e.expect, res.StatusCode) {
		return statusError(res)
	}
	return e.res.decode(reflect.ValueOf(dst), res)
}

// Matches reports whether hr has this endpoint's method and a path matching its template.
func (e *Endpoint[Req, Res]) Matches(hr *HTTPRequest) bool {
	if hr.Method != e.meta.Method {
		return false
	}
	u, err := url.Parse(hr.URL)
	if err != nil {
		return false
	}
	_, ok := e.tmpl.Match(u.EscapedPath())
	return ok
}

// DecodeRequest is the inverse of Build: it recovers the request value from an
// HTTP request produced for this endpoint. Fakes use it to serve typed handlers.
func (e *Endpoint[Req, Res]) DecodeRequest(hr *HTTPRequest) (Req, error) {
	var zero Req
	u, err := url.Parse(hr.URL)
	if err != nil {
		return zero, &ParseError{Kind: ParseDecode, Err: err}
	}
	values, ok := e.tmpl.Match(u.EscapedPath())
	if !ok {
		return zero, &ParseError{Kind: ParseDecode, Err: fmt.Errorf("path %q does not match %q", u.EscapedPath(), e.tmpl)}
	}

	v := reflect.New(e.req.typ).Elem()
	if err := e.req.decodePath(v, values); err != nil {
		return zero, err
	}
	if err := e.req.decodeQuery(v, u.Query()); err != nil {
		return zero, err
	}
	if err := e.req.decodeBody(v, hr.Body); err != nil {
		return zero, err
	}
	return v.Interface().(Req), nil
}

// EncodeResponse is the inverse of Parse. The status is the first expected code.
func (e *Endpoint[Req, Res]) EncodeResponse(res Res) (*HTTPResponse, error) {
	return e.res.encode(reflect.ValueOf(res), e.expect[0])
}
