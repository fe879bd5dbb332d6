package trakt

import (
	"errors"
	"net/http"
	"reflect"
	"strings"
	"testing"

	"github.com/ansg191/trakt/internal/required"
)

type testMovie struct {
	Title string `json:"title"`
	Year  int    `json:"year"`
	IDs   IDs    `json:"ids"`
}

type summaryRequest struct {
	ID       ID           `path:"id"`
	Extended ExtendedInfo `query:"extended,omitempty"`
}

type listRequest struct {
	ID ID `path:"id"`
	Pagination
	Extended ExtendedInfo `query:"extended,omitempty"`
	Genres   []string     `query:"genres,omitempty"`
	Years    *int         `query:"years"`
}

type movieRef struct {
	IDs ID `json:"ids"`
}

type checkinRequest struct {
	Movie    *movieRef `body:"movie,omitempty"`
	Message  string    `body:"message,omitempty"`
	Sharing  bool      `body:"sharing"`
	ClientID string    `body:"client_id,clientid"`
}

type checkinResponse struct {
	ID    uint64     `json:"id"`
	Movie *testMovie `json:"movie,omitempty"`
}

type trendingRequest struct {
	Pagination
}

type trendingItem struct {
	Watchers int       `json:"watchers"`
	Movie    testMovie `json:"movie"`
}

type trendingResponse struct {
	Page      Page[trendingItem] `trakt:"pagination"`
	UserCount int                `header:"X-Trending-User-Count" json:"-"`
}

type wrappedResponse struct {
	Movies []testMovie `trakt:"body"`
}

type movieList []testMovie

type emptyRequest struct{}

type emptyResponse struct{}

var (
	testSummary  = NewEndpoint[summaryRequest, testMovie]("/movies/{id}")
	testList     = NewEndpoint[listRequest, movieList]("/shows/{id}")
	testCheckin  = NewEndpoint[checkinRequest, checkinResponse]("/checkin").Method(http.MethodPost).Auth(AuthRequired).Expect(http.StatusCreated)
	testTrending = NewEndpoint[trendingRequest, trendingResponse]("/movies/trending")
	testWrapped  = NewEndpoint[emptyRequest, wrappedResponse]("/movies/popular")
	testDelete   = NewEndpoint[emptyRequest, emptyResponse]("/checkin").Method(http.MethodDelete).Auth(AuthRequired).Expect(http.StatusNoContent)
)

var testCtx = NewContext(DefaultBaseURL, "abc")

func TestBuildMovieSummary(t *testing.T) {
	req, err := testSummary.Build(testCtx, summaryRequest{ID: IMDBID("tt0111161")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Method != http.MethodGet {
		t.Errorf("expected GET, got %s", req.Method)
	}
	if req.URL != "https://api.trakt.tv/movies/tt0111161" {
		t.Errorf("unexpected URL %s", req.URL)
	}
	if got := req.Header.Get("trakt-api-key"); got != "abc" {
		t.Errorf("expected trakt-api-key 'abc', got %q", got)
	}
	if got := req.Header.Get("trakt-api-version"); got != "2" {
		t.Errorf("expected trakt-api-version '2', got %q", got)
	}
	if got := req.Header.Get("Content-Type"); got != "application/json" {
		t.Errorf("expected JSON content type, got %q", got)
	}
	if _, ok := req.Header["Authorization"]; ok {
		t.Error("expected no Authorization header")
	}
	if len(req.Body) != 0 {
		t.Errorf("expected empty body, got %s", req.Body)
	}
}

func TestBuildAuthorizationHeader(t *testing.T) {
	req, err := testSummary.Build(testCtx.WithToken("tok"), summaryRequest{ID: TraktID(1)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := req.Header.Get("Authorization"); got != "Bearer tok" {
		t.Errorf("expected bearer token, got %q", got)
	}
}

func TestBuildQuery(t *testing.T) {
	ctx := NewContext("https://example.com", "abc")
	years := 1994
	tests := []struct {
		name string
		req  listRequest
		want string
	}{
		{
			name: "optional values omitted",
			req:  listRequest{ID: TraktID(1), Pagination: Pagination{Page: 1}},
			want: "https://example.com/shows/1?page=1",
		},
		{
			name: "declaration order and repeated keys",
			req: listRequest{
				ID:         SlugID("breaking-bad"),
				Pagination: Pagination{Page: 2, Limit: 5},
				Extended:   ExtendedImages | ExtendedFull,
				Genres:     []string{"action", "drama"},
				Years:      &years,
			},
			want: "https://example.com/shows/breaking-bad?page=2&limit=5&extended=full%2Cimages&genres=action&genres=drama&years=1994",
		},
		{
			name: "no query",
			req:  listRequest{ID: SlugID("hello?")},
			want: "https://example.com/shows/hello%3F",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := testList.Build(ctx, tt.req)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if req.URL != tt.want {
				t.Errorf("expected %s, got %s", tt.want, req.URL)
			}
		})
	}
}

func TestBuildMissingToken(t *testing.T) {
	_, err := testCheckin.Build(testCtx, checkinRequest{Movie: &movieRef{IDs: TraktID(1)}})
	var be *BuildError
	if !errors.As(err, &be) || be.Kind != BuildMissingToken {
		t.Fatalf("expected BuildMissingToken, got %v", err)
	}
	if !errors.Is(err, ErrMissingToken) {
		t.Error("expected error to wrap ErrMissingToken")
	}
}

func TestBuildMissingPathParam(t *testing.T) {
	_, err := testSummary.Build(testCtx, summaryRequest{})
	var be *BuildError
	if !errors.As(err, &be) {
		t.Fatalf("expected *BuildError, got %v", err)
	}
	if be.Kind != BuildMissingPathParam {
		t.Errorf("expected kind %v, got %v", BuildMissingPathParam, be.Kind)
	}
	if be.Param != "id" {
		t.Errorf("expected param 'id', got %q", be.Param)
	}
}

func TestBuildInvalidContext(t *testing.T) {
	_, err := testSummary.Build(Context{BaseURL: DefaultBaseURL}, summaryRequest{ID: TraktID(1)})
	var be *BuildError
	if !errors.As(err, &be) || be.Kind != BuildInvalid {
		t.Fatalf("expected BuildInvalid, got %v", err)
	}
}

func TestBuildInvalidRequest(t *testing.T) {
	_, err := testTrending.Build(testCtx, trendingRequest{Pagination: Pagination{Page: -1}})
	var be *BuildError
	if !errors.As(err, &be) || be.Kind != BuildInvalid {
		t.Fatalf("expected BuildInvalid, got %v", err)
	}
	if be.Param != "page" {
		t.Errorf("expected param 'page', got %q", be.Param)
	}
}

func TestBuildBody(t *testing.T) {
	ctx := testCtx.WithToken("tok")
	req, err := testCheckin.Build(ctx, checkinRequest{Movie: &movieRef{IDs: TraktID(1)}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Method != http.MethodPost {
		t.Errorf("expected POST, got %s", req.Method)
	}
	if req.URL != "https://api.trakt.tv/checkin" {
		t.Errorf("unexpected URL %s", req.URL)
	}
	want := `{"movie":{"ids":{"trakt":1}},"sharing":false,"client_id":"abc"}`
	if string(req.Body) != want {
		t.Errorf("expected body %s, got %s", want, req.Body)
	}

	req, err = testCheckin.Build(ctx, checkinRequest{Message: "hi", Sharing: true, ClientID: "other"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want = `{"message":"hi","sharing":true,"client_id":"other"}`
	if string(req.Body) != want {
		t.Errorf("expected body %s, got %s", want, req.Body)
	}
}

func TestBuildSerializeError(t *testing.T) {
	type badRequest struct {
		Kind IDKind `query:"kind"`
	}
	e := NewEndpoint[badRequest, emptyResponse]("/search")
	_, err := e.Build(testCtx, badRequest{})
	var be *BuildError
	if !errors.As(err, &be) || be.Kind != BuildSerialize {
		t.Fatalf("expected BuildSerialize, got %v", err)
	}
	if be.Param != "kind" {
		t.Errorf("expected param 'kind', got %q", be.Param)
	}
}

func TestNewEndpointPanicsOnMismatch(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
		want string
	}{
		{
			name: "placeholder without field",
			fn:   func() { NewEndpoint[emptyRequest, emptyResponse]("/movies/{id}") },
			want: "placeholder {id} has no path field",
		},
		{
			name: "field without placeholder",
			fn:   func() { NewEndpoint[summaryRequest, emptyResponse]("/movies") },
			want: `path field trakt.summaryRequest.ID ("id") has no placeholder`,
		},
		{
			name: "malformed template",
			fn:   func() { NewEndpoint[summaryRequest, emptyResponse]("/movies/{id") },
			want: "unterminated",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatal("expected panic")
				}
				if msg, _ := r.(string); !strings.Contains(msg, tt.want) {
					t.Errorf("expected panic containing %q, got %v", tt.want, r)
				}
			}()
			tt.fn()
		})
	}
}

func TestCheckRequest(t *testing.T) {
	type untagged struct {
		ID   ID `path:"id"`
		Name string
	}
	type unexported struct {
		id ID `path:"id"`
	}
	type twoRoles struct {
		ID ID `path:"id" query:"id"`
	}
	type duplicate struct {
		A string `query:"a"`
		B string `query:"a"`
	}
	type badPathType struct {
		ID []string `path:"id"`
	}
	type badOption struct {
		ID ID `path:"id,omitempty"`
	}
	type ok struct {
		ID   ID     `path:"id"`
		Note string `body:"note,omitempty"`
		skip int
	}

	tests := []struct {
		name    string
		req     any
		wantErr string
	}{
		{"untagged field", untagged{}, "has no path, query or body tag"},
		{"unexported role field", unexported{}, "unexported field"},
		{"two roles", twoRoles{}, "has both path and query tags"},
		{"duplicate name", duplicate{}, `query name "a" already bound to A`},
		{"unsupported path type", badPathType{}, "unsupported path type"},
		{"path omitempty", badOption{}, `unsupported path option "omitempty"`},
		{"not a struct", "x", "is not a struct"},
		{"valid", &ok{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckRequest("/items/{id}", tt.req)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name    string
		res     *HTTPResponse
		wantMsg string
	}{
		{"empty body", &HTTPResponse{StatusCode: 404}, ""},
		{"error envelope", &HTTPResponse{StatusCode: 404, Body: []byte(`{"error":"not found"}`)}, "not found"},
		{"html body", &HTTPResponse{StatusCode: 404, Body: []byte(`<html></html>`)}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := testSummary.Parse(tt.res)
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("expected *ParseError, got %v", err)
			}
			if pe.Kind != ParseStatus || pe.StatusCode != 404 {
				t.Errorf("expected status 404, got %v %d", pe.Kind, pe.StatusCode)
			}
			if pe.API == nil || pe.API.Code != CodeNotFound {
				t.Fatalf("expected not_found API error, got %+v", pe.API)
			}
			if pe.API.Message != tt.wantMsg {
				t.Errorf("expected message %q, got %q", tt.wantMsg, pe.API.Message)
			}
		})
	}
}

func TestParseDirect(t *testing.T) {
	res := &HTTPResponse{
		StatusCode: 200,
		Body:       []byte(`{"title":"The Shawshank Redemption","year":1994,"ids":{"trakt":1,"imdb":"tt0111161"},"tagline":"Fear can hold you prisoner."}`),
	}
	got, err := testSummary.Parse(res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := testMovie{Title: "The Shawshank Redemption", Year: 1994, IDs: IDs{Trakt: 1, IMDB: "tt0111161"}}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestParseDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing field", `{"title":"x","ids":{}}`},
		{"type mismatch", `{"title":1,"year":1994,"ids":{}}`},
		{"malformed", `{"title":`},
		{"null document", `null`},
		{"null fields", `{"title":null,"year":null,"ids":null}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := testSummary.Parse(&HTTPResponse{StatusCode: 200, Body: []byte(tt.body)})
			var pe *ParseError
			if !errors.As(err, &pe) || pe.Kind != ParseDecode {
				t.Fatalf("expected ParseDecode, got %v", err)
			}
		})
	}

	_, err := testSummary.Parse(&HTTPResponse{StatusCode: 200, Body: []byte(`{"title":"x","ids":{}}`)})
	var missing *required.MissingError
	if !errors.As(err, &missing) || missing.Path != "year" {
		t.Errorf("expected missing year, got %v", err)
	}
}

func TestParseNullBody(t *testing.T) {
	page := &HTTPResponse{
		StatusCode: 200,
		Header: http.Header{
			"X-Pagination-Page":       {"1"},
			"X-Pagination-Limit":      {"10"},
			"X-Pagination-Page-Count": {"1"},
			"X-Pagination-Item-Count": {"0"},
			"X-Trending-User-Count":   {"0"},
		},
		Body: []byte(`null`),
	}
	_, err := testTrending.Parse(page)
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Kind != ParseDecode {
		t.Errorf("expected ParseDecode for a null page, got %v", err)
	}

	_, err = testWrapped.Parse(&HTTPResponse{StatusCode: 200, Body: []byte(`null`)})
	if !errors.As(err, &pe) || pe.Kind != ParseDecode {
		t.Errorf("expected ParseDecode for a null body, got %v", err)
	}

	_, err = testList.Parse(&HTTPResponse{StatusCode: 200, Body: []byte(`[{"title":"a","year":1,"ids":{}},null]`)})
	var missing *required.MissingError
	if !errors.As(err, &missing) || missing.Path != "[1]" {
		t.Errorf("expected null element [1], got %v", err)
	}
}

func TestParseIntoKeepsDestinationOnError(t *testing.T) {
	res := &HTTPResponse{
		StatusCode: 200,
		Header: http.Header{
			"X-Pagination-Page":       {"2"},
			"X-Pagination-Limit":      {"10"},
			"X-Pagination-Page-Count": {"5"},
			"X-Pagination-Item-Count": {"42"},
			"X-Trending-User-Count":   {"300"},
		},
		Body: []byte(`[{"watchers":21}]`),
	}
	dst := trendingResponse{UserCount: 7}
	if err := testTrending.ParseInto(res, &dst); err == nil {
		t.Fatal("expected an error")
	}
	if dst.UserCount != 7 {
		t.Errorf("expected user count 7 to be kept, got %d", dst.UserCount)
	}
	if dst.Page.Page != 0 || dst.Page.ItemCount != 0 || dst.Page.Items != nil {
		t.Errorf("expected page to be untouched, got %+v", dst.Page)
	}

	res.Body = []byte(`[{"watchers":21,"movie":{"title":"Tron","year":2010,"ids":{}}}]`)
	if err := testTrending.ParseInto(res, &dst); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dst.UserCount != 300 || dst.Page.Page != 2 || len(dst.Page.Items) != 1 {
		t.Errorf("unexpected value %+v", dst)
	}
}

func TestEncodeNilSlice(t *testing.T) {
	res, err := testList.EncodeResponse(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(res.Body) != "[]" {
		t.Errorf("expected [], got %s", res.Body)
	}
	got, err := testList.Parse(res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no movies, got %d", len(got))
	}
}

func TestParseEmpty(t *testing.T) {
	if _, err := testDelete.Parse(&HTTPResponse{StatusCode: 204, Body: []byte("not json")}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	_, err := testDelete.Parse(&HTTPResponse{StatusCode: 200})
	if !IsStatus(err, 200) {
		t.Errorf("expected status error for 200, got %v", err)
	}
}

func TestParsePaginated(t *testing.T) {
	res := &HTTPResponse{
		StatusCode: 200,
		Header: http.Header{
			"X-Pagination-Page":       {"1"},
			"X-Pagination-Limit":      {"10"},
			"X-Pagination-Page-Count": {"5"},
			"X-Pagination-Item-Count": {"42"},
			"X-Trending-User-Count":   {"300"},
		},
		Body: []byte(`[{"watchers":21,"movie":{"title":"Tron","year":2010,"ids":{"slug":"tron"}}}]`),
	}
	got, err := testTrending.Parse(res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.UserCount != 300 {
		t.Errorf("expected user count 300, got %d", got.UserCount)
	}
	if got.Page.PageCount != 5 || got.Page.ItemCount != 42 || len(got.Page.Items) != 1 {
		t.Errorf("unexpected page %+v", got.Page)
	}
	next, ok := got.Page.Next()
	if !ok || next != (Pagination{Page: 2, Limit: 10}) {
		t.Errorf("expected next page 2, got %+v %v", next, ok)
	}

	res.Header.Del("X-Pagination-Limit")
	_, err = testTrending.Parse(res)
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Kind != ParseMissingHeader || pe.Header != HeaderLimit {
		t.Errorf("expected missing %s, got %v", HeaderLimit, err)
	}

	res.Header.Set("X-Pagination-Limit", "ten")
	_, err = testTrending.Parse(res)
	if !errors.As(err, &pe) || pe.Kind != ParseDecode || pe.Header != HeaderLimit {
		t.Errorf("expected decode error for %s, got %v", HeaderLimit, err)
	}
}

func TestPageNextLast(t *testing.T) {
	p := Page[int]{Page: 3, Limit: 10, PageCount: 3}
	if _, ok := p.Next(); ok {
		t.Error("expected no next page on the last page")
	}
}

func TestParseWrapped(t *testing.T) {
	got, err := testWrapped.Parse(&HTTPResponse{StatusCode: 200, Body: []byte(`[{"title":"a","year":1,"ids":{}}]`)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Movies) != 1 || got.Movies[0].Title != "a" {
		t.Errorf("unexpected value %+v", got)
	}
}

func TestRoundTrip(t *testing.T) {
	years := 2010
	ctx := testCtx.WithToken("tok")

	t.Run("list", func(t *testing.T) {
		in := listRequest{
			ID:         IMDBID("tt1104001"),
			Pagination: Pagination{Page: 3, Limit: 20},
			Extended:   ExtendedFull,
			Genres:     []string{"sci-fi"},
			Years:      &years,
		}
		hr, err := testList.Build(ctx, in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !testList.Matches(hr) {
			t.Fatal("expected endpoint to match its own request")
		}
		out, err := testList.DecodeRequest(hr)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(in, out) {
			t.Errorf("expected %+v, got %+v", in, out)
		}

		res := movieList{{Title: "Tron", Year: 2010, IDs: IDs{Slug: "tron"}}}
		encoded, err := testList.EncodeResponse(res)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		parsed, err := testList.Parse(encoded)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(res, parsed) {
			t.Errorf("expected %+v, got %+v", res, parsed)
		}
	})

	t.Run("checkin", func(t *testing.T) {
		in := checkinRequest{Movie: &movieRef{IDs: TraktID(12601)}, Message: "hi", ClientID: "abc"}
		hr, err := testCheckin.Build(ctx, in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out, err := testCheckin.DecodeRequest(hr)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(in, out) {
			t.Errorf("expected %+v, got %+v", in, out)
		}

		res := checkinResponse{ID: 3373536619, Movie: &testMovie{Title: "Tron", Year: 2010}}
		encoded, err := testCheckin.EncodeResponse(res)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if encoded.StatusCode != http.StatusCreated {
			t.Errorf("expected 201, got %d", encoded.StatusCode)
		}
		parsed, err := testCheckin.Parse(encoded)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(res, parsed) {
			t.Errorf("expected %+v, got %+v", res, parsed)
		}
	})

	t.Run("trending", func(t *testing.T) {
		res := trendingResponse{
			Page: Page[trendingItem]{
				Items:     []trendingItem{{Watchers: 3, Movie: testMovie{Title: "Tron", Year: 2010}}},
				Page:      1,
				Limit:     10,
				PageCount: 1,
				ItemCount: 1,
			},
			UserCount: 3,
		}
		encoded, err := testTrending.EncodeResponse(res)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		parsed, err := testTrending.Parse(encoded)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(res, parsed) {
			t.Errorf("expected %+v, got %+v", res, parsed)
		}
	})
}

func TestEndpointInfo(t *testing.T) {
	info := testList.Info()
	if info.Metadata.Endpoint != "/shows/{id}" || info.Metadata.Method != http.MethodGet {
		t.Errorf("unexpected metadata %+v", info.Metadata)
	}
	var names []string
	for _, f := range info.Query {
		names = append(names, f.Name)
	}
	if got := strings.Join(names, ","); got != "page,limit,extended,genres,years" {
		t.Errorf("unexpected query fields %s", got)
	}
	if info.Shape != "direct" {
		t.Errorf("expected direct shape, got %s", info.Shape)
	}
	if got := testTrending.Info().Shape; got != "paginated" {
		t.Errorf("expected paginated shape, got %s", got)
	}
}
