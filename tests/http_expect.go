package tests

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gavv/httpexpect/v2"
)

// HttpExpect is for http testing
type HttpExpect struct {
	t        *testing.T
	http     *httpexpect.Expect
	baseUrl  string
	Teardown func()
}

func (f *HttpExpect) BaseUrl() string {
	return f.baseUrl
}

type HttpTestResult struct {
	t      *testing.T
	result *httpexpect.Response
}

type HttpRequest struct {
	t        *testing.T
	method   string
	path     string
	internal *httpexpect.Expect
	params   map[string]any
	headers  map[string]string
}

type ValueExpect struct {
	value *httpexpect.Value
}

type ArrayExpect struct {
	value *httpexpect.Array
}

type NumberExpect struct {
	value *httpexpect.Number
}

func HttpTest(t *testing.T, handler http.Handler) HttpExpect {
	server := httptest.NewServer(handler)
	return HttpExpect{
		t:       t,
		http:    httpexpect.Default(t, server.URL),
		baseUrl: server.URL,
		Teardown: func() {
			server.Close()
		},
	}
}

func (f *HttpExpect) GET(path string) *HttpRequest {
	return &HttpRequest{
		t:        f.t,
		internal: f.http,
		method:   http.MethodGet,
		path:     path,
		headers:  map[string]string{},
	}
}

func (r *HttpRequest) Param(name string, value any) *HttpRequest {
	if r.params == nil {
		r.params = map[string]any{}
	}
	r.params[name] = value
	return r
}

func (r *HttpRequest) Header(name string, value string) *HttpRequest {
	r.headers[name] = value
	return r
}

func (r *HttpRequest) Expect() *HttpTestResult {
	req := r.internal.Request(r.method, r.path)
	if r.params != nil {
		req = req.WithQueryObject(r.params)
	}
	for k, v := range r.headers {
		req = req.WithHeader(k, v)
	}
	return &HttpTestResult{
		t:      r.t,
		result: req.Expect(),
	}
}

func (r *HttpTestResult) IsOK() *HttpTestResult {
	r.result.Status(http.StatusOK)
	return r
}

func (r *HttpTestResult) IsBadRequest() *HttpTestResult {
	r.result.Status(http.StatusBadRequest)
	return r
}

func (r *HttpTestResult) IsNotFound() *HttpTestResult {
	r.result.Status(http.StatusNotFound)
	return r
}

func (r *HttpTestResult) Status(status int) *HttpTestResult {
	r.result.Status(status)
	return r
}

func (r *HttpTestResult) JSON() *ValueExpect {
	return &ValueExpect{
		value: r.result.JSON(),
	}
}

func (v *ValueExpect) Path(path string) *ValueExpect {
	return &ValueExpect{
		value: v.value.Path(path),
	}
}

func (v *ValueExpect) Array() *ArrayExpect {
	return &ArrayExpect{
		value: v.value.Array(),
	}
}

func (v *ValueExpect) Number() *NumberExpect {
	return &NumberExpect{
		value: v.value.Number(),
	}
}

func (v *ArrayExpect) Length() *NumberExpect {
	return &NumberExpect{value: v.value.Length()}
}

func (v *ArrayExpect) IsEmpty() *ArrayExpect {
	v.value.IsEmpty()
	return v
}

func (v *NumberExpect) IsEqual(value interface{}) *NumberExpect {
	v.value.IsEqual(value)
	return v
}
