package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/soffa-projects/go-tabular/ids"
	"github.com/soffa-projects/go-tabular/tabular"
	"github.com/soffa-projects/go-tabular/util/errors"
	"github.com/soffa-projects/go-tabular/util/h"
)

// DefaultBulkPageSize is the page size FetchAll falls back to when the
// caller gives none.
const DefaultBulkPageSize = 100

// BuildQuery serializes one page request into wire query parameters. The
// model's zero-based PageIndex becomes the wire's one-based page here and
// nowhere else. Empty search, sort, search_columns and filters are omitted.
func BuildQuery(params tabular.PageParams) url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(params.PageIndex+1))
	q.Set("page_size", strconv.Itoa(params.PageSize))
	if params.Search != "" {
		q.Set("search", params.Search)
	}
	if sort := SortParam(params.Sort); sort != "" {
		q.Set("sort", sort)
	}
	if len(params.SearchColumns) > 0 {
		q.Set("search_columns", strings.Join(params.SearchColumns, ","))
	}
	if len(params.Filters) > 0 {
		if encoded, err := h.ToJsonString(params.Filters); err == nil {
			q.Set("filters", encoded)
		}
	}
	return q
}

// SortParam renders the sort list as comma-joined "column:direction" tokens.
// The token grammar is owned here; ParseSortParam is its inverse and the
// server adapter uses it to stay in sync.
func SortParam(sorts []tabular.ColumnSort) string {
	var tokens []string
	for _, s := range sorts {
		if s.ColumnId == "" {
			continue
		}
		dir := s.Direction
		if dir != tabular.SortDesc {
			dir = tabular.SortAsc
		}
		tokens = append(tokens, s.ColumnId+":"+string(dir))
	}
	return strings.Join(tokens, ",")
}

// ParseSortParam decodes a sort parameter; malformed tokens are skipped.
func ParseSortParam(value string) []tabular.ColumnSort {
	var sorts []tabular.ColumnSort
	for _, token := range h.SplitCsv(value) {
		column, dir, _ := strings.Cut(token, ":")
		if column == "" {
			continue
		}
		direction := tabular.SortAsc
		if dir == string(tabular.SortDesc) {
			direction = tabular.SortDesc
		}
		sorts = append(sorts, tabular.ColumnSort{ColumnId: column, Direction: direction})
	}
	return sorts
}

// Client issues page requests against a remote list endpoint. Timeouts and
// retries are the transport's business; pass a configured http.Client.
type Client struct {
	baseUrl string
	http    *http.Client
}

func New(baseUrl string) *Client {
	return NewWithClient(baseUrl, http.DefaultClient)
}

func NewWithClient(baseUrl string, httpClient *http.Client) *Client {
	return &Client{baseUrl: strings.TrimSuffix(baseUrl, "/"), http: httpClient}
}

// FetchPage requests one page and unwraps {items, total}. A missing items or
// total field degrades to an empty page; a response that is not JSON at all,
// or not a 2xx, surfaces as a TransportError.
func FetchPage[T any](ctx context.Context, c *Client, path string, params tabular.PageParams) (tabular.Page[T], error) {
	var page tabular.Page[T]

	target := c.baseUrl + "/" + strings.TrimPrefix(path, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return page, errors.Technical("invalid request", err.Error())
	}
	req.URL.RawQuery = BuildQuery(params).Encode()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", ids.NewId("req"))

	res, err := c.http.Do(req)
	if err != nil {
		return page, errors.Transport("request failed", err.Error())
	}
	defer func() {
		_ = res.Body.Close()
	}()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return page, errors.Transport("unreadable response body", err.Error())
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return page, errors.Transport(
			fmt.Sprintf("unexpected status %d", res.StatusCode),
			map[string]any{"status": res.StatusCode, "body": excerpt(body)},
		)
	}
	if len(body) == 0 {
		return page, nil
	}
	if err := json.Unmarshal(body, &page); err != nil {
		return page, errors.Transport("malformed response payload", err.Error())
	}
	return page, nil
}

// FetchAll drains a paginated endpoint at a fixed page size until the
// accumulated items reach the reported total. The total is authoritative
// even when individual pages overlap or shrink; a server reporting total 0
// costs exactly one request. Only one FetchAll loop should run against a
// given resource at a time.
func FetchAll[T any](ctx context.Context, c *Client, path string, params tabular.PageParams) ([]T, error) {
	size := params.PageSize
	if size <= 0 {
		size = DefaultBulkPageSize
	}
	var acc []T
	for index := 0; ; index++ {
		if err := ctx.Err(); err != nil {
			return acc, errors.Transport("fetch cancelled", err.Error())
		}
		params.PageIndex = index
		params.PageSize = size
		page, err := FetchPage[T](ctx, c, path, params)
		if err != nil {
			return nil, err
		}
		acc = append(acc, page.Items...)
		if len(acc) >= page.Total || len(page.Items) == 0 {
			return acc, nil
		}
	}
}

// Source adapts the client to tabular.DataSource for remote-mode tables.
type Source[T any] struct {
	client *Client
	path   string
}

func NewSource[T any](c *Client, path string) *Source[T] {
	return &Source[T]{client: c, path: path}
}

func (s *Source[T]) FetchPage(ctx context.Context, params tabular.PageParams) (tabular.Page[T], error) {
	return FetchPage[T](ctx, s.client, s.path, params)
}

func excerpt(body []byte) string {
	const max = 256
	if len(body) > max {
		return string(body[:max]) + "..."
	}
	return string(body)
}
