package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/soffa-projects/go-tabular/tabular"
	"github.com/soffa-projects/go-tabular/util/errors"
	"github.com/stretchr/testify/assert"
)

func TestBuildQueryPageIsOneBased(t *testing.T) {
	q := BuildQuery(tabular.PageParams{PageIndex: 0, PageSize: 10})
	assert.Equal(t, "1", q.Get("page"))
	assert.Equal(t, "10", q.Get("page_size"))

	q = BuildQuery(tabular.PageParams{PageIndex: 2, PageSize: 10})
	assert.Equal(t, "3", q.Get("page"))
}

func TestBuildQueryOmitsEmptyParams(t *testing.T) {
	q := BuildQuery(tabular.PageParams{PageIndex: 0, PageSize: 10})
	_, hasSearch := q["search"]
	_, hasSort := q["sort"]
	_, hasColumns := q["search_columns"]
	_, hasFilters := q["filters"]
	assert.False(t, hasSearch)
	assert.False(t, hasSort)
	assert.False(t, hasColumns)
	assert.False(t, hasFilters)
}

func TestBuildQueryFullParams(t *testing.T) {
	q := BuildQuery(tabular.PageParams{
		PageIndex:     1,
		PageSize:      25,
		Search:        "leak",
		SearchColumns: []string{"subject", "description"},
		Sort: []tabular.ColumnSort{
			{ColumnId: "priority", Direction: tabular.SortDesc},
			{ColumnId: "createdAt", Direction: tabular.SortAsc},
		},
		Filters: []tabular.ColumnFilter{
			{ColumnId: "status", Operator: tabular.OpEquals, Value: "open,pending"},
		},
	})
	assert.Equal(t, "leak", q.Get("search"))
	assert.Equal(t, "priority:desc,createdAt:asc", q.Get("sort"))
	assert.Equal(t, "subject,description", q.Get("search_columns"))

	var filters []tabular.ColumnFilter
	assert.NoError(t, json.Unmarshal([]byte(q.Get("filters")), &filters))
	assert.Len(t, filters, 1)
	assert.Equal(t, tabular.OpEquals, filters[0].Operator)
	assert.Equal(t, "open,pending", filters[0].Value)
}

func TestSortParamRoundTrip(t *testing.T) {
	sorts := []tabular.ColumnSort{
		{ColumnId: "status", Direction: tabular.SortAsc},
		{ColumnId: "createdAt", Direction: tabular.SortDesc},
	}
	assert.Equal(t, sorts, ParseSortParam(SortParam(sorts)))
}

func TestParseSortParamSkipsMalformedTokens(t *testing.T) {
	sorts := ParseSortParam("status:desc,,:asc,priority")
	assert.Equal(t, []tabular.ColumnSort{
		{ColumnId: "status", Direction: tabular.SortDesc},
		{ColumnId: "priority", Direction: tabular.SortAsc},
	}, sorts)
}

type ticket struct {
	Id string `json:"id"`
}

func TestFetchPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))
		_, _ = w.Write([]byte(`{"items":[{"id":"t1"},{"id":"t2"}],"total":12}`))
	}))
	defer server.Close()

	page, err := FetchPage[ticket](context.Background(), New(server.URL), "/tickets", tabular.PageParams{PageSize: 2})
	assert.NoError(t, err)
	assert.Equal(t, 12, page.Total)
	assert.Equal(t, []ticket{{Id: "t1"}, {Id: "t2"}}, page.Items)
}

func TestFetchPageDegradesOnMissingFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	page, err := FetchPage[ticket](context.Background(), New(server.URL), "/tickets", tabular.PageParams{PageSize: 10})
	assert.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.Total)
}

func TestFetchPageTransportErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/boom":
			w.WriteHeader(http.StatusInternalServerError)
		case "/garbage":
			_, _ = w.Write([]byte("<html>not json</html>"))
		}
	}))
	defer server.Close()

	_, err := FetchPage[ticket](context.Background(), New(server.URL), "/boom", tabular.PageParams{PageSize: 10})
	assert.Error(t, err)
	var te *errors.TransportError
	assert.ErrorAs(t, err, &te)
	assert.NotNil(t, te.Details)

	_, err = FetchPage[ticket](context.Background(), New(server.URL), "/garbage", tabular.PageParams{PageSize: 10})
	assert.ErrorAs(t, err, &te)
}

func TestFetchAll(t *testing.T) {
	const total = 25
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		size, _ := strconv.Atoi(r.URL.Query().Get("page_size"))
		start := (page - 1) * size
		var items []ticket
		for i := start; i < start+size && i < total; i++ {
			items = append(items, ticket{Id: fmt.Sprintf("t%d", i)})
		}
		_ = json.NewEncoder(w).Encode(tabular.Page[ticket]{Items: items, Total: total})
	}))
	defer server.Close()

	items, err := FetchAll[ticket](context.Background(), New(server.URL), "/tickets", tabular.PageParams{PageSize: 10})
	assert.NoError(t, err)
	assert.Len(t, items, total)
	assert.Equal(t, 3, requests)
	assert.Equal(t, "t0", items[0].Id)
	assert.Equal(t, "t24", items[24].Id)
}

func TestFetchAllZeroTotalStopsAfterOneRequest(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		_, _ = w.Write([]byte(`{"items":[],"total":0}`))
	}))
	defer server.Close()

	items, err := FetchAll[ticket](context.Background(), New(server.URL), "/tickets", tabular.PageParams{PageSize: 10})
	assert.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, 1, requests)
}

func TestFetchAllTerminatesOnLyingTotal(t *testing.T) {
	// server reports more rows than it ever returns; the empty page breaks
	// the loop
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if requests == 1 {
			_, _ = w.Write([]byte(`{"items":[{"id":"t1"}],"total":100}`))
			return
		}
		_, _ = w.Write([]byte(`{"items":[],"total":100}`))
	}))
	defer server.Close()

	items, err := FetchAll[ticket](context.Background(), New(server.URL), "/tickets", tabular.PageParams{PageSize: 10})
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 2, requests)
}

func TestFetchAllHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := FetchAll[ticket](ctx, New("http://127.0.0.1:0"), "/tickets", tabular.PageParams{PageSize: 10})
	assert.Error(t, err)
}

func TestRemoteSourceImplementsDataSource(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items":[{"id":"t1"}],"total":1}`))
	}))
	defer server.Close()

	var source tabular.DataSource[ticket] = NewSource[ticket](New(server.URL), "/tickets")
	page, err := source.FetchPage(context.Background(), tabular.PageParams{PageSize: 10})
	assert.NoError(t, err)
	assert.Equal(t, 1, page.Total)
}
