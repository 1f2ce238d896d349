package adapters

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"
	"github.com/soffa-projects/go-tabular/client"
	"github.com/soffa-projects/go-tabular/schema"
	"github.com/soffa-projects/go-tabular/tabular"
	"github.com/soffa-projects/go-tabular/util/h"
	"github.com/thoas/go-funk"
)

var validate = validator.New()

// EchoAdapter mounts one GET list route per dataset, speaking the wire
// contract the client serializer produces.
type EchoAdapter struct {
	e   *echo.Echo
	cfg Config
}

func NewEchoAdapter(cfg Config) *EchoAdapter {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestID())
	if cfg.Cors {
		e.Use(middleware.CORS())
	}
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Skipper: func(c echo.Context) bool {
			return strings.Contains(c.Request().URL.Path, ".")
		},
		Format: "method=${method}, uri=${uri}, status=${status}\n",
	}))
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "UP"})
	})

	return &EchoAdapter{e: e, cfg: cfg}
}

// Mount exposes a dataset at GET {basePath}/{name}.
func (a *EchoAdapter) Mount(ds *MemoryDataset) {
	path := strings.TrimSuffix(a.cfg.BasePath, "/") + "/" + ds.Name()
	a.e.GET(path, a.listHandler(ds))
	log.Infof("dataset mounted: GET %s", path)
}

func (a *EchoAdapter) listHandler(ds *MemoryDataset) echo.HandlerFunc {
	return func(c echo.Context) error {
		var q schema.ListQuery
		if err := c.Bind(&q); err != nil {
			return c.JSON(http.StatusBadRequest, schema.ErrorResponse{
				Kind:    "input.binding",
				Message: "invalid_query_params",
				Errors:  err.Error(),
			})
		}
		if err := validate.Struct(q); err != nil {
			return c.JSON(http.StatusBadRequest, schema.ErrorResponse{
				Kind:    "validation",
				Message: "validation.failed",
				Errors:  err.Error(),
			})
		}

		var filters []tabular.ColumnFilter
		if q.Filters != "" {
			if err := h.DeserializeJson(q.Filters, &filters); err != nil {
				return c.JSON(http.StatusBadRequest, schema.ErrorResponse{
					Kind:    "input.filters",
					Message: "invalid_filters_param",
					Errors:  err.Error(),
				})
			}
		}

		params := tabular.PageParams{
			PageIndex: pageIndex(q.Page),
			PageSize:  a.cfg.ClampPageSize(q.PageSize),
			Search:    q.Search,
			Sort:      client.ParseSortParam(q.Sort),
			Filters:   filters,
		}
		if q.SearchColumns != "" {
			params.SearchColumns = funk.UniqString(h.SplitCsv(q.SearchColumns))
		}

		page, err := ds.FetchPage(c.Request().Context(), params)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, schema.ErrorResponse{
				Kind:    "error.technical",
				Message: err.Error(),
			})
		}
		if page.Items == nil {
			page.Items = []map[string]any{}
		}
		return c.JSON(http.StatusOK, page)
	}
}

func (a *EchoAdapter) Handler() http.Handler {
	return a.e
}

func (a *EchoAdapter) Start(addr string) error {
	return a.e.Start(addr)
}

func (a *EchoAdapter) Shutdown() error {
	return a.e.Shutdown(context.Background())
}

// pageIndex maps the wire's one-based page number back onto the model's
// zero-based index.
func pageIndex(page int) int {
	if page <= 1 {
		return 0
	}
	return page - 1
}
