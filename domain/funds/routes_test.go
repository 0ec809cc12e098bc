package funds

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// findRoute resolves a request path against the registered routes and
// returns the matched route pattern.
func findRoute(e *echo.Echo, method, path string) string {
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	e.Router().Find(method, path, c)
	return c.Path()
}

// Literal routes must be matched ahead of the :fund_id parameter route.
func TestRouteOrdering_LiteralBeforeParam(t *testing.T) {
	e := echo.New()
	RegisterRoutes(e, NewHandler(nil))

	assert.Equal(t, "/api/funds/search", findRoute(e, http.MethodGet, "/api/funds/search"))
	assert.Equal(t, "/api/funds/code/:fund_code", findRoute(e, http.MethodGet, "/api/funds/code/FUND001"))
	assert.Equal(t, "/api/funds/:fund_id", findRoute(e, http.MethodGet, "/api/funds/F000001"))
	assert.Equal(t, "/api/funds/:fund_id/hierarchy/children", findRoute(e, http.MethodGet, "/api/funds/F000001/hierarchy/children"))
	assert.Equal(t, "/api/funds/:fund_id/hierarchy/parents", findRoute(e, http.MethodGet, "/api/funds/F000001/hierarchy/parents"))
}

func TestPageParams(t *testing.T) {
	e := echo.New()

	tests := []struct {
		name         string
		query        string
		wantPage     int
		wantPageSize int
	}{
		{"absent", "", 0, 0},
		{"both set", "page=3&page_size=25", 3, 25},
		{"garbage ignored", "page=abc&page_size=xyz", 0, 0},
		{"negative passed through for clamping", "page=-1&page_size=-5", -1, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/funds?"+tt.query, nil)
			c := e.NewContext(req, httptest.NewRecorder())

			page, pageSize := pageParams(c)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantPageSize, pageSize)
		})
	}
}

func TestDepthParam(t *testing.T) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/api/funds/F000001/hierarchy/children?depth=4", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	assert.Equal(t, 4, depthParam(c))

	req = httptest.NewRequest(http.MethodGet, "/api/funds/F000001/hierarchy/children", nil)
	c = e.NewContext(req, httptest.NewRecorder())
	assert.Equal(t, 0, depthParam(c))
}
