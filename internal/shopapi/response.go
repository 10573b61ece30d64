package shopapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"data": data,
	})
}

func fail(c echo.Context, status int, code, message string, detail interface{}) error {
	body := map[string]interface{}{
		"code":    code,
		"message": message,
	}
	if detail != nil {
		body["detail"] = detail
	}
	return c.JSON(status, map[string]interface{}{"error": body})
}

func paged(c echo.Context, rows interface{}, total, page, perPage int) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"data":    rows,
		"total":   total,
		"page":    page,
		"perPage": perPage,
	})
}

// parsePagination reads page/perPage query params. Defaults to page 1 with
// 20 rows; perPage is capped at 500.
func parsePagination(c echo.Context) (page, perPage int) {
	page = 1
	perPage = 20
	if p, err := strconv.Atoi(c.QueryParam("page")); err == nil && p > 0 {
		page = p
	}
	if ps, err := strconv.Atoi(c.QueryParam("perPage")); err == nil && ps > 0 && ps <= 500 {
		perPage = ps
	}
	return page, perPage
}
