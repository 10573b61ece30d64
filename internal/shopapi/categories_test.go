package shopapi

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCategories(t *testing.T) {
	c, rec := newTestContext(t, "/api/categories")
	require.NoError(t, listCategories(c))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	data := body["data"].(map[string]interface{})
	assert.Len(t, data["categories"], 3)

	counts := data["counts"].(map[string]interface{})
	assert.EqualValues(t, 3, counts["all"])
	assert.EqualValues(t, 2, counts["games"])
	assert.EqualValues(t, 1, counts["software"])
}

func TestCategoryStats(t *testing.T) {
	c, rec := newTestContext(t, "/api/categories/stats")
	require.NoError(t, categoryStats(c))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	data := body["data"].(map[string]interface{})
	games := data["games"].(map[string]interface{})
	assert.EqualValues(t, 2, games["count"])
	assert.EqualValues(t, 10, games["min"])
	assert.EqualValues(t, 20, games["max"])
}

func TestExportProductsCSV(t *testing.T) {
	c, rec := newTestContext(t, "/api/export/products.csv")
	require.NoError(t, exportProductsCSV(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "products.csv")

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	// Header plus one row per product.
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[0], "slug")
	assert.Contains(t, rec.Body.String(), "Alpha Game")
}

func TestGetStatus(t *testing.T) {
	c, rec := newTestContext(t, "/api/status")
	require.NoError(t, getStatus(c))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	data := body["data"].(map[string]interface{})
	cat := data["catalog"].(map[string]interface{})
	assert.EqualValues(t, 3, cat["products"])
	assert.EqualValues(t, 3, cat["categories"])
}
