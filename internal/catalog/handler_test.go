package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, cat *Catalog) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(cat).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func TestHandlerOptions(t *testing.T) {
	cat, err := New(AllColumns, []Row{fullRow("A")})
	require.NoError(t, err)

	resp := httptest.NewRecorder()
	newTestRouter(t, cat).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/catalog/options", nil))
	require.Equal(t, http.StatusOK, resp.Code)

	var body OptionsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, cat.Version(), body.Version)
	assert.Equal(t, []string{"combination", "oily"}, body.SkinTypes)
	assert.Equal(t, []string{"Any", "Male", "Female"}, body.Genders)
}

func TestHandlerServices(t *testing.T) {
	cat, err := New(AllColumns, []Row{fullRow("A"), fullRow("B")})
	require.NoError(t, err)

	resp := httptest.NewRecorder()
	newTestRouter(t, cat).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/catalog/services", nil))
	require.Equal(t, http.StatusOK, resp.Code)

	var body ServicesResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, 2, body.Count)
	assert.Equal(t, "B", body.Services[1].Name)
	assert.Equal(t, 1, body.Services[1].Position)
	assert.Equal(t, []string{"acne", "pigmentation"}, body.Services[0].SkinProblems)
}

func TestHandlerEmptyCatalogLists(t *testing.T) {
	cat, err := New(AllColumns, nil)
	require.NoError(t, err)

	resp := httptest.NewRecorder()
	newTestRouter(t, cat).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/catalog/services", nil))
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"version":"`+cat.Version()+`","count":0,"services":[]}`, resp.Body.String())
}
