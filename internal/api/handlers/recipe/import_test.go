package recipe

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	recipeService "recipe-manager/internal/core/recipe"
	"recipe-manager/internal/infrastructure/config"
	"recipe-manager/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Import: config.ImportConfig{
			StepLabel:          "Step %d",
			SectionLabel:       "Instructions",
			MaxSectionDepth:    10,
			SplitNumberedLists: true,
		},
	}
	handler := NewHandler(recipeService.NewImportService(cfg, nil), nil)

	router := gin.New()
	router.POST("/api/v1/recipe/import", handler.HandleImport)
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestHandleImportSuccess(t *testing.T) {
	router := testRouter()

	body := `{
		"name": "Apfelkuchen",
		"recipeInstructions": [
			{"@type": "HowToStep", "text": "Mix the flour with sugar"},
			{"@type": "HowToStep", "text": "Bake until golden"}
		],
		"recipeIngredient": [
			{"ingredient": {"text": "flour"}, "unit": {"text": "g"}, "amount": 500}
		],
		"recipeYield": "4 Portionen",
		"prepTime": "PT20M",
		"import_as_steps": true
	}`

	w := postJSON(router, "/api/v1/recipe/import", body)
	require.Equal(t, http.StatusOK, w.Code)

	var result common.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "Apfelkuchen", result.Name)
	assert.Equal(t, 4, result.Servings)
	assert.Equal(t, 20, result.WorkingTime)
	require.Len(t, result.Steps, 2)
	assert.Len(t, result.Steps[0].Ingredients, 1)
}

func TestHandleImportMalformedInstructions(t *testing.T) {
	router := testRouter()

	body := `{
		"name": "Kaputt",
		"recipeInstructions": [{"@type": "HowToVideo", "url": "x"}]
	}`

	w := postJSON(router, "/api/v1/recipe/import", body)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp common.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, common.ErrCodeInvalidPayload, resp.Code)
}

func TestHandleImportMissingName(t *testing.T) {
	router := testRouter()

	w := postJSON(router, "/api/v1/recipe/import", `{"recipeInstructions": "Mix"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleImportSetsRequestID(t *testing.T) {
	router := testRouter()

	w := postJSON(router, "/api/v1/recipe/import",
		`{"name": "Suppe", "recipeInstructions": "Kochen"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
