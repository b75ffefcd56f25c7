package recipe

import (
	"encoding/json"
	"errors"
	"net/http"

	"recipe-manager/internal/core/instruction"
	"recipe-manager/internal/core/queue"
	recipeService "recipe-manager/internal/core/recipe"
	"recipe-manager/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ImportRecipeRequest 瀏覽器書籤工具送來的 schema.org 食譜
// 欄位名稱沿用 JSON-LD，數值欄位保留原始 JSON（來源網站數字與字串混用）
type ImportRecipeRequest struct {
	Name                string                 `json:"name" binding:"required"` // 食譜名稱
	Description         string                 `json:"description,omitempty"`
	RecipeInstructions  instruction.Payload    `json:"recipeInstructions"` // 字串 / 清單 / HowToStep / HowToSection
	RecipeIngredient    []IngredientRequest    `json:"recipeIngredient,omitempty"`
	RecipeYield         json.RawMessage        `json:"recipeYield,omitempty"` // 「4」或「4 Portionen」
	PrepTime            string                 `json:"prepTime,omitempty"`    // ISO-8601 時長
	CookTime            string                 `json:"cookTime,omitempty"`
	Nutrition           map[string]interface{} `json:"nutrition,omitempty"`
	NutritionSource     string                 `json:"nutrition_source,omitempty"`
	NutritionPerServing bool                   `json:"nutrition_per_serving,omitempty"`
	Keywords            []string               `json:"keywords,omitempty"`
	ImportAsSteps       bool                   `json:"import_as_steps"` // 是否依標題分割成多個步驟
}

// IngredientRequest 單一食材（已由上游解析為結構化欄位）
type IngredientRequest struct {
	Ingredient NamedText       `json:"ingredient"`
	Unit       *NamedText      `json:"unit,omitempty"`
	Amount     json.RawMessage `json:"amount,omitempty"`
	Note       string          `json:"note,omitempty"`
}

// NamedText 帶 text 欄位的包裝物件
type NamedText struct {
	Text string `json:"text"`
}

// Handler 食譜匯入處理程序
type Handler struct {
	importService *recipeService.ImportService
	queueManager  *queue.Manager
}

// NewHandler 創建新的食譜匯入處理程序
func NewHandler(importService *recipeService.ImportService, queueManager *queue.Manager) *Handler {
	return &Handler{
		importService: importService,
		queueManager:  queueManager,
	}
}

// HandleImport 匯入單筆食譜
func (h *Handler) HandleImport(c *gin.Context) {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = common.GenerateUUID()
		c.Header("X-Request-ID", requestID)
	}

	common.LogInfo("開始處理食譜匯入請求",
		zap.String("request_id", requestID),
		zap.String("client_ip", c.ClientIP()),
	)

	var req ImportRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if errors.Is(err, instruction.ErrMalformedPayload) {
			common.LogError("指示內容格式無效",
				zap.Error(err),
				zap.String("request_id", requestID),
			)
			c.JSON(http.StatusBadRequest, common.ErrorResponse{
				Code:    common.ErrCodeInvalidPayload,
				Message: common.ErrInvalidInstructionPayload.Message,
			})
			return
		}
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.importService.Import(c.Request.Context(), toImportInput(&req))
	if err != nil {
		writeImportError(c, requestID, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// toImportInput 將 HTTP 請求轉為匯入服務輸入
func toImportInput(req *ImportRecipeRequest) *recipeService.ImportInput {
	ingredients := make([]recipeService.IngredientInput, 0, len(req.RecipeIngredient))
	for _, ing := range req.RecipeIngredient {
		unit := ""
		if ing.Unit != nil {
			unit = ing.Unit.Text
		}
		ingredients = append(ingredients, recipeService.IngredientInput{
			Food:   ing.Ingredient.Text,
			Unit:   unit,
			Amount: ing.Amount,
			Note:   ing.Note,
		})
	}

	return &recipeService.ImportInput{
		Name:                req.Name,
		Description:         req.Description,
		Instructions:        req.RecipeInstructions,
		Ingredients:         ingredients,
		Yield:               common.RawToString(req.RecipeYield),
		PrepTime:            req.PrepTime,
		CookTime:            req.CookTime,
		Nutrition:           req.Nutrition,
		NutritionSource:     req.NutritionSource,
		NutritionPerServing: req.NutritionPerServing,
		Keywords:            req.Keywords,
		ImportAsSteps:       req.ImportAsSteps,
	}
}

// writeImportError 依錯誤類型回應對應狀態碼
func writeImportError(c *gin.Context, requestID string, err error) {
	common.LogError("食譜匯入失敗",
		zap.Error(err),
		zap.String("request_id", requestID),
	)

	var customErr *common.CustomError
	if errors.As(err, &customErr) {
		c.JSON(customErr.Status, common.ErrorResponse{
			Code:    customErr.Code,
			Message: customErr.Message,
		})
		return
	}
	if errors.Is(err, instruction.ErrMalformedPayload) {
		c.JSON(http.StatusBadRequest, common.ErrorResponse{
			Code:    common.ErrCodeInvalidPayload,
			Message: common.ErrInvalidInstructionPayload.Message,
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Recipe import failed"})
}
