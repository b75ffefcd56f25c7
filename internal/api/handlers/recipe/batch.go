package recipe

import (
	"net/http"

	"recipe-manager/internal/core/queue"
	"recipe-manager/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BatchImportRequest 批次匯入請求
type BatchImportRequest struct {
	Recipes []ImportRecipeRequest `json:"recipes" binding:"required,min=1"`
}

// BatchImportResult 批次中單筆食譜的結果
type BatchImportResult struct {
	Name   string         `json:"name"`
	Recipe *common.Recipe `json:"recipe,omitempty"`
	Error  string         `json:"error,omitempty"`
}

// BatchImportResponse 批次匯入響應
type BatchImportResponse struct {
	Results   []BatchImportResult `json:"results"`
	Succeeded int                 `json:"succeeded"`
	Failed    int                 `json:"failed"`
}

// HandleImportBatch 批次匯入食譜
// 逐筆排入隊列由工作者並行處理，全部完成後一次回應
func (h *Handler) HandleImportBatch(c *gin.Context) {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = common.GenerateUUID()
		c.Header("X-Request-ID", requestID)
	}

	var req BatchImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("批次請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	common.LogInfo("開始處理批次匯入請求",
		zap.String("request_id", requestID),
		zap.Int("count", len(req.Recipes)),
	)

	// 先全部排入隊列再收結果，讓工作者並行處理
	pending := make([]chan queue.Result, len(req.Recipes))
	results := make([]BatchImportResult, len(req.Recipes))
	for i := range req.Recipes {
		results[i].Name = req.Recipes[i].Name
		ch, err := h.queueManager.Enqueue(c.Request.Context(), toImportInput(&req.Recipes[i]))
		if err != nil {
			results[i].Error = err.Error()
			continue
		}
		pending[i] = ch
	}

	resp := BatchImportResponse{Results: results}
	for i, ch := range pending {
		if ch == nil {
			resp.Failed++
			continue
		}
		select {
		case result := <-ch:
			if result.Error != nil {
				results[i].Error = result.Error.Error()
				resp.Failed++
			} else {
				results[i].Recipe = result.Recipe
				resp.Succeeded++
			}
		case <-c.Request.Context().Done():
			results[i].Error = c.Request.Context().Err().Error()
			resp.Failed++
		}
	}

	c.JSON(http.StatusOK, resp)
}
