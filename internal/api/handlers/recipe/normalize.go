package recipe

import (
	"net/http"

	"recipe-manager/internal/core/instruction"
	"recipe-manager/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NormalizeRequest 指示正規化請求
type NormalizeRequest struct {
	Text string `json:"text"`
}

// NormalizeResponse 指示正規化響應
type NormalizeResponse struct {
	Normalized string `json:"normalized"`
}

// HandleNormalize 正規化單一指示字串
func HandleNormalize(c *gin.Context) {
	var req NormalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("正規化請求格式無效", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	c.JSON(http.StatusOK, NormalizeResponse{
		Normalized: instruction.Normalize(req.Text),
	})
}
