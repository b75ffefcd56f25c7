package recipe

import (
	"net/http"

	"recipe-manager/internal/core/instruction"
	"recipe-manager/internal/pkg/common"

	"go.uber.org/zap"
)

// SegmentRequest 步驟分割請求
type SegmentRequest struct {
	Text           string `json:"text"`
	SplitIntoSteps bool   `json:"split_into_steps"`
}

// SegmentResponse 步驟分割響應
type SegmentResponse struct {
	Steps []*common.Step `json:"steps"`
}

// HandleSegment 將指示文件分割為步驟
// 提供給既有匯入器重跑分割用，走標準 http.HandlerFunc 介面
func HandleSegment(w http.ResponseWriter, r *http.Request) {
	var req SegmentRequest
	if err := common.DecodeJSON(r.Body, &req); err != nil {
		common.LogError("分割請求格式無效", zap.Error(err))
		common.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	steps := instruction.Segment(req.Text, req.SplitIntoSteps)
	if steps == nil {
		steps = []*common.Step{}
	}

	common.LogInfo("步驟分割完成",
		zap.Int("steps", len(steps)),
		zap.Bool("split", req.SplitIntoSteps),
	)
	common.WriteJSONResponse(w, http.StatusOK, SegmentResponse{Steps: steps})
}
