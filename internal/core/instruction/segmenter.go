package instruction

import (
	"regexp"
	"strings"

	"recipe-manager/internal/pkg/common"
)

// 頂層標題記號：# 加同一行的剩餘內容，作為步驟邊界
// 分割時保留邊界文字，使標題附著於後續片段
var headingBoundary = regexp.MustCompile(`#[^\n]+`)

// Segment 將攤平後的指示文件分割為步驟
// splitIntoSteps 為 false 時整份文件視為單一步驟
// 任意字串（含空字串）都有定義結果：全空白產生零個步驟
func Segment(blob string, splitIntoSteps bool) []*common.Step {
	if strings.TrimSpace(blob) == "" {
		return nil
	}

	if !splitIntoSteps {
		return []*common.Step{{Instruction: blob, Order: 1, Ingredients: []common.Ingredient{}}}
	}

	var steps []*common.Step
	pending := ""
	for _, segment := range splitKeepDelimiters(blob) {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		if strings.HasPrefix(segment, "#") {
			candidate := strings.TrimLeft(segment, "#")
			if candidate == "" {
				// 記號之後沒有內容（例如巢狀段落留下的「##」）：
				// 用前一個待用名稱立即產生純標題步驟（沿用既有匯入行為）
				steps = append(steps, &common.Step{
					Name:         strings.TrimSpace(pending),
					Instruction:  segment,
					ShowAsHeader: true,
					Ingredients:  []common.Ingredient{},
				})
			}
			pending = candidate
			continue
		}
		steps = append(steps, &common.Step{
			Name:        strings.TrimSpace(pending),
			Instruction: segment,
			Ingredients: []common.Ingredient{},
		})
		pending = ""
	}

	for i, step := range steps {
		step.Order = i + 1
	}
	return steps
}

// splitKeepDelimiters 依標題邊界分割並保留邊界片段
func splitKeepDelimiters(blob string) []string {
	locs := headingBoundary.FindAllStringIndex(blob, -1)
	if len(locs) == 0 {
		return []string{blob}
	}

	segments := make([]string, 0, len(locs)*2+1)
	last := 0
	for _, loc := range locs {
		segments = append(segments, blob[last:loc[0]], blob[loc[0]:loc[1]])
		last = loc[1]
	}
	segments = append(segments, blob[last:])
	return segments
}
