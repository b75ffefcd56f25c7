package recipe

import (
	"fmt"

	"recipe-manager/internal/pkg/common"
)

// ParseNutrition 解析 schema.org 營養資訊
// 同時接受 schema.org 拼法（carbohydrateContent）與簡寫（carbohydrates）
// perServing 為真時以份量乘回整份食譜的總量
func ParseNutrition(raw map[string]interface{}, source string, servings int, perServing bool) *common.Nutrition {
	if len(raw) == 0 {
		return nil
	}

	n := &common.Nutrition{
		Calories:      nutritionField(raw, "calories"),
		Carbohydrates: nutritionField(raw, "carbohydrateContent", "carbohydrates"),
		Fats:          nutritionField(raw, "fatContent", "fats"),
		Proteins:      nutritionField(raw, "proteinContent", "proteins"),
		Source:        source,
	}

	if n.Calories == 0 && n.Carbohydrates == 0 && n.Fats == 0 && n.Proteins == 0 {
		return nil
	}

	if perServing && servings > 1 {
		factor := float64(servings)
		n.Calories *= factor
		n.Carbohydrates *= factor
		n.Fats *= factor
		n.Proteins *= factor
	}

	return n
}

// nutritionField 依序嘗試多個鍵名，值可能是數字或帶單位的字串（「240 kcal」）
func nutritionField(raw map[string]interface{}, keys ...string) float64 {
	for _, key := range keys {
		value, ok := raw[key]
		if !ok || value == nil {
			continue
		}
		switch v := value.(type) {
		case float64:
			return v
		case string:
			return ExtractDecimal(v)
		default:
			// json.Number 等其餘數值型別
			return ExtractDecimal(fmt.Sprintf("%v", v))
		}
	}
	return 0
}
