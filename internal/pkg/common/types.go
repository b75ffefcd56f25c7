package common

import (
	"fmt"
	"strings"
)

// Ingredient 食材（由上游解析服務產生，匯入時只讀 Food 並寫入步驟關聯）
type Ingredient struct {
	Food     string  `json:"food"`
	Unit     string  `json:"unit,omitempty"`
	Amount   float64 `json:"amount,omitempty"`
	NoAmount bool    `json:"no_amount,omitempty"`
	Note     string  `json:"note,omitempty"`
}

// Step 食譜步驟（分段器建立後不再修改，僅允許追加食材關聯）
type Step struct {
	Name         string       `json:"name,omitempty"`
	Instruction  string       `json:"instruction"`
	ShowAsHeader bool         `json:"show_as_header"`
	Order        int          `json:"order"` // 1 起算的顯示順序
	Ingredients  []Ingredient `json:"ingredients"`
}

// Keyword 關鍵字
type Keyword struct {
	Text string `json:"text"`
}

// Nutrition 營養資訊（每份或總量，視匯入旗標而定）
type Nutrition struct {
	Calories      float64 `json:"calories"`
	Carbohydrates float64 `json:"carbohydrates"`
	Fats          float64 `json:"fats"`
	Proteins      float64 `json:"proteins"`
	Source        string  `json:"source,omitempty"`
}

// Recipe 匯入結果
// 注意：Steps 的 Order 即持久層的顯示順序，不可重排
type Recipe struct {
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Servings    int        `json:"servings"`
	WorkingTime int        `json:"working_time"` // 分鐘
	WaitingTime int        `json:"waiting_time"` // 分鐘
	Keywords    []Keyword  `json:"keywords,omitempty"`
	Steps       []*Step    `json:"steps"`
	Nutrition   *Nutrition `json:"nutrition,omitempty"`
}

// FormatIngredients 格式化食材列表（除錯日誌用）
func FormatIngredients(ingredients []Ingredient) string {
	var sb strings.Builder
	for _, ing := range ingredients {
		sb.WriteString(fmt.Sprintf("- %s: %g%s, %s\n",
			ing.Food, ing.Amount, ing.Unit, ing.Note))
	}
	return sb.String()
}

// FormatSteps 格式化步驟列表（除錯日誌用）
func FormatSteps(steps []*Step) string {
	var sb strings.Builder
	for _, step := range steps {
		name := step.Name
		if name == "" {
			name = "(unnamed)"
		}
		sb.WriteString(fmt.Sprintf("%d. %s [%d ingredients]\n",
			step.Order, name, len(step.Ingredients)))
	}
	return sb.String()
}

// StepNames 收集步驟名稱（日誌用）
func StepNames(steps []*Step) []string {
	names := make([]string, 0, len(steps))
	for _, step := range steps {
		names = append(names, step.Name)
	}
	return names
}
