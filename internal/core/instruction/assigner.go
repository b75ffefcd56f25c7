package instruction

import (
	"strings"

	"recipe-manager/internal/pkg/common"
)

// StepForIngredient 找出食材所屬的步驟
// 以食材名稱做指示內文的子字串比對，取第一個命中的步驟；
// 都沒有命中就退回第一個步驟。呼叫端須保證 steps 非空
func StepForIngredient(steps []*common.Step, foodName string) *common.Step {
	for _, step := range steps {
		if strings.Contains(step.Instruction, foodName) {
			return step
		}
	}
	return steps[0]
}

// AssignIngredient 將食材掛到其所屬步驟並回傳該步驟
// 同名食材可重複掛載，順序即加入順序
func AssignIngredient(steps []*common.Step, ingredient common.Ingredient) *common.Step {
	step := StepForIngredient(steps, ingredient.Food)
	step.Ingredients = append(step.Ingredients, ingredient)
	return step
}
