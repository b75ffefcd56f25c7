package recipe

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"recipe-manager/internal/core/instruction"
	"recipe-manager/internal/infrastructure/config"
	"recipe-manager/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Import: config.ImportConfig{
			StepLabel:          "Step %d",
			SectionLabel:       "Instructions",
			MaxSectionDepth:    10,
			SplitNumberedLists: true,
		},
		Cache: config.CacheConfig{Enabled: false},
		Queue: config.QueueConfig{Workers: 2, MaxSize: 10},
	}
}

func testPayload(t *testing.T, raw string) instruction.Payload {
	t.Helper()
	var p instruction.Payload
	require.NoError(t, json.Unmarshal([]byte(raw), &p))
	return p
}

func TestImportFullRecipe(t *testing.T) {
	svc := NewImportService(testConfig(), nil)

	in := &ImportInput{
		Name:         "Apfelkuchen",
		Description:  "Ein einfacher Kuchen",
		Instructions: testPayload(t, `["Mix the flour with sugar", "Bake it golden"]`),
		Ingredients: []IngredientInput{
			{Food: "flour", Unit: "g", Amount: json.RawMessage(`500`)},
			{Food: "butter", Unit: "g", Amount: json.RawMessage(`"250"`)},
		},
		Yield:         "4 Portionen",
		PrepTime:      "PT15M",
		CookTime:      "PT1H",
		Keywords:      []string{"Kuchen", "  ", "einfach"},
		ImportAsSteps: true,
	}

	recipe, err := svc.Import(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, "Apfelkuchen", recipe.Name)
	assert.Equal(t, 4, recipe.Servings)
	assert.Equal(t, 15, recipe.WorkingTime)
	assert.Equal(t, 60, recipe.WaitingTime)

	require.Len(t, recipe.Steps, 2)
	assert.Equal(t, "Step 1", recipe.Steps[0].Name)
	assert.Equal(t, "Mix the flour with sugar", recipe.Steps[0].Instruction)
	assert.Equal(t, 1, recipe.Steps[0].Order)
	assert.Equal(t, "Bake it golden", recipe.Steps[1].Instruction)

	// flour 命中第一步；butter 無命中，退回第一步
	require.Len(t, recipe.Steps[0].Ingredients, 2)
	assert.Equal(t, "flour", recipe.Steps[0].Ingredients[0].Food)
	assert.Equal(t, 500.0, recipe.Steps[0].Ingredients[0].Amount)
	assert.Equal(t, "butter", recipe.Steps[0].Ingredients[1].Food)
	assert.Equal(t, 250.0, recipe.Steps[0].Ingredients[1].Amount)
	assert.Empty(t, recipe.Steps[1].Ingredients)

	// 空白關鍵字被略過
	require.Len(t, recipe.Keywords, 2)
	assert.Equal(t, "Kuchen", recipe.Keywords[0].Text)
	assert.Equal(t, "einfach", recipe.Keywords[1].Text)
}

func TestImportSingleStep(t *testing.T) {
	svc := NewImportService(testConfig(), nil)

	in := &ImportInput{
		Name:          "Suppe",
		Instructions:  testPayload(t, `"Alles kochen"`),
		ImportAsSteps: false,
	}

	recipe, err := svc.Import(context.Background(), in)
	require.NoError(t, err)
	require.Len(t, recipe.Steps, 1)
	assert.Equal(t, "", recipe.Steps[0].Name)
	assert.Contains(t, recipe.Steps[0].Instruction, "Alles kochen")
	assert.Equal(t, 1, recipe.Servings)
}

func TestImportNameRequired(t *testing.T) {
	svc := NewImportService(testConfig(), nil)

	_, err := svc.Import(context.Background(), &ImportInput{Name: "   "})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrRecipeNameRequired)
}

func TestImportIngredientsWithoutInstructions(t *testing.T) {
	svc := NewImportService(testConfig(), nil)

	in := &ImportInput{
		Name:         "Nur Zutaten",
		Instructions: testPayload(t, `null`),
		Ingredients: []IngredientInput{
			{Food: "Salz"},
		},
		ImportAsSteps: true,
	}

	recipe, err := svc.Import(context.Background(), in)
	require.NoError(t, err)

	// 沒有指示內容時建立空步驟承接食材
	require.Len(t, recipe.Steps, 1)
	require.Len(t, recipe.Steps[0].Ingredients, 1)
	assert.Equal(t, "Salz", recipe.Steps[0].Ingredients[0].Food)
	assert.True(t, recipe.Steps[0].Ingredients[0].NoAmount)
}

func TestImportNutritionPerServing(t *testing.T) {
	svc := NewImportService(testConfig(), nil)

	in := &ImportInput{
		Name:         "Salat",
		Instructions: testPayload(t, `"Mischen"`),
		Yield:        "2",
		Nutrition: map[string]interface{}{
			"calories":   "150 kcal",
			"fatContent": "5 g",
		},
		NutritionSource:     "example.com",
		NutritionPerServing: true,
		ImportAsSteps:       false,
	}

	recipe, err := svc.Import(context.Background(), in)
	require.NoError(t, err)
	require.NotNil(t, recipe.Nutrition)
	assert.Equal(t, 300.0, recipe.Nutrition.Calories)
	assert.Equal(t, 10.0, recipe.Nutrition.Fats)
	assert.Equal(t, "example.com", recipe.Nutrition.Source)
}

func TestImportNormalizesInstructions(t *testing.T) {
	svc := NewImportService(testConfig(), nil)

	in := &ImportInput{
		Name:          "Thermogericht",
		Instructions:  testPayload(t, `["4 Sek/Stufe 5 zerkleinern"]`),
		ImportAsSteps: true,
	}

	recipe, err := svc.Import(context.Background(), in)
	require.NoError(t, err)
	require.Len(t, recipe.Steps, 1)
	assert.Equal(t, "**4 Sek/Stufe 5** zerkleinern", recipe.Steps[0].Instruction)
}

func TestImportCompletesQuickly(t *testing.T) {
	// 純文字轉換不應有任何 I/O 等待
	svc := NewImportService(testConfig(), nil)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := svc.Import(ctx, &ImportInput{
		Name:          "Schnell",
		Instructions:  testPayload(t, `"Fertig"`),
		ImportAsSteps: true,
	})
	require.NoError(t, err)
}
