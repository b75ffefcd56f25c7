package recipe

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"recipe-manager/internal/core/cache"
	"recipe-manager/internal/core/instruction"
	"recipe-manager/internal/infrastructure/config"
	"recipe-manager/internal/pkg/common"

	"go.uber.org/zap"
)

// ImportService 食譜匯入服務
// 負責指示正規化、步驟分割與食材掛載的完整流程
type ImportService struct {
	config       *config.Config
	cacheManager *cache.Manager
	options      instruction.Options
}

// IngredientInput 上游解析服務送來的單一食材
// Amount 保留原始 JSON：來源可能是數字、字串或 null
type IngredientInput struct {
	Food   string          `json:"food"`
	Unit   string          `json:"unit"`
	Amount json.RawMessage `json:"amount"`
	Note   string          `json:"note"`
}

// ImportInput 單筆匯入請求
type ImportInput struct {
	Name                string
	Description         string
	Instructions        instruction.Payload
	Ingredients         []IngredientInput
	Yield               string
	PrepTime            string
	CookTime            string
	Nutrition           map[string]interface{}
	NutritionSource     string
	NutritionPerServing bool
	Keywords            []string
	ImportAsSteps       bool
}

// NewImportService 創建匯入服務，cacheManager 可為 nil（緩存停用）
func NewImportService(cfg *config.Config, cacheManager *cache.Manager) *ImportService {
	return &ImportService{
		config:       cfg,
		cacheManager: cacheManager,
		options: instruction.Options{
			Labels: instruction.Labels{
				Step:    cfg.Import.StepLabel,
				Section: cfg.Import.SectionLabel,
			},
			MaxDepth:     cfg.Import.MaxSectionDepth,
			SplitNumbers: cfg.Import.SplitNumberedLists,
		},
	}
}

// Import 執行單筆匯入
func (s *ImportService) Import(ctx context.Context, in *ImportInput) (*common.Recipe, error) {
	start := time.Now()

	if strings.TrimSpace(in.Name) == "" {
		return nil, common.ErrRecipeNameRequired
	}

	blob, err := s.buildDocument(ctx, in)
	if err != nil {
		common.LogImport(in.Name, 0, time.Since(start), err)
		return nil, err
	}

	steps := instruction.Segment(blob, in.ImportAsSteps)

	recipe := &common.Recipe{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Servings:    ParseServings(in.Yield),
		WorkingTime: DurationToMinutes(in.PrepTime),
		WaitingTime: DurationToMinutes(in.CookTime),
		Steps:       steps,
	}

	// 空白關鍵字直接略過
	for _, kw := range in.Keywords {
		if strings.TrimSpace(kw) == "" {
			continue
		}
		recipe.Keywords = append(recipe.Keywords, common.Keyword{Text: strings.TrimSpace(kw)})
	}

	recipe.Nutrition = ParseNutrition(in.Nutrition, in.NutritionSource,
		recipe.Servings, in.NutritionPerServing)

	// 食材掛載需要至少一個步驟可供退回
	if len(in.Ingredients) > 0 && len(recipe.Steps) == 0 {
		recipe.Steps = []*common.Step{{
			Instruction: "",
			Order:       1,
			Ingredients: []common.Ingredient{},
		}}
	}
	for _, input := range in.Ingredients {
		amount, noAmount := ParseAmount(common.RawToString(input.Amount))
		instruction.AssignIngredient(recipe.Steps, common.Ingredient{
			Food:     input.Food,
			Unit:     input.Unit,
			Amount:   amount,
			NoAmount: noAmount,
			Note:     input.Note,
		})
	}

	common.LogImport(recipe.Name, len(recipe.Steps), time.Since(start), nil)
	return recipe, nil
}

// buildDocument 產生攤平後的指示文件，正規化結果可安全共用快取
func (s *ImportService) buildDocument(ctx context.Context, in *ImportInput) (string, error) {
	raw := in.Instructions.Raw()
	var key string
	if s.cacheManager != nil && len(raw) > 0 {
		key = cache.Key("instructions",
			string(raw),
			s.options.Labels.Step,
			s.options.Labels.Section,
		)
		if blob, ok := s.cacheManager.Get(ctx, key); ok {
			return blob, nil
		}
	}

	blob, err := instruction.BuildDocument(in.Instructions, s.options)
	if err != nil {
		return "", err
	}

	if key != "" {
		if err := s.cacheManager.Set(ctx, key, blob); err != nil {
			common.LogWarn("指示文件快取寫入失敗", zap.Error(err))
		}
	}
	return blob, nil
}
