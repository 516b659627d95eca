package services

import (
	"strings"

	"github.com/r-4-e/SwasthAI/models"

	"gorm.io/gorm"
)

// Source tags for reconciled meal items.
const (
	SourceVerifiedDB = "verified_db"
	SourceAIEstimate = "ai_estimate"
)

// EnhanceService reconciles the vision model's raw item list against the
// trusted local nutrition reference table.
type EnhanceService struct {
	db *gorm.DB
}

func NewEnhanceService(db *gorm.DB) *EnhanceService {
	return &EnhanceService{db: db}
}

// Enhance loads the reference table and reconciles every item against it.
func (s *EnhanceService) Enhance(items []MealItem) ([]MealItem, error) {
	var refs []models.NutritionItem
	if err := s.db.Order("id").Find(&refs).Error; err != nil {
		return nil, err
	}
	return EnhanceItems(items, refs), nil
}

// EnhanceItems overwrites each matched item's per-100g macros and display
// name from the reference entry and tags it "verified_db"; unmatched items
// keep the AI estimate and are tagged "ai_estimate".
func EnhanceItems(items []MealItem, refs []models.NutritionItem) []MealItem {
	out := make([]MealItem, len(items))
	for i, it := range items {
		if ref := BestMatch(it.Name, refs); ref != nil {
			it.Name = ref.Name
			it.CaloriesPer100g = ref.CaloriesPer100g
			it.ProteinPer100g = ref.ProteinPer100g
			it.CarbsPer100g = ref.CarbsPer100g
			it.FatPer100g = ref.FatPer100g
			it.Source = SourceVerifiedDB
		} else {
			it.Source = SourceAIEstimate
		}
		out[i] = it
	}
	return out
}

// BestMatch picks a single reference entry for a candidate name.
// Ranking: an exact case-insensitive match wins outright; otherwise
// bidirectional substring containment applies (reference name inside the
// candidate, or candidate inside the reference name), ties broken by the
// longer reference name, then by seed order. Returns nil when nothing
// matches.
func BestMatch(name string, refs []models.NutritionItem) *models.NutritionItem {
	q := strings.ToLower(strings.TrimSpace(name))
	if q == "" {
		return nil
	}

	var best *models.NutritionItem
	for i := range refs {
		r := strings.ToLower(refs[i].Name)
		if r == q {
			return &refs[i]
		}
		if strings.Contains(q, r) || strings.Contains(r, q) {
			if best == nil || len(refs[i].Name) > len(best.Name) {
				best = &refs[i]
			}
		}
	}
	return best
}

// MacroTotals is the final macro contribution of one finalized item.
type MacroTotals struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
}

// ValidOilMultiplier reports whether the user-supplied added-fat multiplier
// is one of the accepted steps.
func ValidOilMultiplier(oil float64) bool {
	switch oil {
	case 1.0, 1.1, 1.2, 1.3:
		return true
	}
	return false
}

// ComputeMacros scales an item's per-100g values to the portion actually
// eaten. The oil multiplier approximates added cooking fat and scales only
// calories and fat; protein and carbs depend on grams alone. Grams below
// zero are floored at zero.
func ComputeMacros(it MealItem, editedGrams, oil float64) MacroTotals {
	if editedGrams < 0 {
		editedGrams = 0
	}
	factor := editedGrams / 100
	return MacroTotals{
		Calories: it.CaloriesPer100g * factor * oil,
		Fat:      it.FatPer100g * factor * oil,
		Protein:  it.ProteinPer100g * factor,
		Carbs:    it.CarbsPer100g * factor,
	}
}
