// Package recipediff compares an original recipe against a portion-adjusted
// suggestion and reports which fields changed, for display purposes.
//
// Comparison is positional: ingredient rows are matched by index, not by
// name or identity. The suggestion pass that produces the second recipe is
// required to preserve row order, so index alignment is the contract here.
// Reordered, merged or split ingredient lists are not realigned; a row with
// no counterpart at the same index in the original is simply reported as
// changed.
package recipediff

// Ingredient is a single recipe row. Name is carried for display only and
// never participates in comparison.
type Ingredient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// Recipe is the snapshot shape Diff operates on: a servings count plus an
// ordered ingredient list.
type Recipe struct {
	Servings    int          `json:"servings"`
	Ingredients []Ingredient `json:"ingredients"`
}

// Result reports which parts of the suggested recipe differ from the
// original. IngredientChanges holds exactly one entry per suggested
// ingredient, in suggested order; rows of the original beyond the suggested
// list's length are not surfaced.
type Result struct {
	ServingsChanged   bool   `json:"servings_changed"`
	IngredientChanges []bool `json:"ingredient_changes"`
}

// Diff compares original and suggested and returns a fresh Result. It never
// mutates its inputs, has no error conditions, and is safe for concurrent
// use. Servings are compared by exact integer inequality; ingredient rows by
// amount and exact unit string at the same index.
func Diff(original, suggested Recipe) Result {
	changes := make([]bool, len(suggested.Ingredients))
	for i, ing := range suggested.Ingredients {
		if i >= len(original.Ingredients) {
			changes[i] = true
			continue
		}
		orig := original.Ingredients[i]
		changes[i] = orig.Amount != ing.Amount || orig.Unit != ing.Unit
	}

	return Result{
		ServingsChanged:   original.Servings != suggested.Servings,
		IngredientChanges: changes,
	}
}
