package models

// NutritionEstimate is the record the vision model is asked to produce for a
// single photograph. The analyze endpoint forwards the model's object
// verbatim, so extra fields survive the round trip; this struct documents the
// contract and is what clients decode the data payload into.
//
// All numeric values are non-negative when present. When no food is
// recognizable in the photo the model returns empty values with an
// explanation in Notes.
type NutritionEstimate struct {
	ProductName string  `json:"product_name"`
	Calories    float64 `json:"calories"`   // kcal
	Proteins    float64 `json:"proteins"`   // grams
	Fats        float64 `json:"fats"`       // grams
	Carbs       float64 `json:"carbs"`      // grams
	Weight      float64 `json:"weight"`     // estimated portion weight, grams
	Confidence  string  `json:"confidence"` // "high", "medium" or "low"
	Notes       string  `json:"notes,omitempty"`
}
