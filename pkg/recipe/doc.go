// Package recipe models recipes as returned by the Tandoor recipe manager and
// derives the views printed on a receipt.
//
// # Core Types
//
//	type Recipe struct {
//	    ID, Name                  // identity
//	    WorkingTime, WaitingTime  // optional minutes
//	    Servings, ServingsText    // optional yield
//	    Steps []Step              // source order is preserved
//	}
//
// Optional fields are pointers. A JSON null or missing key decodes to nil,
// so "not present" is never confused with a zero value.
//
// # Pluralization
//
// PluralSelect picks the plural name of a unit or food when the amount is
// present, differs from one by more than Epsilon and a non-empty plural
// exists. Units and foods are decided independently.
//
// # Aggregation
//
// AggregateIngredients flattens all steps' ingredients, drops rows without a
// food (section headers, free-text rows) and then stable-sorts by food id so
// equal foods keep their step order.
//
// # Sub-recipes
//
// A step may embed another recipe. The model is a tree decoded from a single
// response; nested recipes are never fetched separately.
package recipe
