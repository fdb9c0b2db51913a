package repository

// Sort keys are mapped through an allow-list instead of interpolating
// caller-supplied column names into SQL.
var bookSortColumns = map[string]string{
	"title":      "b.title asc",
	"title_desc": "b.title desc",
	"year":       "b.year asc nulls last",
	"year_desc":  "b.year desc nulls last",
	"newest":     "b.created_at desc",
	// tag order: main category, subcategory, number
	"tag": "b.code_maincategory asc, b.code_category asc, b.number_in_category asc",
}

const defaultBookSort = "b.title asc"

// BookSortExpr resolves a sort key to its ORDER BY expression; unknown
// keys fall back to the default instead of erroring.
func BookSortExpr(key string) string {
	if expr, ok := bookSortColumns[key]; ok {
		return expr
	}
	return defaultBookSort
}
