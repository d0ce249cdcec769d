package credit

// Category is one of the fixed buckets of required academic credit.
type Category struct {
	Code          string `json:"code"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	TotalRequired int    `json:"total"`
}

// catalog is the fixed set of degree-credit categories, in display order.
// It is defined once at process start and never mutated.
var catalog = []Category{
	{Code: "ec", Title: "Experiential Core", Description: "Hands-on learning bridging theory and practice.", TotalRequired: 16},
	{Code: "ee", Title: "Experiential Electives", Description: "Tailored experiential opportunities.", TotalRequired: 8},
	{Code: "fc", Title: "Foundation Core", Description: "Essential foundational knowledge.", TotalRequired: 44},
	{Code: "ho", Title: "Honours", Description: "Advanced academic work for high achievers.", TotalRequired: 20},
	{Code: "mi", Title: "Minors", Description: "Concentrated study in another field.", TotalRequired: 20},
	{Code: "pc", Title: "Program Core", Description: "Core courses specific to your major.", TotalRequired: 52},
	{Code: "pe", Title: "Program Electives", Description: "Specialized courses within your major.", TotalRequired: 24},
	{Code: "ue", Title: "University Electives", Description: "Free elective courses from any department.", TotalRequired: 16},
}

var catalogByCode = func() map[string]Category {
	byCode := make(map[string]Category, len(catalog))
	for _, cat := range catalog {
		byCode[cat.Code] = cat
	}
	return byCode
}()

// Catalog returns the fixed ordered sequence of credit categories.
// Callers must not mutate the returned slice.
func Catalog() []Category {
	return catalog
}

// CategoryByCode looks a Category up by its code.
func CategoryByCode(code string) (Category, bool) {
	cat, ok := catalogByCode[code]
	return cat, ok
}

// KnownCategory reports whether code refers to a catalog Category.
func KnownCategory(code string) bool {
	_, ok := catalogByCode[code]
	return ok
}
