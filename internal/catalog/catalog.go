package catalog

// Category is a grammatical category of sentence connectives.
type Category string

const (
	CategoryAddition    Category = "Adição"
	CategoryConclusion  Category = "Conclusão"
	CategoryExplanation Category = "Explicação"
	CategoryConformity  Category = "Conformidade"
	CategoryContrast    Category = "Contraste/Oposição"
	CategoryOpposition  Category = "Oposição" // Alias for CategoryContrast
	CategoryCause       Category = "Causa e consequência"
)

// AllCategories returns all categories in display order.
func AllCategories() []Category {
	return []Category{
		CategoryAddition,
		CategoryConclusion,
		CategoryExplanation,
		CategoryConformity,
		CategoryContrast,
		CategoryOpposition,
		CategoryCause,
	}
}

// connectives maps each category to its accepted connectives, in order.
var connectives = map[Category][]string{
	CategoryAddition:    {"Ademais", "Outrossim", "E assim"},
	CategoryConclusion:  {"Portanto", "Por isso", "Dessa forma"},
	CategoryExplanation: {"Logo", "Então", "Seguindo o raciocínio"},
	CategoryConformity:  {"Conforme", "É esse respeito"},
	CategoryContrast:    {"Entretanto", "Todavia"},
	CategoryOpposition:  {"Entretanto", "Todavia"},
	CategoryCause:       {"A partir disso", "Sob essa perspectiva"},
}

// aliases lists category names that are accepted interchangeably.
var aliases = map[Category][]Category{
	CategoryContrast:   {CategoryOpposition},
	CategoryOpposition: {CategoryContrast},
}

// Connectives returns a copy of the accepted connectives for a category,
// or nil if the category is unknown.
func Connectives(c Category) []string {
	words, ok := connectives[c]
	if !ok {
		return nil
	}
	out := make([]string, len(words))
	copy(out, words)
	return out
}

// CategoryNames returns the names accepted as an answer for category c:
// the category itself followed by its aliases.
func CategoryNames(c Category) []string {
	names := []string{string(c)}
	for _, a := range aliases[c] {
		names = append(names, string(a))
	}
	return names
}

// IsKnown reports whether c is a catalog category.
func IsKnown(c Category) bool {
	_, ok := connectives[c]
	return ok
}

// CategoryOf returns the first category (in display order) that lists
// the given connective exactly.
func CategoryOf(connective string) (Category, bool) {
	for _, c := range AllCategories() {
		for _, w := range connectives[c] {
			if w == connective {
				return c, true
			}
		}
	}
	return "", false
}
