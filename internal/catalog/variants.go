package catalog

// givenConnective builds a row where the connective is shown and the
// learner supplies its category and an example sentence.
func givenConnective(connective string, c Category) Row {
	return Row{
		Connective: Fixed{Value: connective},
		Category:   Blank{Accepted: CategoryNames(c), Points: 1},
		Sentence:   SentenceCell{Points: 1, RequiredConnective: connective},
	}
}

// givenCategory builds a row where the category is shown and the learner
// supplies any connective of that category and an example sentence.
func givenCategory(c Category) Row {
	return Row{
		Connective: Blank{Accepted: Connectives(c), Points: 1},
		Category:   Fixed{Value: string(c)},
		Sentence:   SentenceCell{Points: 1},
	}
}

// givenBoth builds a row where only the example sentence is asked for.
func givenBoth(connective string, c Category) Row {
	return Row{
		Connective: Fixed{Value: connective},
		Category:   Fixed{Value: string(c)},
		Sentence:   SentenceCell{Points: 1, RequiredConnective: connective},
	}
}

// variants is the shared set of exercise tables.
var variants = []Variant{
	{
		Name: "Tabela 1",
		Rows: []Row{
			givenConnective("Ademais", CategoryAddition),
			givenCategory(CategoryConclusion),
			givenBoth("Logo", CategoryExplanation),
			givenCategory(CategoryAddition),
			givenConnective("Portanto", CategoryConclusion),
			givenBoth("Entretanto", CategoryOpposition),
			givenConnective("Conforme", CategoryConformity),
		},
	},
	{
		Name: "Tabela 2",
		Rows: []Row{
			givenCategory(CategoryContrast),
			givenConnective("Outrossim", CategoryAddition),
			givenCategory(CategoryExplanation),
			givenConnective("Por isso", CategoryConclusion),
			givenCategory(CategoryCause),
			givenBoth("É esse respeito", CategoryConformity),
			givenConnective("Dessa forma", CategoryConclusion),
		},
	},
	{
		Name: "Tabela 3",
		Rows: []Row{
			givenConnective("Então", CategoryExplanation),
			givenCategory(CategoryAddition),
			givenBoth("Todavia", CategoryContrast),
			givenCategory(CategoryConformity),
			givenConnective("Sob essa perspectiva", CategoryCause),
			givenCategory(CategoryConclusion),
			givenBoth("Seguindo o raciocínio", CategoryExplanation),
		},
	},
}

// Variants returns a deep copy of the exercise tables in declaration order.
func Variants() []Variant {
	out := make([]Variant, len(variants))
	for i, v := range variants {
		rows := make([]Row, len(v.Rows))
		for j, r := range v.Rows {
			r.Connective = cloneCell(r.Connective)
			r.Category = cloneCell(r.Category)
			rows[j] = r
		}
		out[i] = Variant{Name: v.Name, Rows: rows}
	}
	return out
}

func cloneCell(c Cell) Cell {
	if b, ok := c.(Blank); ok {
		b.Accepted = append([]string(nil), b.Accepted...)
		return b
	}
	return c
}
