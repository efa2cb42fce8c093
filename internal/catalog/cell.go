package catalog

// Cell is one gradable unit of a row. It is either Fixed (pre-filled and
// shown as a label) or Blank (the learner must supply it).
type Cell interface {
	isCell()
}

// Fixed is a pre-filled cell. It is displayed and never scored.
type Fixed struct {
	Value string
}

// Blank is a cell the learner fills in.
type Blank struct {
	Accepted []string // Accepted answers; compared after normalization
	Points   int      // Awarded on a correct match
}

func (Fixed) isCell() {}
func (Blank) isCell() {}

// SentenceCell is the free-text example sentence. It is always blank.
type SentenceCell struct {
	Points int

	// RequiredConnective is the connective the sentence must contain.
	// Empty when the row's connective is itself a blank, in which case the
	// learner's own connective answer is used.
	RequiredConnective string
}

// Row is one exercise item: connective, category and example sentence.
type Row struct {
	Connective Cell
	Category   Cell
	Sentence   SentenceCell
}

// Variant is a pre-authored exercise table.
type Variant struct {
	Name string
	Rows []Row
}

// Blanks returns the number of gradable fields in the variant.
// Every sentence counts, plus each blank connective or category.
func (v Variant) Blanks() int {
	n := 0
	for _, r := range v.Rows {
		if _, ok := r.Connective.(Blank); ok {
			n++
		}
		if _, ok := r.Category.(Blank); ok {
			n++
		}
		n++
	}
	return n
}

// MaxPoints returns the highest achievable score for the variant.
func (v Variant) MaxPoints() int {
	total := 0
	for _, r := range v.Rows {
		if b, ok := r.Connective.(Blank); ok {
			total += b.Points
		}
		if b, ok := r.Category.(Blank); ok {
			total += b.Points
		}
		total += r.Sentence.Points
	}
	return total
}
