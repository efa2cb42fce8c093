package quiz

// Band is a performance tier for the end-of-round summary.
type Band int

const (
	BandKeepStudying Band = iota
	BandGood
	BandExcellent
)

// Message returns the learner-facing copy for the band.
func (b Band) Message() string {
	switch b {
	case BandExcellent:
		return "🎉 Excelente! Você domina os conectivos!"
	case BandGood:
		return "👍 Bom trabalho! Continue praticando!"
	default:
		return "📚 Continue estudando! Você vai melhorar!"
	}
}

func (b Band) String() string {
	switch b {
	case BandExcellent:
		return "excellent"
	case BandGood:
		return "good"
	default:
		return "keep-studying"
	}
}

// Summary is the end-of-round report.
type Summary struct {
	Points  int
	Blanks  int
	Percent float64
	Band    Band
}

// Message returns the band copy.
func (s Summary) Message() string { return s.Band.Message() }

// Summarize bands a result: at least 80% is excellent, at least 60% good.
func Summarize(r Result) Summary {
	sum := Summary{Points: r.Points, Blanks: r.Blanks}
	if r.Blanks > 0 {
		sum.Percent = float64(r.Points) / float64(r.Blanks) * 100
	}
	switch {
	case sum.Percent >= 80:
		sum.Band = BandExcellent
	case sum.Percent >= 60:
		sum.Band = BandGood
	default:
		sum.Band = BandKeepStudying
	}
	return sum
}
