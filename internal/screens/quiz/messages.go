package quiz

import (
	qz "github.com/abhisek/conectivo/internal/quiz"
)

// scoreDoneMsg is sent when a scoring pass returns.
type scoreDoneMsg struct {
	Result *qz.Result
	Err    error
}
