package practicesession

// Mode selects the feedback behavior of a session.
type Mode string

const (
	// ModeContinuous records the answer and advances automatically without
	// showing an explanation.
	ModeContinuous Mode = "continuous"
	// ModePaced shows the explanation after every answer and waits for an
	// explicit Continue before advancing.
	ModePaced Mode = "paced"
)

func (m Mode) Valid() bool {
	return m == ModeContinuous || m == ModePaced
}

// SessionConfig holds the constraints a practice session is created with.
type SessionConfig struct {
	TimeLimitSeconds int  // per-question countdown budget
	Mode             Mode // continuous or paced
	MaxQuestions     *int // nil = all questions from the bank
}

// DefaultConfig returns a paced session with a one minute budget per question.
func DefaultConfig() SessionConfig {
	return SessionConfig{
		TimeLimitSeconds: 60,
		Mode:             ModePaced,
		MaxQuestions:     nil,
	}
}
