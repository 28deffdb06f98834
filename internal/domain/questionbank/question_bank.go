package questionbank

import (
	"errors"

	"github.com/quizpace/backend/internal/id"
)

// Question is a single quiz question. The correct answer and explanation are
// resolved by the scoring collaborator; the session engine treats them as
// opaque.
type Question struct {
	ID            string
	Prompt        string
	CorrectAnswer string
	Explanation   string
}

// Bank is an ordered collection of questions that practice sessions are
// built from.
type Bank struct {
	ID        string
	Subject   string
	Questions []Question
}

func New(subject string) *Bank {
	return &Bank{
		ID:        id.GenerateID(),
		Subject:   subject,
		Questions: []Question{},
	}
}

// AddQuestion appends a question to the bank.
func (b *Bank) AddQuestion(prompt, correctAnswer, explanation string) error {
	if prompt == "" {
		return errors.New("question prompt cannot be empty")
	}
	if correctAnswer == "" {
		return errors.New("question correct answer cannot be empty")
	}

	b.Questions = append(b.Questions, Question{
		ID:            id.GenerateID(),
		Prompt:        prompt,
		CorrectAnswer: correctAnswer,
		Explanation:   explanation,
	})
	return nil
}
