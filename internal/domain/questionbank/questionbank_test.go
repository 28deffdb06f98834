package questionbank_test

import (
	"testing"

	"github.com/quizpace/backend/internal/domain/questionbank"
)

func TestNew(t *testing.T) {
	bank := questionbank.New("Go Fundamentals")

	if bank.ID == "" {
		t.Error("expected bank to have a generated ID")
	}
	if bank.Subject != "Go Fundamentals" {
		t.Errorf("expected subject %q, got %q", "Go Fundamentals", bank.Subject)
	}
	if len(bank.Questions) != 0 {
		t.Errorf("expected no questions, got %d", len(bank.Questions))
	}
}

func TestAddQuestion(t *testing.T) {
	bank := questionbank.New("Networking")

	err := bank.AddQuestion("What does TCP stand for?", "Transmission Control Protocol", "TCP is the connection-oriented transport protocol.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(bank.Questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(bank.Questions))
	}

	q := bank.Questions[0]
	if q.ID == "" {
		t.Error("expected question to have a generated ID")
	}
	if q.Prompt != "What does TCP stand for?" {
		t.Errorf("unexpected prompt %q", q.Prompt)
	}
	if q.CorrectAnswer != "Transmission Control Protocol" {
		t.Errorf("unexpected correct answer %q", q.CorrectAnswer)
	}
}

func TestAddQuestion_EmptyPrompt(t *testing.T) {
	bank := questionbank.New("Networking")

	if err := bank.AddQuestion("", "answer", ""); err == nil {
		t.Error("expected error for empty prompt")
	}
	if len(bank.Questions) != 0 {
		t.Errorf("expected no questions after failed add, got %d", len(bank.Questions))
	}
}

func TestAddQuestion_EmptyAnswer(t *testing.T) {
	bank := questionbank.New("Networking")

	if err := bank.AddQuestion("prompt", "", ""); err == nil {
		t.Error("expected error for empty correct answer")
	}
}
