// internal/api/bank_handler.go
package api

import (
	"errors"
	"net/http"

	"github.com/quizpace/backend/internal/domain/questionbank"
)

// ── Request / Response types ────────────────────────────────────────────────

type BankQuestion struct {
	Prompt        string `json:"prompt" example:"What is a goroutine?"`
	CorrectAnswer string `json:"correct_answer" example:"A lightweight thread managed by the Go runtime"`
	Explanation   string `json:"explanation,omitempty" example:"Goroutines multiplex onto OS threads."`
}

type CreateBankRequest struct {
	Subject   string         `json:"subject" example:"Go concurrency patterns"`
	Questions []BankQuestion `json:"questions,omitempty"`
}

func (r *CreateBankRequest) Validate() error {
	if r.Subject == "" {
		return errors.New("subject is required")
	}
	for _, q := range r.Questions {
		if q.Prompt == "" {
			return errors.New("every question needs a prompt")
		}
		if q.CorrectAnswer == "" {
			return errors.New("every question needs a correct answer")
		}
	}
	return nil
}

type BankResponse struct {
	ID            string `json:"id" example:"x9y8z7w6v5u4t3s2"`
	Subject       string `json:"subject" example:"Go concurrency patterns"`
	QuestionCount int    `json:"question_count" example:"10"`
}

// QuestionResponse omits the correct answer and explanation: clients render
// prompts only, the verdict comes back through the session's outcomes.
type QuestionResponse struct {
	ID     string `json:"id" example:"q1w2e3r4t5y6u7i8"`
	Prompt string `json:"prompt" example:"What is a goroutine?"`
}

type GetBankResponse struct {
	ID        string             `json:"id" example:"x9y8z7w6v5u4t3s2"`
	Subject   string             `json:"subject" example:"Go concurrency patterns"`
	Questions []QuestionResponse `json:"questions"`
}

type AddQuestionRequest struct {
	Prompt        string `json:"prompt" example:"What is a channel?"`
	CorrectAnswer string `json:"correct_answer" example:"A typed conduit for communication between goroutines"`
	Explanation   string `json:"explanation,omitempty" example:"Channels synchronize goroutines by communicating."`
}

func (r *AddQuestionRequest) Validate() error {
	if r.Prompt == "" {
		return errors.New("prompt is required")
	}
	if r.CorrectAnswer == "" {
		return errors.New("correct_answer is required")
	}
	return nil
}

// ── Handlers ────────────────────────────────────────────────────────────────

// createBank creates a new question bank.
// @Summary      Create a question bank
// @Description  Create a bank, optionally seeded with questions.
// @Tags         Banks
// @Accept       json
// @Produce      json
// @Param        body  body      CreateBankRequest  true  "Bank to create"
// @Success      201   {object}  BankResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /banks [post]
func (h *Handler) createBank(w http.ResponseWriter, r *http.Request) {
	var req CreateBankRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	bank := questionbank.New(req.Subject)
	for _, q := range req.Questions {
		if err := bank.AddQuestion(q.Prompt, q.CorrectAnswer, q.Explanation); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	if err := h.store.SaveBank(bank); err != nil {
		h.logger.Error("failed to save bank", "error", err)
		http.Error(w, "failed to save bank", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusCreated, BankResponse{
		ID:            bank.ID,
		Subject:       bank.Subject,
		QuestionCount: len(bank.Questions),
	})
}

// listBanks lists all question banks.
// @Summary      List all banks
// @Tags         Banks
// @Produce      json
// @Success      200  {array}   BankResponse
// @Failure      500  {object}  map[string]string
// @Router       /banks [get]
func (h *Handler) listBanks(w http.ResponseWriter, r *http.Request) {
	banks, err := h.store.ListBanks()
	if h.handleStoreError(w, err, "banks") {
		return
	}

	response := make([]BankResponse, len(banks))
	for i, bank := range banks {
		response[i] = BankResponse{
			ID:            bank.ID,
			Subject:       bank.Subject,
			QuestionCount: len(bank.Questions),
		}
	}
	respondJSON(w, http.StatusOK, response)
}

// getBank returns one bank with its question prompts.
// @Summary      Get a question bank
// @Tags         Banks
// @Produce      json
// @Param        bankID  path      string  true  "Bank ID"
// @Success      200     {object}  GetBankResponse
// @Failure      404     {object}  map[string]string
// @Router       /banks/{bankID} [get]
func (h *Handler) getBank(w http.ResponseWriter, r *http.Request) {
	bank, err := h.store.GetBank(r.PathValue("bankID"))
	if h.handleStoreError(w, err, "bank") {
		return
	}

	questions := make([]QuestionResponse, len(bank.Questions))
	for i, q := range bank.Questions {
		questions[i] = QuestionResponse{ID: q.ID, Prompt: q.Prompt}
	}
	respondJSON(w, http.StatusOK, GetBankResponse{
		ID:        bank.ID,
		Subject:   bank.Subject,
		Questions: questions,
	})
}

// deleteBank removes a bank and its questions.
// @Summary      Delete a question bank
// @Tags         Banks
// @Param        bankID  path  string  true  "Bank ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /banks/{bankID} [delete]
func (h *Handler) deleteBank(w http.ResponseWriter, r *http.Request) {
	if h.handleStoreError(w, h.store.DeleteBank(r.PathValue("bankID")), "bank") {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// addQuestion appends a question to a bank.
// @Summary      Add a question
// @Tags         Banks
// @Accept       json
// @Produce      json
// @Param        bankID  path      string              true  "Bank ID"
// @Param        body    body      AddQuestionRequest  true  "Question to add"
// @Success      201     {object}  QuestionResponse
// @Failure      400     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /banks/{bankID}/questions [post]
func (h *Handler) addQuestion(w http.ResponseWriter, r *http.Request) {
	bankID := r.PathValue("bankID")

	bank, err := h.store.GetBank(bankID)
	if h.handleStoreError(w, err, "bank") {
		return
	}

	var req AddQuestionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := bank.AddQuestion(req.Prompt, req.CorrectAnswer, req.Explanation); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	question := bank.Questions[len(bank.Questions)-1]

	if err := h.store.AddQuestion(bankID, question); err != nil {
		h.logger.Error("failed to save question", "error", err)
		http.Error(w, "failed to save question", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusCreated, QuestionResponse{ID: question.ID, Prompt: question.Prompt})
}
