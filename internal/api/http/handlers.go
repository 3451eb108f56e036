package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/aurelia-labs/questionbank/internal/auth"
	"github.com/aurelia-labs/questionbank/internal/question"
)

// HealthHandler answers the unauthenticated health check.
func HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "healthy"})
	}
}

// questionItem is the flat row form returned by the list endpoint: every
// field a string, label sets joined with ",", absent optionals as "".
type questionItem struct {
	Question  string `json:"question"`
	Subject   string `json:"subject"`
	Use       string `json:"use"`
	Correct   string `json:"correct"`
	ResponseA string `json:"responseA"`
	ResponseB string `json:"responseB"`
	ResponseC string `json:"responseC"`
	ResponseD string `json:"responseD"`
	Remark    string `json:"remark"`
}

// ListQuestionsHandler serves GET /questions?test_type=&categories=&num_items=.
// The result is keyed by position, {"0": {...}, "1": {...}}.
func ListQuestionsHandler(svc *question.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		testType := q.Get("test_type")
		categories := q["categories"]

		numItems, err := strconv.Atoi(q.Get("num_items"))
		if err != nil || (numItems != 5 && numItems != 10 && numItems != 20) {
			writeDetail(w, http.StatusBadRequest, "num_items must be one of 5, 10, 20")
			return
		}

		selected, err := svc.Select(testType, categories, numItems)
		if err != nil {
			if errors.Is(err, question.ErrInvalidCategories) {
				writeDetail(w, http.StatusBadRequest, "Invalid categories")
				return
			}
			writeDetail(w, http.StatusInternalServerError, fmt.Sprintf("Something went wrong: %v", err))
			return
		}

		out := make(map[string]questionItem, len(selected))
		for i, rec := range selected {
			out[strconv.Itoa(i)] = questionItem{
				Question:  rec.Question,
				Subject:   rec.SubjectCell(),
				Use:       rec.UseValue(),
				Correct:   rec.CorrectCell(),
				ResponseA: rec.ResponseA,
				ResponseB: rec.ResponseB,
				ResponseC: rec.ResponseC,
				ResponseD: rec.ResponseD,
				Remark:    rec.Remark,
			}
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// CreateQuestionHandler serves POST /question (admin only).
func CreateQuestionHandler(svc *question.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body question.Question
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeDetail(w, http.StatusBadRequest, "bad json")
			return
		}
		if !body.Valid() {
			writeDetail(w, http.StatusBadRequest, "question, responseA-C, subject and use are required")
			return
		}

		created, err := svc.Create(auth.SubjectFromContext(r.Context()), body)
		if err != nil {
			switch {
			case errors.Is(err, question.ErrUnauthorized):
				writeDetail(w, http.StatusForbidden, "Unauthorized")
			case errors.Is(err, question.ErrAlreadyExists):
				writeDetail(w, http.StatusConflict, "Question already existing")
			default:
				writeDetail(w, http.StatusInternalServerError, fmt.Sprintf("Something went wrong: %v", err))
			}
			return
		}

		writeJSON(w, http.StatusOK, struct {
			Question  question.Question `json:"question"`
			ID        string            `json:"id"`
			CreatedAt string            `json:"created_at"`
		}{body, created.ID, created.CreatedAt})
	}
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"detail": msg})
}
