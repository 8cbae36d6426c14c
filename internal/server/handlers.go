package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/abhisek/quizpack/internal/catalog"
	"github.com/abhisek/quizpack/internal/grading"
	"github.com/abhisek/quizpack/internal/store"
	"go.uber.org/zap"
)

// maxBodyBytes caps submit request bodies.
const maxBodyBytes = 64 << 10

// attemptTimeout bounds a single attempt-log write.
const attemptTimeout = 5 * time.Second

// Placeholders returned with 404 responses.
var (
	packetNotFound = catalog.Packet{Name: "Packet not found", Questions: []catalog.Question{}}

	questionNotFound = catalog.MultipleChoice("Question not found", []string{"", "", "", ""}, 0)

	verdictNotFound = grading.Verdict{Correct: false, Message: "Question not found"}
)

// SubmitRequest is the body of an answer submission.
type SubmitRequest struct {
	Answer *string `json:"answer"`
}

// ErrorResponse is the error envelope for malformed requests.
type ErrorResponse struct {
	Error string `json:"error"`
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) listPackets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.catalog.Keys())
}

func (s *Server) getPacket(w http.ResponseWriter, r *http.Request) {
	p, err := s.catalog.Packet(r.PathValue("key"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, packetNotFound)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) getQuestion(w http.ResponseWriter, r *http.Request) {
	q, err := s.lookupQuestion(r)
	if err != nil {
		writeJSON(w, http.StatusNotFound, questionNotFound)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

func (s *Server) submitAnswer(w http.ResponseWriter, r *http.Request) {
	q, err := s.lookupQuestion(r)
	if err != nil {
		writeJSON(w, http.StatusNotFound, verdictNotFound)
		return
	}

	var req SubmitRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "bad json: " + err.Error()})
		return
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "bad json: unexpected data after answer object"})
		return
	}
	if req.Answer == nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "answer is required"})
		return
	}

	verdict := s.evaluator.Evaluate(q, *req.Answer)
	s.recordAttempt(r, *req.Answer, verdict)
	writeJSON(w, http.StatusOK, verdict)
}

// lookupQuestion resolves the {key}/{index} path values. An index that is
// not a non-negative integer can never resolve and reports ErrNotFound.
func (s *Server) lookupQuestion(r *http.Request) (catalog.Question, error) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil || index < 0 {
		return catalog.Question{}, catalog.ErrNotFound
	}
	return s.catalog.Question(r.PathValue("key"), index)
}

// recordAttempt appends to the attempt log when one is configured. Failures
// are logged and never affect the response.
func (s *Server) recordAttempt(r *http.Request, answer string, v grading.Verdict) {
	if s.attempts == nil {
		return
	}
	// The path was already resolved, so the index parses.
	index, _ := strconv.Atoi(r.PathValue("index"))

	ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), attemptTimeout)
	defer cancel()

	a := &store.Attempt{
		PacketKey:     r.PathValue("key"),
		QuestionIndex: index,
		Answer:        answer,
		Correct:       v.Correct,
	}
	if err := s.attempts.Append(ctx, a); err != nil {
		s.logger.Warn("record attempt failed",
			zap.String("request_id", RequestIDFrom(r.Context())),
			zap.Error(err))
		return
	}
	s.logger.Debug("attempt recorded",
		zap.String("attempt_id", a.ID),
		zap.Int64("sequence", a.Sequence))
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
