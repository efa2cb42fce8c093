package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/abhisek/conectivo/internal/sentence"
)

const maxRequestBytes = 64 << 10

// Error copy returned to clients.
const (
	errNoData     = "Dados não fornecidos"
	errNoSentence = "Frase não fornecida"
)

func (s *Server) handleValidate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || len(body) == 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"erro": errNoData})
			return
		}

		frase, _ := body["frase"].(string)
		conectivo, _ := body["conectivo"].(string)
		frase = strings.TrimSpace(frase)
		conectivo = strings.TrimSpace(conectivo)
		if frase == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"erro": errNoSentence})
			return
		}

		a := s.grader.Grade(r.Context(), frase, conectivo)
		v := a.Verdict()
		s.log.Debug("sentence graded", "score", a.Score, "valid", v.Valid, "connective", conectivo)

		writeJSON(w, http.StatusOK, sentence.ValidateResponse{Success: true, Result: &v})
	}
}

func (s *Server) handleStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, sentence.StatusResponse{
			Status:       sentence.StatusActive,
			LLMAvailable: s.grader.ModelAvailable(),
			Version:      s.version,
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
