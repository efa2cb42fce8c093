package sentence

// Wire types shared by the remote client and the grading server.

// Endpoint paths relative to the validator base URL.
const (
	ValidatePath = "/api/validar-frase"
	StatusPath   = "/api/status"

	// StatusActive is the liveness value reported by a usable validator.
	StatusActive = "ativo"
)

// ValidateRequest is the body of a validation request.
type ValidateRequest struct {
	Sentence   string `json:"frase"`
	Connective string `json:"conectivo"`
}

// ValidateResponse is the body of a validation response.
type ValidateResponse struct {
	Success bool     `json:"sucesso"`
	Result  *Verdict `json:"resultado,omitempty"`
	Error   string   `json:"erro,omitempty"`
}

// StatusResponse is the body of a liveness probe response.
type StatusResponse struct {
	Status       string `json:"status"`
	LLMAvailable bool   `json:"llm_disponivel"`
	Version      string `json:"versao,omitempty"`
}
