package models

// GenerationParameters are the sampling options sent with a generate request.
type GenerationParameters struct {
	MaxNewTokens   int     `json:"max_new_tokens"`
	Temperature    float64 `json:"temperature"`
	TopP           float64 `json:"top_p"`
	ReturnFullText bool    `json:"return_full_text"`
}

// GenerateRequest is the JSON payload for the text-generation endpoint.
// Each request is stateless: only the new prompt is sent, never prior
// transcript context.
type GenerateRequest struct {
	Inputs     string               `json:"inputs"`
	Parameters GenerationParameters `json:"parameters"`
}

// DefaultParameters returns the fixed generation parameters used for every
// request.
func DefaultParameters() GenerationParameters {
	return GenerationParameters{
		MaxNewTokens:   MaxNewTokens,
		Temperature:    Temperature,
		TopP:           TopP,
		ReturnFullText: false,
	}
}

// NewGenerateRequest builds a single-turn request for the given prompt.
func NewGenerateRequest(prompt string) GenerateRequest {
	return GenerateRequest{
		Inputs:     prompt,
		Parameters: DefaultParameters(),
	}
}
