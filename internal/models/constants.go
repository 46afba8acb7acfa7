// Package models contains data types and constants for the Hugging Face
// Inference API.
package models

// DefaultBaseURL is the Hugging Face Inference API root.
const DefaultBaseURL = "https://api-inference.huggingface.co"

// Generation parameters sent with every request. Single-turn, fixed values.
const (
	MaxNewTokens = 500
	Temperature  = 0.7
	TopP         = 0.95
)

// NoResponseText is substituted when the API returns a payload without a
// usable generated_text field.
const NoResponseText = "No response generated"

// Model identifies a hosted text-generation model by its repository ID.
type Model struct {
	ID string
}

// Available models
var (
	ModelMistral7B = Model{ID: "mistralai/Mistral-7B-Instruct-v0.3"}
	ModelZephyr7B  = Model{ID: "HuggingFaceH4/zephyr-7b-beta"}
	ModelFlanT5    = Model{ID: "google/flan-t5-large"}

	// DefaultModel is used when no model is configured
	DefaultModel = ModelMistral7B
)

// ModelFromID returns the known model with the given ID, or a Model wrapping
// the ID as-is so arbitrary hosted models can be used.
func ModelFromID(id string) Model {
	switch id {
	case ModelMistral7B.ID:
		return ModelMistral7B
	case ModelZephyr7B.ID:
		return ModelZephyr7B
	case ModelFlanT5.ID:
		return ModelFlanT5
	case "":
		return DefaultModel
	}
	return Model{ID: id}
}

// AvailableModels returns the IDs of the known models.
func AvailableModels() []string {
	return []string{
		ModelMistral7B.ID,
		ModelZephyr7B.ID,
		ModelFlanT5.ID,
	}
}
