package analysis

import "context"

// Backend abstracts the hosted language-analysis service the pipeline
// prompts against. The concrete implementation is pkg/ai.GeminiClient;
// tests substitute a stub so the pipeline's control logic runs offline.
type Backend interface {
	// Complete returns the model's free-text output for a prompt.
	Complete(ctx context.Context, prompt string) (string, error)
	// CompleteJSON returns the model's output for a prompt that demands
	// a single JSON object.
	CompleteJSON(ctx context.Context, prompt string) (string, error)
}
