package service

import (
	"context"
	"errors"
	"strings"

	"github.com/HafeezKhan-spec/AgriLiv-T5/internal/domain/entity"
)

// Error kinds for the inference pipelines. Adapters wrap their failures
// with these so handlers can map them without seeing runtime internals.
var (
	// ErrDecode indicates malformed image input
	ErrDecode = errors.New("image decode failed")
	// ErrModelLoad indicates pretrained artifacts are unavailable.
	// Fatal for the affected pipeline until the process restarts.
	ErrModelLoad = errors.New("model load failed")
	// ErrInference indicates a generation or forward pass failure
	ErrInference = errors.New("inference failed")
)

// VisionClassifier classifies raw image bytes into a disease label
// with a probability in [0,1]
type VisionClassifier interface {
	Classify(ctx context.Context, imageBytes []byte) (*entity.ClassificationResult, error)
}

// GenerationParams holds the decoding parameters for a single
// generation call
type GenerationParams struct {
	MaxLength       int  `json:"max_length"`
	NumBeams        int  `json:"num_beams"`
	NoRepeatNGram   int  `json:"no_repeat_ngram_size,omitempty"`
	EarlyStopping   bool `json:"early_stopping,omitempty"`
	SkipSpecialToks bool `json:"skip_special_tokens"`
}

// TextGenerator runs a sequence-generation model against a prompt
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, params GenerationParams) (string, error)
}

// OutcomeKind classifies the result of a generation call
type OutcomeKind int

const (
	// OutcomeSuccess means the generated text is usable as-is
	OutcomeSuccess OutcomeKind = iota
	// OutcomeDegenerate means the text was empty or below the minimum
	// useful length and a fallback should be substituted
	OutcomeDegenerate
	// OutcomeFailure means the inference runtime itself failed
	OutcomeFailure
)

// GenerationOutcome makes the fallback policy explicit instead of
// hiding it in error handling
type GenerationOutcome struct {
	Kind OutcomeKind
	Text string
	Err  error
}

// MinUsefulAnswerLength is the single degenerate-output threshold shared
// by both synthesis stages.
const MinUsefulAnswerLength = 20

// JudgeGeneration classifies a generator result into an outcome.
// Whitespace is trimmed before the length check.
func JudgeGeneration(text string, err error) GenerationOutcome {
	if err != nil {
		return GenerationOutcome{Kind: OutcomeFailure, Err: err}
	}
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < MinUsefulAnswerLength {
		return GenerationOutcome{Kind: OutcomeDegenerate, Text: trimmed}
	}
	return GenerationOutcome{Kind: OutcomeSuccess, Text: trimmed}
}
