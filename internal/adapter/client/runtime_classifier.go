package client

import (
	"context"
	"fmt"
	"math"

	"github.com/HafeezKhan-spec/AgriLiv-T5/internal/domain/entity"
	"github.com/HafeezKhan-spec/AgriLiv-T5/internal/domain/service"
	"github.com/HafeezKhan-spec/AgriLiv-T5/internal/imaging"
)

// RuntimeClassifier adapts RuntimeClient to the VisionClassifier
// interface. Image decoding, preprocessing, softmax and arg-max all
// happen here; the runtime only computes the forward pass.
type RuntimeClassifier struct {
	client    *RuntimeClient
	model     string
	labels    []string
	inputSize int
}

// NewRuntimeClassifier creates a classifier bound to a loaded vision
// model. labels is the id2label table returned at load time.
func NewRuntimeClassifier(c *RuntimeClient, model string, labels []string, inputSize int) service.VisionClassifier {
	if inputSize <= 0 {
		inputSize = imaging.DefaultInputSize
	}
	return &RuntimeClassifier{
		client:    c,
		model:     model,
		labels:    labels,
		inputSize: inputSize,
	}
}

// Classify decodes the image, runs the forward pass and returns the
// arg-max class with its softmax probability
func (c *RuntimeClassifier) Classify(ctx context.Context, imageBytes []byte) (*entity.ClassificationResult, error) {
	img, err := imaging.Decode(imageBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", service.ErrDecode, err)
	}
	pixels := imaging.Normalize(img, c.inputSize)

	resp, err := c.client.Forward(ctx, c.model, pixels, c.inputSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", service.ErrInference, err)
	}
	if len(resp.Logits) == 0 {
		return nil, fmt.Errorf("%w: runtime returned no logits", service.ErrInference)
	}
	if len(resp.Logits) != len(c.labels) {
		return nil, fmt.Errorf("%w: %d logits for %d labels", service.ErrInference, len(resp.Logits), len(c.labels))
	}

	probs := softmax(resp.Logits)
	best := 0
	for i, p := range probs {
		if p > probs[best] {
			best = i
		}
	}

	return &entity.ClassificationResult{
		Label:      c.labels[best],
		Confidence: probs[best],
	}, nil
}

// softmax converts logits into a probability distribution, shifted by
// the max logit for numerical stability
func softmax(logits []float64) []float64 {
	max := logits[0]
	for _, v := range logits[1:] {
		if v > max {
			max = v
		}
	}

	probs := make([]float64, len(logits))
	var sum float64
	for i, v := range logits {
		probs[i] = math.Exp(v - max)
		sum += probs[i]
	}
	for i := range probs {
		probs[i] /= sum
	}
	return probs
}
