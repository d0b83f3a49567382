package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/HafeezKhan-spec/AgriLiv-T5/internal/domain/entity"
	"github.com/HafeezKhan-spec/AgriLiv-T5/internal/domain/service"
	"github.com/HafeezKhan-spec/AgriLiv-T5/internal/gating"
	"github.com/HafeezKhan-spec/AgriLiv-T5/internal/registry"
)

// ErrEmptyQuery rejects blank text queries. It is the only condition in
// the text pipeline that reaches the caller as an error; everything
// else degrades to a canned answer.
var ErrEmptyQuery = errors.New("query text is empty")

// outOfScopeAnswer is returned when no domain keyword matches
const outOfScopeAnswer = "I can help only with plant, fruit, livestock, and fish related questions."

// apologyAnswer replaces answers the generation backend failed to produce
const apologyAnswer = "Unable to process your question at the moment."

// fallbackAnswer replaces degenerate generation output. It covers the
// same four sections the specialist prompt asks for.
const fallbackAnswer = "Causes: Pest attack or environmental stress.\n" +
	"Symptoms: Damage to leaves, slow growth, or disease signs.\n" +
	"Prevention: Crop rotation, field sanitation, and regular monitoring.\n" +
	"General care or treatment: Neem-based products, bio-pesticides, and good soil health; consult an agriculture officer if needed."

// answerParams are the fixed decoding parameters for specialist answers
var answerParams = service.GenerationParams{
	MaxLength:       300,
	NumBeams:        5,
	NoRepeatNGram:   2,
	EarlyStopping:   true,
	SkipSpecialToks: true,
}

// QueryUsecase defines the text pipeline business logic
type QueryUsecase interface {
	Answer(ctx context.Context, query *entity.TextQuery) (*entity.TextAnswer, error)
}

type queryUsecase struct {
	models *registry.Registry
	logger *zap.Logger
}

// NewQueryUsecase creates a new text query usecase
func NewQueryUsecase(models *registry.Registry, logger *zap.Logger) QueryUsecase {
	return &queryUsecase{
		models: models,
		logger: logger,
	}
}

// Answer routes a text query through the domain gate, the image-intent
// check and finally specialist answer generation. Every query reaches
// exactly one of those three terminals.
func (u *queryUsecase) Answer(ctx context.Context, query *entity.TextQuery) (*entity.TextAnswer, error) {
	if query.IsEmpty() {
		return nil, ErrEmptyQuery
	}
	text := query.Normalized()

	domain := gating.DetectDomain(text)
	if domain == entity.DomainNone {
		// Out-of-scope answers report the plant domain, the contractual
		// default for responses that always carry a domain field.
		u.logger.Info("out-of-scope query", zap.String("text", text))
		return entity.NewTextualAnswer(entity.DomainPlant, outOfScopeAnswer), nil
	}

	if gating.DetectImageIntent(text) {
		imageQuery := gating.ExtractImageQuery(text)
		answer := fmt.Sprintf("This image is related to %s in the %s domain.", imageQuery, domain)
		u.logger.Info("image intent detected",
			zap.String("domain", string(domain)),
			zap.String("image_query", imageQuery))
		return entity.NewImageAnswer(domain, answer, imageQuery), nil
	}

	return u.generateAnswer(ctx, domain, text), nil
}

// generateAnswer runs the specialist generation stage. Failures never
// propagate past this boundary; they become the fixed apology answer.
func (u *queryUsecase) generateAnswer(ctx context.Context, domain entity.Domain, text string) *entity.TextAnswer {
	generator, err := u.models.AnswerGenerator(ctx)
	if err != nil {
		u.logger.Error("answer generator unavailable", zap.Error(err))
		return entity.NewTextualAnswer(domain, apologyAnswer)
	}

	raw, err := generator.Generate(ctx, specialistPrompt(domain, text), answerParams)
	outcome := service.JudgeGeneration(raw, err)

	switch outcome.Kind {
	case service.OutcomeSuccess:
		return entity.NewTextualAnswer(domain, outcome.Text)
	case service.OutcomeDegenerate:
		u.logger.Warn("degenerate answer output", zap.String("domain", string(domain)))
		return entity.NewTextualAnswer(domain, fallbackAnswer)
	default:
		u.logger.Error("answer generation failed", zap.Error(outcome.Err))
		return entity.NewTextualAnswer(domain, apologyAnswer)
	}
}

func specialistPrompt(domain entity.Domain, question string) string {
	return fmt.Sprintf(`You are an agricultural and veterinary domain specialist.

You have expertise in:
- Plants and crops
- Fruits
- Livestock and poultry
- Fish and aquaculture

Domain: %s

Rules:
- Explain causes and symptoms clearly
- Prefer organic, bio, and traditional methods first
- Do NOT mention dosage, concentration, or brand names
- Use simple farmer-friendly language
- Avoid technical jargon

Answer format:
Causes:
Symptoms:
Prevention:
General care or treatment:

Question:
%s
`, domain, question)
}
