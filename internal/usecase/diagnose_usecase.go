package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/HafeezKhan-spec/AgriLiv-T5/internal/adapter/cache"
	"github.com/HafeezKhan-spec/AgriLiv-T5/internal/domain/entity"
	"github.com/HafeezKhan-spec/AgriLiv-T5/internal/domain/service"
	"github.com/HafeezKhan-spec/AgriLiv-T5/internal/registry"
)

// reportParams are the fixed decoding parameters for remediation reports
var reportParams = service.GenerationParams{
	MaxLength:       256,
	NumBeams:        4,
	SkipSpecialToks: true,
}

// fallbackReport replaces degenerate or failed report generations.
// Classification has already succeeded at this point, so the caller
// still gets a valid diagnosis.
const fallbackReport = "Causes: Fungal, bacterial, or pest-related infection, often worsened by humidity and poor field hygiene.\n" +
	"Symptoms: Spots or discoloration on leaves, wilting, and reduced growth.\n" +
	"Cure: Remove affected plant parts and apply a suitable organic or locally recommended treatment.\n" +
	"Precautions: Use healthy seeds, rotate crops, and monitor the field regularly."

// DiagnoseInput represents an uploaded plant photo. CropType and
// Location are accepted but inert; the pipelines do not use them yet.
type DiagnoseInput struct {
	ImageBytes []byte
	CropType   string
	Location   string
}

// DiagnoseUsecase defines the image pipeline business logic
type DiagnoseUsecase interface {
	Diagnose(ctx context.Context, input *DiagnoseInput) (*entity.DiagnosticReport, error)
}

type diagnoseUsecase struct {
	models  *registry.Registry
	reports *cache.ReportCache
	logger  *zap.Logger
}

// NewDiagnoseUsecase creates a new diagnose usecase. The report cache
// may be nil, in which case every report is generated.
func NewDiagnoseUsecase(models *registry.Registry, reports *cache.ReportCache, logger *zap.Logger) DiagnoseUsecase {
	return &diagnoseUsecase{
		models:  models,
		reports: reports,
		logger:  logger,
	}
}

func (u *diagnoseUsecase) Diagnose(ctx context.Context, input *DiagnoseInput) (*entity.DiagnosticReport, error) {
	if input.CropType != "" || input.Location != "" {
		u.logger.Debug("classification metadata received",
			zap.String("crop_type", input.CropType),
			zap.String("location", input.Location))
	}

	classifier, err := u.models.Vision(ctx)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	cls, err := classifier.Classify(ctx, input.ImageBytes)
	if err != nil {
		return nil, err
	}

	reportText := u.reportFor(ctx, cls.Label)
	elapsed := time.Since(start).Milliseconds()

	report := entity.NewDiagnosticReport(cls, reportText, elapsed)

	u.logger.Info("image diagnosed",
		zap.String("label", cls.Label),
		zap.Int("confidence", report.Confidence),
		zap.String("severity", string(report.Severity)),
		zap.Int64("processing_ms", elapsed))

	return report, nil
}

// reportFor produces the remediation report for a label. The report
// stage degrades instead of failing: load or inference errors and
// degenerate output all substitute the fixed fallback report, so a
// successful classification always yields a complete diagnosis.
func (u *diagnoseUsecase) reportFor(ctx context.Context, label string) string {
	if text, ok := u.reports.Get(ctx, label); ok {
		return text
	}

	generator, err := u.models.ReportGenerator(ctx)
	if err != nil {
		u.logger.Error("report generator unavailable", zap.String("label", label), zap.Error(err))
		return fallbackReport
	}

	raw, err := generator.Generate(ctx, reportPrompt(label), reportParams)
	outcome := service.JudgeGeneration(raw, err)

	switch outcome.Kind {
	case service.OutcomeSuccess:
		u.reports.Set(ctx, label, outcome.Text)
		return outcome.Text
	case service.OutcomeDegenerate:
		u.logger.Warn("degenerate report output", zap.String("label", label))
		return fallbackReport
	default:
		u.logger.Error("report generation failed", zap.String("label", label), zap.Error(outcome.Err))
		return fallbackReport
	}
}

func reportPrompt(label string) string {
	return fmt.Sprintf("Generate disease name, causes, symptoms, cure and precautions for plant disease: %s", label)
}
