package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/HafeezKhan-spec/AgriLiv-T5/internal/domain/entity"
	"github.com/HafeezKhan-spec/AgriLiv-T5/internal/usecase"
)

// DiagnoseHandler handles plant photo classification requests
type DiagnoseHandler struct {
	diagnoseUC usecase.DiagnoseUsecase
	modelTag   string
	logger     *zap.Logger
}

// NewDiagnoseHandler creates a new diagnose handler. The model tag
// identifies the vision model in responses.
func NewDiagnoseHandler(diagnoseUC usecase.DiagnoseUsecase, modelTag string, logger *zap.Logger) *DiagnoseHandler {
	return &DiagnoseHandler{
		diagnoseUC: diagnoseUC,
		modelTag:   modelTag,
		logger:     logger,
	}
}

// ClassificationPayload is the classification part of the diagnosis
// response
type ClassificationPayload struct {
	DiseaseDetected  bool            `json:"diseaseDetected"`
	DiseaseName      string          `json:"diseaseName"`
	Confidence       int             `json:"confidence"`
	Severity         entity.Severity `json:"severity"`
	ProcessingTimeMs int64           `json:"processingTime"`
	Model            string          `json:"model"`
}

// DiagnosisData is the payload of a successful classification response
type DiagnosisData struct {
	Classification ClassificationPayload `json:"classification"`
	Report         string                `json:"report"`
}

// Classify handles POST /api/v1/classify
func (h *DiagnoseHandler) Classify(c *gin.Context) {
	imageBytes, err := ReadImageFile(c, "file")
	if err != nil {
		HandleInvalidRequest(c, err.Error())
		return
	}

	input := &usecase.DiagnoseInput{
		ImageBytes: imageBytes,
		CropType:   c.PostForm("cropType"),
		Location:   c.PostForm("location"),
	}

	report, err := h.diagnoseUC.Diagnose(c.Request.Context(), input)
	if err != nil {
		HandleUsecaseError(c, h.logger, err)
		return
	}

	data := DiagnosisData{
		Classification: ClassificationPayload{
			DiseaseDetected:  report.DiseaseDetected,
			DiseaseName:      report.DiseaseName,
			Confidence:       report.Confidence,
			Severity:         report.Severity,
			ProcessingTimeMs: report.ProcessingTimeMs,
			Model:            h.modelTag,
		},
		Report: report.ReportText,
	}

	respondSuccess(c, http.StatusOK, "classification completed", data)
}
