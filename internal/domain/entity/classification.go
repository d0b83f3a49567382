package entity

import "strings"

// Severity represents the coarse severity bucket derived from
// classification confidence
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// SeverityForConfidence maps an integer confidence percent (0-100)
// to a severity bucket: >=80 high, 60-79 medium, <60 low
func SeverityForConfidence(percent int) Severity {
	switch {
	case percent >= 80:
		return SeverityHigh
	case percent >= 60:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// ClassificationResult represents the outcome of a single vision
// model invocation. Confidence is a probability in [0,1].
type ClassificationResult struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// ConfidencePercent converts the probability to an integer percent.
// Truncation (not rounding) is the documented choice here.
func (r *ClassificationResult) ConfidencePercent() int {
	return int(r.Confidence * 100)
}

// DiagnosticReport represents the full result of the image pipeline
type DiagnosticReport struct {
	DiseaseDetected  bool     `json:"diseaseDetected"`
	DiseaseName      string   `json:"diseaseName"`
	Confidence       int      `json:"confidence"`
	Severity         Severity `json:"severity"`
	ProcessingTimeMs int64    `json:"processingTime"`
	ReportText       string   `json:"report"`
}

// NewDiagnosticReport builds a DiagnosticReport from a classification
// result. DiseaseDetected is true iff the label, lower-cased, is not
// exactly "healthy".
func NewDiagnosticReport(cls *ClassificationResult, reportText string, processingMs int64) *DiagnosticReport {
	percent := cls.ConfidencePercent()
	return &DiagnosticReport{
		DiseaseDetected:  strings.ToLower(cls.Label) != "healthy",
		DiseaseName:      cls.Label,
		Confidence:       percent,
		Severity:         SeverityForConfidence(percent),
		ProcessingTimeMs: processingMs,
		ReportText:       reportText,
	}
}
