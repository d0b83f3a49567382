// Package registry owns the process-lifetime model handles. Each kind
// is loaded at most once, on first use, even under concurrent first
// requests; a failed load stays failed until the process restarts.
package registry

import (
	"context"
	"fmt"
	"sync"

	"github.com/HafeezKhan-spec/AgriLiv-T5/internal/domain/service"
)

// Kind identifies a model slot in the registry
type Kind string

const (
	KindVision Kind = "vision"
	KindReport Kind = "report"
	KindAnswer Kind = "answer"
)

// VisionLoader constructs the vision classifier handle and returns the
// loaded model identifier
type VisionLoader func(ctx context.Context) (service.VisionClassifier, string, error)

// GeneratorLoader constructs a text generator handle and returns the
// loaded model identifier
type GeneratorLoader func(ctx context.Context) (service.TextGenerator, string, error)

// Registry holds the singleton model handles. Handles are immutable
// after construction and shared read-only across requests; the only
// guarded path is the first load, protected by sync.Once per kind
// rather than a racy null check.
type Registry struct {
	loadVision VisionLoader
	loadReport GeneratorLoader
	loadAnswer GeneratorLoader

	visionOnce sync.Once
	vision     service.VisionClassifier
	visionID   string
	visionErr  error

	reportOnce sync.Once
	report     service.TextGenerator
	reportID   string
	reportErr  error

	answerOnce sync.Once
	answer     service.TextGenerator
	answerID   string
	answerErr  error
}

// New creates a registry with one loader per model kind
func New(vision VisionLoader, report, answer GeneratorLoader) *Registry {
	return &Registry{
		loadVision: vision,
		loadReport: report,
		loadAnswer: answer,
	}
}

// Vision returns the vision classifier, loading it on first use
func (r *Registry) Vision(ctx context.Context) (service.VisionClassifier, error) {
	r.visionOnce.Do(func() {
		r.vision, r.visionID, r.visionErr = r.loadVision(ctx)
		if r.visionErr != nil {
			r.visionErr = fmt.Errorf("%w: %s: %v", service.ErrModelLoad, KindVision, r.visionErr)
		}
	})
	return r.vision, r.visionErr
}

// ReportGenerator returns the disease-report generator, loading it on
// first use
func (r *Registry) ReportGenerator(ctx context.Context) (service.TextGenerator, error) {
	r.reportOnce.Do(func() {
		r.report, r.reportID, r.reportErr = r.loadReport(ctx)
		if r.reportErr != nil {
			r.reportErr = fmt.Errorf("%w: %s: %v", service.ErrModelLoad, KindReport, r.reportErr)
		}
	})
	return r.report, r.reportErr
}

// AnswerGenerator returns the text-answer generator, loading it on
// first use
func (r *Registry) AnswerGenerator(ctx context.Context) (service.TextGenerator, error) {
	r.answerOnce.Do(func() {
		r.answer, r.answerID, r.answerErr = r.loadAnswer(ctx)
		if r.answerErr != nil {
			r.answerErr = fmt.Errorf("%w: %s: %v", service.ErrModelLoad, KindAnswer, r.answerErr)
		}
	})
	return r.answer, r.answerErr
}

// Identifiers triggers loading of every kind and returns the loaded
// model identifiers. The first load failure is returned alongside the
// identifiers of the kinds that did load.
func (r *Registry) Identifiers(ctx context.Context) (map[Kind]string, error) {
	ids := make(map[Kind]string, 3)
	var firstErr error

	if _, err := r.Vision(ctx); err != nil {
		firstErr = err
	} else {
		ids[KindVision] = r.visionID
	}
	if _, err := r.ReportGenerator(ctx); err != nil {
		if firstErr == nil {
			firstErr = err
		}
	} else {
		ids[KindReport] = r.reportID
	}
	if _, err := r.AnswerGenerator(ctx); err != nil {
		if firstErr == nil {
			firstErr = err
		}
	} else {
		ids[KindAnswer] = r.answerID
	}

	return ids, firstErr
}
