package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"empath-llm/internal/classifier"
	"empath-llm/internal/domain"
	"empath-llm/internal/preprocess"
)

// DetectorService compone clasificacion, normalizacion, ajuste cultural e
// intensidad en un EmotionRecord inmutable por mensaje.
type DetectorService struct {
	classifier classifier.Classifier
	cultures   *domain.CultureRegistry
	logger     *zap.Logger
}

// NewDetectorService crea el builder de registros emocionales.
func NewDetectorService(cls classifier.Classifier, cultures *domain.CultureRegistry, logger *zap.Logger) *DetectorService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DetectorService{
		classifier: cls,
		cultures:   cultures,
		logger:     logger,
	}
}

// Detect es total: nunca devuelve error. Texto vacio, fallo del clasificador
// o datos inutilizables sustituyen el registro degradado canonico
// (neutral / 0.5 / low), jamas uno a medio llenar.
func (s *DetectorService) Detect(ctx context.Context, text, culturalContext string) domain.EmotionRecord {
	if culturalContext == "" {
		culturalContext = domain.DefaultCulture
	}

	if strings.TrimSpace(text) == "" {
		return domain.NewDegradedRecord(culturalContext, text)
	}

	rawScores, err := s.classifier.Classify(ctx, text)
	if err != nil {
		s.logger.Warn("classifier failed, degrading to neutral",
			zap.Error(err),
			zap.String("cultural_context", culturalContext),
		)
		return domain.NewDegradedRecord(culturalContext, text)
	}

	dist := NormalizeScores(rawScores)

	profile := s.cultures.Lookup(culturalContext)
	adjusted := AdjustForCulture(dist, profile)

	primary, confidence := adjusted.Peak()

	return domain.EmotionRecord{
		PrimaryEmotion:  primary,
		Confidence:      confidence,
		Distribution:    adjusted,
		Intensity:       ClassifyIntensity(adjusted, text),
		CulturalContext: culturalContext,
		SourceText:      text,
		ProcessedText:   preprocess.PreprocessText(text, preprocess.Options{Lemmatize: true}),
		CreatedAt:       time.Now().UTC(),
	}
}
