package domain

import "time"

// EmotionRecord es la unidad atomica del historial: una decision estable por
// mensaje procesado. Se construye exactamente una vez y no se muta despues.
type EmotionRecord struct {
	PrimaryEmotion  string       `json:"primary_emotion"`
	Confidence      float64      `json:"confidence"`
	Distribution    Distribution `json:"all_emotions"`
	Intensity       Intensity    `json:"intensity"`
	CulturalContext string       `json:"cultural_context"`
	SourceText      string       `json:"source_text"`
	ProcessedText   string       `json:"processed_text,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
}

// NewDegradedRecord es el registro canonico que sustituye a cualquier fallo
// upstream: neutral, confianza 0.5, intensidad low. Nunca se devuelve un
// registro a medio construir.
func NewDegradedRecord(culturalContext, sourceText string) EmotionRecord {
	if culturalContext == "" {
		culturalContext = DefaultCulture
	}
	return EmotionRecord{
		PrimaryEmotion:  LabelNeutral,
		Confidence:      0.5,
		Distribution:    DegenerateDistribution(),
		Intensity:       IntensityLow,
		CulturalContext: culturalContext,
		SourceText:      sourceText,
		CreatedAt:       time.Now().UTC(),
	}
}
