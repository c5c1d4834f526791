package service

import (
	"strings"

	"empath-llm/internal/domain"
)

// Temas con su vocabulario. El orden de declaracion manda: los temas se
// reportan en este orden, no por frecuencia.
var themeOrder = []string{"work", "relationships", "health", "personal_growth", "daily_life"}

var themeKeywords = map[string][]string{
	"work":            {"work", "job", "career", "colleague", "boss", "office", "meeting"},
	"relationships":   {"friend", "family", "partner", "relationship", "love", "dating"},
	"health":          {"tired", "sick", "health", "doctor", "medicine", "pain"},
	"personal_growth": {"learning", "goal", "achievement", "success", "failure", "improve"},
	"daily_life":      {"day", "morning", "evening", "home", "routine", "schedule"},
}

const (
	maxThemes          = 3
	maxRecommendations = 4
)

// Emociones que disparan la recomendacion de soporte.
var distressEmotions = map[string]struct{}{
	"sadness": {},
	"anger":   {},
	"fear":    {},
}

// QualityAssessment califica la profundidad y calidad de la conversacion.
type QualityAssessment struct {
	Quality            string  `json:"quality"`
	Depth              string  `json:"depth"`
	EngagementScore    float64 `json:"engagement_score"`
	EmotionalOpenness  int     `json:"emotional_openness"`
	AvgMessageLength   float64 `json:"avg_message_length"`
}

// ProfileReport agrupa temas, calidad y recomendaciones de una conversacion.
type ProfileReport struct {
	Themes          []string          `json:"themes"`
	Quality         QualityAssessment `json:"quality"`
	Recommendations []string          `json:"recommendations"`
	TotalMessages   int               `json:"total_messages"`
}

// ProfilerService deriva perfiles conversacionales del historial completo.
// Todas sus operaciones son funciones puras sobre el historial recibido.
type ProfilerService struct{}

// NewProfilerService crea el perfilador.
func NewProfilerService() *ProfilerService {
	return &ProfilerService{}
}

// Profile computa el reporte completo sobre el historial.
func (s *ProfilerService) Profile(records []domain.EmotionRecord) ProfileReport {
	return ProfileReport{
		Themes:          s.IdentifyThemes(records),
		Quality:         s.AssessQuality(records),
		Recommendations: s.Recommendations(records),
		TotalMessages:   len(records),
	}
}

// IdentifyThemes concatena los textos fuente en minusculas y marca cada tema
// cuya keyword aparezca como substring. Devuelve a lo sumo los primeros 3
// temas en orden declarado.
func (s *ProfilerService) IdentifyThemes(records []domain.EmotionRecord) []string {
	if len(records) == 0 {
		return nil
	}

	var sb strings.Builder
	for i, r := range records {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strings.ToLower(r.SourceText))
	}
	allText := sb.String()

	themes := make([]string, 0, maxThemes)
	for _, theme := range themeOrder {
		for _, kw := range themeKeywords[theme] {
			if strings.Contains(allText, kw) {
				themes = append(themes, theme)
				break
			}
		}
		if len(themes) == maxThemes {
			break
		}
	}
	return themes
}

// AssessQuality evalua calidad/profundidad sobre largo medio de mensaje y
// variedad emocional observada.
func (s *ProfilerService) AssessQuality(records []domain.EmotionRecord) QualityAssessment {
	if len(records) == 0 {
		return QualityAssessment{Quality: "unknown", Depth: "shallow"}
	}

	var totalLen int
	variety := make(map[string]struct{})
	for _, r := range records {
		totalLen += len(r.SourceText)
		variety[r.PrimaryEmotion] = struct{}{}
	}

	avgLen := float64(totalLen) / float64(len(records))
	emotionVariety := len(variety)

	quality := "basic"
	if avgLen > 30 && emotionVariety > 4 {
		quality = "good"
	}
	depth := "moderate"
	if len(records) > 5 && emotionVariety > 6 {
		depth = "deep"
	}

	engagement := float64(len(records) + emotionVariety)
	if engagement > 10 {
		engagement = 10
	}

	return QualityAssessment{
		Quality:           quality,
		Depth:             depth,
		EngagementScore:   engagement,
		EmotionalOpenness: emotionVariety,
		AvgMessageLength:  avgLen,
	}
}

// Recommendations genera a lo sumo 4 recomendaciones: primero las basadas en
// la fraccion de registros negativos, despues una por tema detectado.
func (s *ProfilerService) Recommendations(records []domain.EmotionRecord) []string {
	if len(records) == 0 {
		return []string{"Start a conversation to get personalized recommendations"}
	}

	var negative int
	for _, r := range records {
		if _, ok := distressEmotions[r.PrimaryEmotion]; ok {
			negative++
		}
	}
	negativeRatio := float64(negative) / float64(len(records))

	recommendations := make([]string, 0, maxRecommendations)
	if negativeRatio > 0.6 {
		recommendations = append(recommendations,
			"Consider seeking additional emotional support",
			"Practice mindfulness or stress-reduction techniques",
		)
	} else if negativeRatio < 0.2 {
		recommendations = append(recommendations,
			"Keep maintaining your positive mindset!",
			"Share your positive energy with others",
		)
	}

	themes := s.IdentifyThemes(records)
	for _, theme := range themes {
		switch theme {
		case "work":
			recommendations = append(recommendations, "Consider work-life balance strategies")
		case "relationships":
			recommendations = append(recommendations, "Focus on healthy communication patterns")
		}
	}

	if len(recommendations) > maxRecommendations {
		recommendations = recommendations[:maxRecommendations]
	}
	return recommendations
}
