package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"empath-llm/internal/domain"
)

// recentWindowSize es cuantos registros recientes ve el sintetizador.
const recentWindowSize = 10

// EmotionAnalysis es la vista publica del registro emocional de un mensaje.
type EmotionAnalysis struct {
	PrimaryEmotion string              `json:"primary_emotion"`
	Confidence     float64             `json:"confidence"`
	Intensity      domain.Intensity    `json:"intensity"`
	AllEmotions    domain.Distribution `json:"all_emotions"`
}

// ResponseMetadata acompana la respuesta sintetizada.
type ResponseMetadata struct {
	ResponseType        string   `json:"response_type"`
	CulturalContext     string   `json:"cultural_context"`
	FollowUpSuggestions []string `json:"follow_up_suggestions"`
}

// ConversationMetadata ubica la respuesta dentro de la sesion.
type ConversationMetadata struct {
	MessageCount int       `json:"message_count"`
	SessionID    string    `json:"session_id"`
	Timestamp    time.Time `json:"timestamp"`
}

// ChatResult es el payload completo de un mensaje procesado.
type ChatResult struct {
	BotResponse          string               `json:"bot_response"`
	EmotionAnalysis      EmotionAnalysis      `json:"emotion_analysis"`
	ResponseMetadata     ResponseMetadata     `json:"response_metadata"`
	ConversationMetadata ConversationMetadata `json:"conversation_metadata"`
}

// TrendInsights envuelve el reporte de tendencia con recomendaciones y el
// patron reciente de la sesion.
type TrendInsights struct {
	Status          string      `json:"status"`
	Trends          TrendReport `json:"trends"`
	RecentPattern   []string    `json:"recent_pattern"`
	Recommendations []string    `json:"recommendations"`
	PrimaryThemes   []string    `json:"primary_themes"`
}

// SessionSummary agrega toda la analitica de una sesion terminada o en curso.
type SessionSummary struct {
	SessionID        string            `json:"session_id"`
	StartTime        time.Time         `json:"start_time"`
	EndTime          time.Time         `json:"end_time"`
	TotalMessages    int               `json:"total_messages"`
	CulturalContext  string            `json:"cultural_context"`
	DominantEmotion  string            `json:"dominant_emotion"`
	EmotionCounts    map[string]int    `json:"emotion_distribution"`
	EmotionalRange   int               `json:"emotional_range"`
	Trends           TrendReport       `json:"trends"`
	IdentifiedThemes []string          `json:"identified_themes"`
	Quality          QualityAssessment `json:"conversation_quality"`
	Recommendations  []string          `json:"recommendations"`
}

// ChatService orquesta el pipeline completo por mensaje: deteccion,
// sintesis de respuesta y acumulacion de historial por sesion.
type ChatService struct {
	detector  *DetectorService
	responder *ResponderService
	trends    *TrendService
	profiler  *ProfilerService
	sessions  *SessionManager
	logger    *zap.Logger
}

// NewChatService cablea los servicios del pipeline conversacional.
func NewChatService(
	detector *DetectorService,
	responder *ResponderService,
	trends *TrendService,
	profiler *ProfilerService,
	sessions *SessionManager,
	logger *zap.Logger,
) *ChatService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatService{
		detector:  detector,
		responder: responder,
		trends:    trends,
		profiler:  profiler,
		sessions:  sessions,
		logger:    logger,
	}
}

// Sessions expone el registro de sesiones (lo usan los handlers y el CLI).
func (s *ChatService) Sessions() *SessionManager {
	return s.sessions
}

// ProcessMessage procesa un mensaje de usuario de punta a punta. El unico
// error posible es una sesion inexistente; el procesamiento en si es total
// y degrada a registro neutral ante cualquier fallo upstream.
func (s *ChatService) ProcessMessage(ctx context.Context, sessionID, text, cultureOverride string) (ChatResult, error) {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return ChatResult{}, fmt.Errorf("get session: %w", err)
	}

	culture := cultureOverride
	if culture == "" {
		culture = session.CulturalContext()
	}

	record := s.detector.Detect(ctx, text, culture)

	// La ventana reciente se captura ANTES de anexar el registro actual para
	// que la continuidad compare contra los intercambios previos.
	window := session.RecentRecords(recentWindowSize)
	response := s.responder.GetContextualResponse(ctx, record, window)

	session.AppendRecord(record)

	s.logger.Info("message processed",
		zap.String("session_id", sessionID),
		zap.String("emotion", record.PrimaryEmotion),
		zap.String("intensity", string(record.Intensity)),
	)

	return ChatResult{
		BotResponse: response.Response,
		EmotionAnalysis: EmotionAnalysis{
			PrimaryEmotion: record.PrimaryEmotion,
			Confidence:     record.Confidence,
			Intensity:      record.Intensity,
			AllEmotions:    record.Distribution,
		},
		ResponseMetadata: ResponseMetadata{
			ResponseType:        response.ResponseType,
			CulturalContext:     record.CulturalContext,
			FollowUpSuggestions: response.FollowUpSuggestions,
		},
		ConversationMetadata: ConversationMetadata{
			MessageCount: session.MessageCount(),
			SessionID:    session.ID,
			Timestamp:    time.Now().UTC(),
		},
	}, nil
}

// EmotionTrends devuelve la tendencia de la sesion mas recomendaciones
// derivadas de la emocion dominante.
func (s *ChatService) EmotionTrends(sessionID string) (TrendInsights, error) {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return TrendInsights{}, fmt.Errorf("get session: %w", err)
	}

	records := session.Records()
	if len(records) == 0 {
		return TrendInsights{Status: "No conversation data available"}, nil
	}

	report := s.trends.AnalyzeTrend(records)

	recent := session.RecentRecords(shortWindowSize)
	pattern := make([]string, 0, len(recent))
	for _, r := range recent {
		pattern = append(pattern, r.PrimaryEmotion)
	}

	return TrendInsights{
		Status:          "Analysis complete",
		Trends:          report,
		RecentPattern:   pattern,
		Recommendations: dominantEmotionRecommendations(report.DominantEmotion),
		PrimaryThemes:   s.profiler.IdentifyThemes(records),
	}, nil
}

// ConversationSummary compone la analitica completa de la sesion.
func (s *ChatService) ConversationSummary(sessionID string) (SessionSummary, error) {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return SessionSummary{}, fmt.Errorf("get session: %w", err)
	}

	records := session.Records()
	report := s.trends.AnalyzeTrend(records)
	profile := s.profiler.Profile(records)

	return SessionSummary{
		SessionID:        session.ID,
		StartTime:        session.CreatedAt,
		EndTime:          time.Now().UTC(),
		TotalMessages:    len(records),
		CulturalContext:  session.CulturalContext(),
		DominantEmotion:  report.DominantEmotion,
		EmotionCounts:    report.EmotionDistribution,
		EmotionalRange:   len(report.EmotionDistribution),
		Trends:           report,
		IdentifiedThemes: profile.Themes,
		Quality:          profile.Quality,
		Recommendations:  profile.Recommendations,
	}, nil
}

// dominantEmotionRecommendations sugiere acciones segun la emocion dominante.
func dominantEmotionRecommendations(dominant string) []string {
	switch dominant {
	case "sadness", "anger", "grief":
		return []string{
			"Consider focusing on positive coping strategies",
			"Professional support might be beneficial if these feelings persist",
		}
	case "joy", "love", "amusement":
		return []string{
			"Great to see positive emotions! Keep building on what's working",
		}
	default:
		return nil
	}
}
