package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"empath-llm/internal/domain"
	"empath-llm/internal/llm"
)

// fallbackResponse se usa cuando no hay LLM disponible o su llamada falla.
const fallbackResponse = "I hear you, and I'm here to listen."

// ResponsePayload es el resultado de sintetizar una respuesta empatica.
type ResponsePayload struct {
	Response            string   `json:"response"`
	EmotionAddressed    string   `json:"emotion_addressed"`
	CulturalContext     string   `json:"cultural_context"`
	Confidence          float64  `json:"confidence"`
	Intensity           string   `json:"intensity"`
	ResponseType        string   `json:"response_type"`
	FollowUpSuggestions []string `json:"follow_up_suggestions"`
}

// ResponderService implementa la frontera synthesize_response: arma una
// directiva estructurada desde el registro emocional y deja que el LLM
// produzca la prosa. Es stateless: la continuidad sale de la ventana de
// historial que pasa el caller, no de memoria interna compartida.
type ResponderService struct {
	llmClient llm.LLMClient
	cultures  *domain.CultureRegistry
	logger    *zap.Logger
}

// NewResponderService crea el sintetizador de respuestas. llmClient puede ser
// nil: en ese caso toda respuesta usa el fallback empatico fijo.
func NewResponderService(llmClient llm.LLMClient, cultures *domain.CultureRegistry, logger *zap.Logger) *ResponderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResponderService{
		llmClient: llmClient,
		cultures:  cultures,
		logger:    logger,
	}
}

// GetContextualResponse genera la respuesta considerando la ventana reciente:
// si la misma emocion se repite en los dos ultimos registros y en el actual,
// la respuesta reconoce la persistencia en vez de reaccionar de cero.
func (s *ResponderService) GetContextualResponse(ctx context.Context, record domain.EmotionRecord, window []domain.EmotionRecord) ResponsePayload {
	continuity := false
	if len(window) >= 2 {
		prev := window[len(window)-2:]
		continuity = prev[0].PrimaryEmotion == record.PrimaryEmotion &&
			prev[1].PrimaryEmotion == record.PrimaryEmotion
	}

	payload := s.generate(ctx, record, continuity)
	if continuity {
		payload.ResponseType = "continuity_aware"
	}
	return payload
}

// generate es total: un fallo del LLM degrada al fallback, nunca propaga.
func (s *ResponderService) generate(ctx context.Context, record domain.EmotionRecord, continuity bool) ResponsePayload {
	payload := ResponsePayload{
		Response:            fallbackResponse,
		EmotionAddressed:    record.PrimaryEmotion,
		CulturalContext:     record.CulturalContext,
		Confidence:          record.Confidence,
		Intensity:           string(record.Intensity),
		ResponseType:        classifyResponseType(record.PrimaryEmotion),
		FollowUpSuggestions: suggestionsFor(record.PrimaryEmotion),
	}

	if s.llmClient == nil {
		return payload
	}

	prompt := s.buildResponsePrompt(record, continuity)
	response, err := s.llmClient.Generate(ctx, prompt)
	if err != nil {
		s.logger.Warn("response synthesis failed, using fallback",
			zap.Error(err),
			zap.String("emotion", record.PrimaryEmotion),
		)
		return payload
	}

	if trimmed := strings.TrimSpace(response); trimmed != "" {
		payload.Response = trimmed
	}
	return payload
}

// buildResponsePrompt arma la directiva estructurada para el LLM.
func (s *ResponderService) buildResponsePrompt(record domain.EmotionRecord, continuity bool) string {
	profile := s.cultures.Lookup(record.CulturalContext)
	components := directivesFor(record.PrimaryEmotion, profile.Name)

	var sb strings.Builder

	sb.WriteString("You are an empathetic, culturally-aware assistant. Craft a brief, supportive reply aligned with the user's emotional state and cultural context.\n\n")

	// 1. Analisis emocional
	sb.WriteString("=== EMOTION ANALYSIS ===\n")
	sb.WriteString(fmt.Sprintf("- primary_emotion: %s\n", record.PrimaryEmotion))
	sb.WriteString(fmt.Sprintf("- confidence: %.2f\n", record.Confidence))
	sb.WriteString(fmt.Sprintf("- intensity: %s\n", record.Intensity))
	sb.WriteString(fmt.Sprintf("- user_message: %q\n\n", record.SourceText))

	// 2. Perfil cultural
	sb.WriteString("=== CULTURAL PROFILE ===\n")
	sb.WriteString(fmt.Sprintf("- context: %s\n", profile.Name))
	sb.WriteString(fmt.Sprintf("- communication_style: %s\n", profile.CommunicationStyle))
	sb.WriteString(fmt.Sprintf("- tone_preference: %s\n", profile.TonePreference))
	sb.WriteString(fmt.Sprintf("- support_preferences: %s\n\n", strings.Join(profile.SupportPreferences, ", ")))

	// 3. Directivas por componente, en orden fijo
	sb.WriteString("=== RESPONSE DIRECTIVES (use in this order, skip missing ones) ===\n")
	for _, component := range componentOrder {
		if directive, ok := components[component]; ok {
			sb.WriteString(fmt.Sprintf("- %s: %s\n", component, directive))
		}
	}
	sb.WriteString("\n")

	if continuity {
		sb.WriteString("The user has expressed this same emotion over several consecutive messages; acknowledge that persistence naturally instead of reacting as if it were new.\n\n")
	}

	// 4. Reglas de estilo
	sb.WriteString("=== STYLE RULES ===\n")
	sb.WriteString("- 2-3 sentences total (30-70 words); never fewer than 2.\n")
	sb.WriteString("- Integrate directives naturally; never mention component labels.\n")
	sb.WriteString("- If intensity is high and confidence > 0.75, use calm, stabilizing language.\n")
	sb.WriteString("- If confidence < 0.5, hedge softly (\"it sounds like...\").\n")
	sb.WriteString("- At most one brief question, only if a questions/curiosity/guidance directive exists.\n")
	sb.WriteString("- No emojis, no role self-reference, no disclosure of internal analysis.\n")
	sb.WriteString("- Plain text only.\n")

	return sb.String()
}
