package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"empath-llm/internal/domain"
	"empath-llm/internal/llm"
	"empath-llm/internal/preprocess"
)

// LLMClassifier delega la clasificacion multi-etiqueta en un LLM que devuelve
// un objeto JSON etiqueta -> score. Cualquier fallo (HTTP, JSON, respuesta
// vacia) se devuelve como error para que el builder degrade a neutral.
type LLMClassifier struct {
	client llm.LLMClient
	logger *zap.Logger
}

// NewLLMClassifier construye el clasificador respaldado por LLM.
func NewLLMClassifier(client llm.LLMClient, logger *zap.Logger) *LLMClassifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LLMClassifier{client: client, logger: logger}
}

func (c *LLMClassifier) Classify(ctx context.Context, text string) (map[string]float64, error) {
	cleaned := preprocess.PreprocessText(text, preprocess.Options{Lemmatize: true})
	if cleaned == "" {
		cleaned = strings.TrimSpace(text)
	}
	if cleaned == "" {
		return nil, fmt.Errorf("empty text")
	}

	raw, err := c.client.Generate(ctx, c.buildPrompt(cleaned))
	if err != nil {
		return nil, fmt.Errorf("llm classify: %w", err)
	}

	jsonText := extractFirstJSONObject(cleanJSONResponse(raw))
	if jsonText == "" {
		c.logger.Warn("classifier returned no json object", zap.String("raw", raw))
		return nil, fmt.Errorf("no json object in classifier response")
	}

	var scores map[string]float64
	if err := json.Unmarshal([]byte(jsonText), &scores); err != nil {
		return nil, fmt.Errorf("parse classifier response: %w", err)
	}

	// Los scores negativos no tienen semantica de probabilidad; se descartan.
	for label, score := range scores {
		if score < 0 {
			delete(scores, label)
		}
	}
	return scores, nil
}

func (c *LLMClassifier) buildPrompt(text string) string {
	var sb strings.Builder
	sb.WriteString("You are a multi-label emotion classifier. Score the text below against each of these emotion labels:\n")
	sb.WriteString(strings.Join(domain.EmotionLabels(), ", "))
	sb.WriteString("\n\nReturn ONLY a JSON object mapping labels to scores in [0,1]. Omit labels that do not apply. No prose, no code fences.\n\nText:\n")
	sb.WriteString(text)
	return sb.String()
}
