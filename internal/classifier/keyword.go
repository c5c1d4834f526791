package classifier

import (
	"context"
	"strings"
)

// emotionKeywords asocia emociones de la taxonomia con vocabulario tipico.
// Cada ocurrencia suma 1 al score crudo de su emocion.
var emotionKeywords = map[string][]string{
	"joy": {
		"happy", "excited", "thrilled", "delighted", "elated", "joyful",
		"cheerful", "pleased", "glad", "fantastic", "amazing", "wonderful",
		"great", "awesome", "excellent", "perfect", "love", "celebrating",
		"celebration", "success", "achievement", "won", "victory", "proud",
	},
	"sadness": {
		"sad", "depressed", "down", "blue", "unhappy", "miserable",
		"heartbroken", "crying", "tears", "lonely", "empty", "disappointed",
		"grief", "sorrow", "hurt", "pain", "loss", "devastated", "hopeless",
		"despair", "rejected", "abandoned", "betrayed", "failed",
	},
	"anger": {
		"angry", "furious", "mad", "rage", "irritated", "annoyed",
		"frustrated", "outraged", "livid", "enraged", "infuriated",
		"pissed", "hate", "fed up", "stupid", "ridiculous",
		"unfair", "cheated", "scammed", "terrible", "awful",
	},
	"fear": {
		"scared", "afraid", "frightened", "terrified", "worried",
		"anxious", "nervous", "concerned", "panic", "stress", "overwhelmed",
		"helpless", "vulnerable", "insecure", "uncertain", "doubt",
		"apprehensive", "tense", "uneasy", "paranoid", "threatened",
	},
	"surprise": {
		"surprised", "shocked", "amazed", "astonished", "stunned",
		"unexpected", "wow", "unbelievable", "incredible", "remarkable",
		"extraordinary", "sudden", "abrupt", "out of nowhere", "blindsided",
	},
	"disgust": {
		"disgusting", "gross", "revolting", "repulsive", "sickening",
		"nauseating", "appalling", "horrible", "repugnant", "vile",
		"offensive", "distasteful", "unpleasant", "yucky",
	},
	"gratitude": {
		"thank", "thanks", "grateful", "appreciate", "appreciated",
	},
	"confusion": {
		"confused", "confusing", "unclear", "lost", "puzzled",
		"makes no sense", "don't understand",
	},
}

// KeywordClassifier es el clasificador de respaldo sin dependencias externas:
// cuenta ocurrencias de keywords por emocion sobre el texto en minusculas.
type KeywordClassifier struct{}

// NewKeywordClassifier crea el clasificador por keywords.
func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{}
}

// Classify nunca falla: texto sin coincidencias devuelve un mapeo vacio.
func (k *KeywordClassifier) Classify(_ context.Context, text string) (map[string]float64, error) {
	scores := make(map[string]float64)
	if strings.TrimSpace(text) == "" {
		return scores, nil
	}

	lower := strings.ToLower(text)
	for emotion, keywords := range emotionKeywords {
		var count float64
		for _, kw := range keywords {
			count += float64(strings.Count(lower, kw))
		}
		if count > 0 {
			scores[emotion] = count
		}
	}
	return scores, nil
}
