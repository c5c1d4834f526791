package domain

// Valence clasifica cada emocion segun su carga afectiva.
type Valence string

const (
	ValencePositive Valence = "positive"
	ValenceNegative Valence = "negative"
	ValenceNeutral  Valence = "neutral_or_ambiguous"
)

// LabelNeutral es la emocion de respaldo para toda senal desconocida o degradada.
const LabelNeutral = "neutral"

// emotionLabels fija el orden canonico de la taxonomia (27 emociones + neutral).
// El orden importa: los scores normalizados y los desempates iteran sobre el.
var emotionLabels = []string{
	"admiration", "amusement", "anger", "annoyance", "approval", "caring",
	"confusion", "curiosity", "desire", "disappointment", "disapproval",
	"disgust", "embarrassment", "excitement", "fear", "gratitude", "grief",
	"joy", "love", "nervousness", "optimism", "pride", "realization",
	"relief", "remorse", "sadness", "surprise", LabelNeutral,
}

// valenceByLabel es configuracion estatica, nunca derivada en runtime.
var valenceByLabel = map[string]Valence{
	"admiration":     ValencePositive,
	"amusement":      ValencePositive,
	"approval":       ValencePositive,
	"caring":         ValencePositive,
	"curiosity":      ValencePositive,
	"desire":         ValencePositive,
	"excitement":     ValencePositive,
	"gratitude":      ValencePositive,
	"joy":            ValencePositive,
	"love":           ValencePositive,
	"optimism":       ValencePositive,
	"pride":          ValencePositive,
	"realization":    ValencePositive,
	"relief":         ValencePositive,
	"anger":          ValenceNegative,
	"annoyance":      ValenceNegative,
	"disappointment": ValenceNegative,
	"disapproval":    ValenceNegative,
	"disgust":        ValenceNegative,
	"embarrassment":  ValenceNegative,
	"fear":           ValenceNegative,
	"grief":          ValenceNegative,
	"nervousness":    ValenceNegative,
	"remorse":        ValenceNegative,
	"sadness":        ValenceNegative,
	"surprise":       ValenceNeutral,
	"confusion":      ValenceNeutral,
	LabelNeutral:     ValenceNeutral,
}

// EmotionLabels devuelve la taxonomia completa en orden canonico.
func EmotionLabels() []string {
	out := make([]string, len(emotionLabels))
	copy(out, emotionLabels)
	return out
}

// IsEmotionLabel indica si la etiqueta pertenece a la taxonomia.
func IsEmotionLabel(label string) bool {
	_, ok := valenceByLabel[label]
	return ok
}

// ValenceOf devuelve la clase de valencia de una etiqueta.
// Etiquetas desconocidas cuentan como neutras para no romper conteos de tendencia.
func ValenceOf(label string) Valence {
	if v, ok := valenceByLabel[label]; ok {
		return v
	}
	return ValenceNeutral
}
