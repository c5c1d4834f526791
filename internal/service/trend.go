package service

import (
	"fmt"
	"strings"

	"empath-llm/internal/domain"
)

// Etiquetas direccionales de tendencia.
const (
	TrendStable           = "stable"
	TrendImproving        = "improving"
	TrendDeclining        = "declining"
	TrendMixed            = "mixed"
	TrendInsufficientData = "insufficient_data"
)

// defaultTrendWindow es la capacidad del buffer de emociones recientes.
const defaultTrendWindow = 10

const (
	shortWindowSize  = 3
	mediumWindowSize = 7
)

// TrendReport resume la direccion emocional de una conversacion.
type TrendReport struct {
	DominantEmotion     string         `json:"dominant_emotion"`
	EmotionDistribution map[string]int `json:"emotion_distribution"`
	AverageIntensity    float64        `json:"average_intensity"`
	ShortTerm           string         `json:"short_term"`
	MediumTerm          string         `json:"medium_term"`
	Overall             string         `json:"overall"`
	Trend               string         `json:"trend"`
	TotalMessages       int            `json:"total_messages"`
	Analysis            string         `json:"analysis"`
}

// emotionWindow es un FIFO de capacidad fija: al llenarse expulsa el mas
// viejo primero. Reemplaza el patron "historial completo y truncar".
type emotionWindow struct {
	buf   []string
	start int
	count int
}

func newEmotionWindow(capacity int) *emotionWindow {
	if capacity <= 0 {
		capacity = defaultTrendWindow
	}
	return &emotionWindow{buf: make([]string, capacity)}
}

// Push agrega una emocion; si el buffer esta lleno pisa la mas antigua.
func (w *emotionWindow) Push(emotion string) {
	idx := (w.start + w.count) % len(w.buf)
	w.buf[idx] = emotion
	if w.count < len(w.buf) {
		w.count++
		return
	}
	w.start = (w.start + 1) % len(w.buf)
}

// LastN devuelve las n emociones mas recientes en orden de llegada.
func (w *emotionWindow) LastN(n int) []string {
	if n > w.count {
		n = w.count
	}
	if n <= 0 {
		return nil
	}
	out := make([]string, 0, n)
	for i := w.count - n; i < w.count; i++ {
		out = append(out, w.buf[(w.start+i)%len(w.buf)])
	}
	return out
}

// TrendService computa tendencias sobre secuencias de registros.
type TrendService struct {
	windowSize int
}

// NewTrendService crea el analizador; windowSize <= 0 usa la capacidad default (10).
func NewTrendService(windowSize int) *TrendService {
	if windowSize <= 0 {
		windowSize = defaultTrendWindow
	}
	return &TrendService{windowSize: windowSize}
}

// AnalyzeTrend procesa el historial en orden de llegada y devuelve el reporte.
// Nunca falla: registros malformados cuentan como neutral/low.
func (s *TrendService) AnalyzeTrend(records []domain.EmotionRecord) TrendReport {
	if len(records) == 0 {
		return TrendReport{
			DominantEmotion:     domain.LabelNeutral,
			EmotionDistribution: map[string]int{},
			ShortTerm:           TrendInsufficientData,
			MediumTerm:          TrendInsufficientData,
			Overall:             TrendInsufficientData,
			Trend:               TrendStable,
			Analysis:            "No data available",
		}
	}

	counts := make(map[string]int, len(records))
	firstSeen := make([]string, 0, len(records))
	window := newEmotionWindow(s.windowSize)
	var intensitySum float64

	for _, r := range records {
		emotion := r.PrimaryEmotion
		if emotion == "" {
			emotion = domain.LabelNeutral
		}
		if _, ok := counts[emotion]; !ok {
			firstSeen = append(firstSeen, emotion)
		}
		counts[emotion]++
		window.Push(emotion)
		intensitySum += r.Intensity.Weight()
	}

	// Maximo estable sobre orden de primera aparicion: el desempate no puede
	// depender del orden de iteracion del mapa.
	dominant := firstSeen[0]
	for _, emotion := range firstSeen[1:] {
		if counts[emotion] > counts[dominant] {
			dominant = emotion
		}
	}

	shortTerm := calculateTrend(window.LastN(shortWindowSize))
	mediumTerm := calculateTrend(window.LastN(mediumWindowSize))

	overall := TrendMixed
	if shortTerm == mediumTerm {
		overall = shortTerm
	}

	trend := fmt.Sprintf("short-term: %s, mid-term: %s and overall: %s", shortTerm, mediumTerm, overall)

	return TrendReport{
		DominantEmotion:     dominant,
		EmotionDistribution: counts,
		AverageIntensity:    intensitySum / float64(len(records)),
		ShortTerm:           shortTerm,
		MediumTerm:          mediumTerm,
		Overall:             overall,
		Trend:               trend,
		TotalMessages:       len(records),
		Analysis:            fmt.Sprintf("Primary emotion: %s with %s trend", strings.ToUpper(dominant), trend),
	}
}

// calculateTrend resuelve la direccion de una ventana:
// todas iguales -> stable; mas positivas que negativas -> improving;
// mas negativas -> declining; empate -> mixed; ventana vacia -> insufficient_data.
func calculateTrend(emotions []string) string {
	if len(emotions) == 0 {
		return TrendInsufficientData
	}

	allSame := true
	var posCount, negCount int
	for _, e := range emotions {
		if e != emotions[0] {
			allSame = false
		}
		switch domain.ValenceOf(e) {
		case domain.ValencePositive:
			posCount++
		case domain.ValenceNegative:
			negCount++
		}
	}

	switch {
	case allSame:
		return TrendStable
	case posCount > negCount:
		return TrendImproving
	case negCount > posCount:
		return TrendDeclining
	default:
		return TrendMixed
	}
}
