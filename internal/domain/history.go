package domain

// ConversationHistory es la secuencia append-only de registros de una sesion.
// Crece un registro por mensaje procesado y nunca se muta in place. No es
// segura para mutacion concurrente: cada sesion es duena exclusiva de la suya
// y sincroniza afuera si hace falta.
type ConversationHistory struct {
	records []EmotionRecord
}

// Append agrega un registro en orden de llegada.
func (h *ConversationHistory) Append(record EmotionRecord) {
	h.records = append(h.records, record)
}

// Len devuelve la cantidad de registros acumulados.
func (h *ConversationHistory) Len() int {
	return len(h.records)
}

// Records devuelve una copia del historial completo, en orden de insercion.
func (h *ConversationHistory) Records() []EmotionRecord {
	out := make([]EmotionRecord, len(h.records))
	copy(out, h.records)
	return out
}

// LastN devuelve una copia del sufijo mas reciente (a lo sumo n registros).
func (h *ConversationHistory) LastN(n int) []EmotionRecord {
	if n <= 0 || len(h.records) == 0 {
		return nil
	}
	start := len(h.records) - n
	if start < 0 {
		start = 0
	}
	out := make([]EmotionRecord, len(h.records)-start)
	copy(out, h.records[start:])
	return out
}
