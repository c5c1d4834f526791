package service

import "empath-llm/internal/domain"

// NormalizeScores convierte un mapeo disperso etiqueta -> score en una
// distribucion completa sobre toda la taxonomia que suma 1.0.
//
// Funcion pura: devuelve siempre una distribucion fresca, nunca un buffer
// compartido, para que sesiones concurrentes no se contaminen entre si.
// Etiquetas desconocidas se ignoran; si ninguna etiqueta reconocida aparece,
// neutral arranca en 0.5 como centinela antes de normalizar. Suma cero
// degrada a {neutral: 1.0} en vez de dividir por cero.
func NormalizeScores(raw map[string]float64) domain.Distribution {
	dist := domain.NewDistribution()

	recognized := false
	for label, score := range raw {
		if score < 0 || !domain.IsEmotionLabel(label) {
			continue
		}
		dist[label] = score
		recognized = true
	}

	if !recognized {
		dist[domain.LabelNeutral] = 0.5
	}

	total := dist.Sum()
	if total <= 0 {
		return domain.DegenerateDistribution()
	}

	for label, score := range dist {
		dist[label] = score / total
	}
	return dist
}
