package service

import "empath-llm/internal/domain"

// Multiplicadores por estilo de expresion emocional. Solo afectan etiquetas
// cuya valencia NO es neutral_or_ambiguous.
const (
	reservedFactor   = 0.8
	expressiveFactor = 1.2
)

// AdjustForCulture aplica el multiplicador de expresion del perfil cultural a
// la distribucion y re-normaliza. Es un refinamiento best-effort: ante
// cualquier condicion anomala devuelve la distribucion original sin tocar.
//
// Tabla de decision por estilo:
//   - reserved:   etiquetas no neutrales * 0.8; las neutrales quedan intactas
//     (no reciben boost: su peso relativo ya sube al renormalizar).
//   - expressive: etiquetas no neutrales * 1.2; neutrales intactas.
//   - cualquier otro estilo (adaptive, balanced, desconocido): identidad.
func AdjustForCulture(dist domain.Distribution, profile domain.CulturalProfile) domain.Distribution {
	if len(dist) == 0 {
		return dist
	}

	var factor float64
	switch profile.EmotionalExpression {
	case domain.ExpressionReserved:
		factor = reservedFactor
	case domain.ExpressionExpressive:
		factor = expressiveFactor
	default:
		return dist
	}

	adjusted := dist.Clone()
	for label, score := range adjusted {
		if domain.ValenceOf(label) != domain.ValenceNeutral {
			adjusted[label] = score * factor
		}
	}

	// No deberia ocurrir con una distribucion completa, pero el guard evita
	// propagar una division por cero.
	total := adjusted.Sum()
	if total <= 0 {
		return dist
	}

	for label, score := range adjusted {
		adjusted[label] = score / total
	}
	return adjusted
}
