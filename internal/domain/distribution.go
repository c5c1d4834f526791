package domain

// Distribution mapea cada etiqueta de la taxonomia a un score no negativo.
// Una distribucion "completa" suma 1.0 (tolerancia flotante); solo el
// normalizador puede manipular distribuciones parciales.
type Distribution map[string]float64

// NewDistribution crea una distribucion con toda la taxonomia en 0.0.
func NewDistribution() Distribution {
	d := make(Distribution, len(emotionLabels))
	for _, label := range emotionLabels {
		d[label] = 0.0
	}
	return d
}

// DegenerateDistribution es el caso borde de suma cero: todo el peso en neutral.
func DegenerateDistribution() Distribution {
	d := NewDistribution()
	d[LabelNeutral] = 1.0
	return d
}

// Clone copia la distribucion para que los ajustes nunca muten la entrada.
func (d Distribution) Clone() Distribution {
	out := make(Distribution, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// Sum devuelve la masa total de la distribucion.
func (d Distribution) Sum() float64 {
	var total float64
	for _, v := range d {
		total += v
	}
	return total
}

// Peak devuelve la etiqueta con score maximo y su valor.
// Los empates se resuelven por orden canonico de la taxonomia, no por orden de mapa.
func (d Distribution) Peak() (string, float64) {
	best := LabelNeutral
	bestScore := -1.0
	for _, label := range emotionLabels {
		if score, ok := d[label]; ok && score > bestScore {
			best = label
			bestScore = score
		}
	}
	if bestScore < 0 {
		return LabelNeutral, 0
	}
	return best, bestScore
}
