package domain

// Intensity es la estimacion gruesa de cuan fuerte se expresa la emocion.
type Intensity string

const (
	IntensityLow    Intensity = "low"
	IntensityMedium Intensity = "medium"
	IntensityHigh   Intensity = "high"
)

// Weight devuelve el valor numerico usado para promediar intensidades
// (low=1, medium=2, high=3). Valores malformados pesan como low.
func (i Intensity) Weight() float64 {
	switch i {
	case IntensityMedium:
		return 2
	case IntensityHigh:
		return 3
	default:
		return 1
	}
}
