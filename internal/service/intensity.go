package service

import (
	"strings"
	"unicode"

	"empath-llm/internal/domain"
)

// Lexico estatico de modificadores de intensidad. El matching es por
// substring sobre el texto en minusculas.
var intensityModifiers = map[domain.Intensity][]string{
	domain.IntensityHigh: {
		"very", "extremely", "incredibly", "absolutely", "totally",
		"completely", "utterly", "really really", "so", "!!!",
		"tremendously", "immensely", "super", "insanely",
		"ridiculously", "hugely", "wildly", "overwhelmingly",
		"soooo", "nooo way", "yesss", "omg", "oh my god", "wow",
		"ugh", "argh", "not at all", "never", "no way",
	},
	domain.IntensityMedium: {
		"quite", "pretty", "rather", "fairly", "somewhat", "really",
		"relatively", "kind of", "sort of", "more or less", "moderately",
		"reasonably", "kinda", "pretty much",
	},
	domain.IntensityLow: {
		"a bit", "slightly", "little", "maybe", "perhaps", "not really",
		"not sure", "sorta", "i guess", "possibly", "kinda small",
		"barely", "hardly", "almost", "just a touch", "hardly ever", "scarcely",
	},
}

// ClassifyIntensity deriva el nivel de intensidad desde el pico de la
// distribucion y las senales superficiales del texto CRUDO (exclamaciones,
// proporcion de mayusculas, modificadores lexicos).
//
// La tabla se evalua de arriba hacia abajo y gana la primera fila que matchea:
// un pico alto sin enfasis superficial sigue siendo high (manda la confianza
// del modelo) y un pico bajo sin enfasis queda en low. Cualquier entrada
// anomala degrada a low, nunca propaga.
func ClassifyIntensity(dist domain.Distribution, text string) domain.Intensity {
	var peak float64
	if len(dist) > 0 {
		_, peak = dist.Peak()
	}

	exclam := strings.Count(text, "!")
	capsRatio := uppercaseRatio(text)

	lower := strings.ToLower(text)
	highMatch := matchesAny(lower, intensityModifiers[domain.IntensityHigh])
	medMatch := matchesAny(lower, intensityModifiers[domain.IntensityMedium])
	lowMatch := matchesAny(lower, intensityModifiers[domain.IntensityLow])

	switch {
	case peak >= 0.75:
		if exclam > 2 || capsRatio > 0.3 || highMatch {
			return domain.IntensityHigh
		}
		if exclam >= 1 || capsRatio >= 0.1 || medMatch {
			return domain.IntensityMedium
		}
		if lowMatch {
			return domain.IntensityLow
		}
		return domain.IntensityHigh
	case peak >= 0.45:
		if exclam >= 3 || capsRatio >= 0.3 || highMatch {
			return domain.IntensityHigh
		}
		if exclam >= 1 || capsRatio >= 0.1 || medMatch {
			return domain.IntensityMedium
		}
		if lowMatch {
			return domain.IntensityLow
		}
		return domain.IntensityMedium
	default:
		if exclam >= 3 || capsRatio >= 0.3 || highMatch {
			return domain.IntensityHigh
		}
		if exclam >= 1 || capsRatio >= 0.1 || medMatch {
			return domain.IntensityMedium
		}
		return domain.IntensityLow
	}
}

// uppercaseRatio calcula la fraccion de caracteres en mayuscula sobre el
// total de caracteres (0 para texto vacio).
func uppercaseRatio(text string) float64 {
	if text == "" {
		return 0
	}
	var upper, total int
	for _, r := range text {
		total++
		if unicode.IsUpper(r) {
			upper++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(upper) / float64(total)
}

func matchesAny(lower string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
