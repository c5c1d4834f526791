// Package preprocess implementa la limpieza de texto previa a la
// clasificacion: normalizacion, stop words y lematizacion heuristica.
// El clasificador de intensidad NO pasa por aca: lee el texto crudo.
package preprocess

import (
	"regexp"
	"strings"
)

var (
	urlRe        = regexp.MustCompile(`http[s]?://\S+`)
	emailRe      = regexp.MustCompile(`\S+@\S+`)
	nonLetterRe  = regexp.MustCompile(`[^a-zA-Z\s]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// stopWords es un subconjunto ingles suficiente para texto conversacional.
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"but": {}, "by": {}, "for": {}, "from": {}, "has": {}, "he": {},
	"her": {}, "his": {}, "i": {}, "in": {}, "is": {}, "it": {}, "its": {},
	"of": {}, "on": {}, "or": {}, "she": {}, "that": {}, "the": {},
	"their": {}, "them": {}, "there": {}, "these": {}, "they": {}, "this": {},
	"to": {}, "was": {}, "we": {}, "were": {}, "will": {}, "with": {},
	"you": {}, "your": {},
}

// CleanText baja a minusculas y elimina URLs, emails, digitos y simbolos,
// dejando solo letras y espacios simples.
func CleanText(text string) string {
	text = strings.ToLower(text)
	text = urlRe.ReplaceAllString(text, "")
	text = emailRe.ReplaceAllString(text, "")
	text = nonLetterRe.ReplaceAllString(text, "")
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// RemoveStopWords filtra palabras funcionales sin carga semantica.
func RemoveStopWords(text string) string {
	if text == "" {
		return ""
	}
	words := strings.Fields(text)
	filtered := make([]string, 0, len(words))
	for _, w := range words {
		if _, ok := stopWords[strings.ToLower(w)]; ok {
			continue
		}
		filtered = append(filtered, w)
	}
	return strings.Join(filtered, " ")
}

// LemmatizeText reduce palabras a una raiz aproximada recortando sufijos
// comunes. Es deliberadamente simple: suficiente para matching de keywords.
func LemmatizeText(text string) string {
	if text == "" {
		return ""
	}
	words := strings.Fields(text)
	for i, w := range words {
		words[i] = lemmatizeWord(w)
	}
	return strings.Join(words, " ")
}

func lemmatizeWord(word string) string {
	switch {
	case len(word) > 5 && strings.HasSuffix(word, "ies"):
		return word[:len(word)-3] + "y"
	case len(word) > 5 && strings.HasSuffix(word, "ing"):
		return word[:len(word)-3]
	case len(word) > 4 && strings.HasSuffix(word, "ed"):
		return word[:len(word)-2]
	case len(word) > 3 && strings.HasSuffix(word, "s") && !strings.HasSuffix(word, "ss"):
		return word[:len(word)-1]
	default:
		return word
	}
}

// Options controla los pasos opcionales del pipeline.
type Options struct {
	RemoveStops bool
	Lemmatize   bool
}

// PreprocessText ejecuta el pipeline completo de limpieza.
func PreprocessText(text string, opts Options) string {
	processed := CleanText(text)
	if opts.RemoveStops {
		processed = RemoveStopWords(processed)
	}
	if opts.Lemmatize {
		processed = LemmatizeText(processed)
	}
	return processed
}
