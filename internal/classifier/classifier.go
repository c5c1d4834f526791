// Package classifier implementa la frontera classify(text): convierte texto
// en un mapeo disperso etiqueta -> score crudo. El mapeo puede venir vacio,
// parcial o con etiquetas desconocidas; el normalizador decide que hacer.
package classifier

import "context"

// Classifier produce scores crudos por etiqueta para un texto.
// Un error del clasificador equivale a "sin scores" para quien lo consume.
type Classifier interface {
	Classify(ctx context.Context, text string) (map[string]float64, error)
}
