package classifier

import "context"

// MockClassifier permite tests sin clasificador real.
type MockClassifier struct {
	Scores map[string]float64
	Err    error
}

func (m *MockClassifier) Classify(ctx context.Context, text string) (map[string]float64, error) {
	return m.Scores, m.Err
}
