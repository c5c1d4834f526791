package classifier

import (
	"context"
	"testing"
)

func TestKeywordClassifier_CountsOccurrences(t *testing.T) {
	cls := NewKeywordClassifier()

	scores, err := cls.Classify(context.Background(), "I am happy, truly happy and excited")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}

	if scores["joy"] != 3 {
		t.Fatalf("expected joy score 3, got %v", scores["joy"])
	}
	if _, ok := scores["sadness"]; ok {
		t.Fatalf("sadness must not score, got %v", scores["sadness"])
	}
}

func TestKeywordClassifier_MultipleEmotions(t *testing.T) {
	cls := NewKeywordClassifier()

	scores, err := cls.Classify(context.Background(), "I am happy but also worried")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}

	if scores["joy"] != 1 || scores["fear"] != 1 {
		t.Fatalf("expected joy=1 fear=1, got %v", scores)
	}
}

func TestKeywordClassifier_CaseInsensitive(t *testing.T) {
	cls := NewKeywordClassifier()

	scores, err := cls.Classify(context.Background(), "THANK YOU SO MUCH")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}

	if scores["gratitude"] == 0 {
		t.Fatalf("expected gratitude score, got %v", scores)
	}
}

func TestKeywordClassifier_NoMatchesIsEmptyNotError(t *testing.T) {
	cls := NewKeywordClassifier()

	scores, err := cls.Classify(context.Background(), "the meeting starts at nine")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if len(scores) != 0 {
		t.Fatalf("expected empty scores, got %v", scores)
	}
}

func TestKeywordClassifier_BlankText(t *testing.T) {
	cls := NewKeywordClassifier()

	scores, err := cls.Classify(context.Background(), "   ")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if len(scores) != 0 {
		t.Fatalf("expected empty scores for blank text, got %v", scores)
	}
}
