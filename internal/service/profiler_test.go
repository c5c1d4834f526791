package service

import (
	"testing"

	"empath-llm/internal/domain"
)

func textRecords(pairs ...[2]string) []domain.EmotionRecord {
	out := make([]domain.EmotionRecord, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, domain.EmotionRecord{PrimaryEmotion: p[0], SourceText: p[1]})
	}
	return out
}

func TestIdentifyThemes_DeclaredOrderAndCap(t *testing.T) {
	profiler := NewProfilerService()
	records := textRecords(
		[2]string{"neutral", "my routine at home is dull"},
		[2]string{"neutral", "the doctor said I should rest"},
		[2]string{"neutral", "my boss keeps adding meetings"},
		[2]string{"neutral", "I want to improve and hit my goal"},
	)

	themes := profiler.IdentifyThemes(records)

	want := []string{"work", "health", "personal_growth"}
	if len(themes) != len(want) {
		t.Fatalf("expected %d themes, got %v", len(want), themes)
	}
	for i, theme := range want {
		if themes[i] != theme {
			t.Fatalf("expected theme %s at %d, got %s", theme, i, themes[i])
		}
	}
}

func TestIdentifyThemes_EmptyHistory(t *testing.T) {
	if themes := NewProfilerService().IdentifyThemes(nil); len(themes) != 0 {
		t.Fatalf("expected no themes, got %v", themes)
	}
}

func TestIdentifyThemes_MatchIsCaseInsensitive(t *testing.T) {
	records := textRecords([2]string{"neutral", "MY BOSS IS UNBEARABLE"})

	themes := NewProfilerService().IdentifyThemes(records)

	if len(themes) != 1 || themes[0] != "work" {
		t.Fatalf("expected work theme, got %v", themes)
	}
}

func TestAssessQuality_GoodAndDeep(t *testing.T) {
	long := "this message is comfortably longer than thirty characters"
	records := textRecords(
		[2]string{"joy", long},
		[2]string{"sadness", long},
		[2]string{"anger", long},
		[2]string{"fear", long},
		[2]string{"surprise", long},
		[2]string{"gratitude", long},
		[2]string{"confusion", long},
	)

	q := NewProfilerService().AssessQuality(records)

	if q.Quality != "good" {
		t.Fatalf("expected good quality, got %s", q.Quality)
	}
	if q.Depth != "deep" {
		t.Fatalf("expected deep, got %s", q.Depth)
	}
	if q.EmotionalOpenness != 7 {
		t.Fatalf("expected openness 7, got %d", q.EmotionalOpenness)
	}
	if q.EngagementScore != 10 {
		t.Fatalf("expected engagement capped at 10, got %v", q.EngagementScore)
	}
}

func TestAssessQuality_ShortRepetitiveIsBasic(t *testing.T) {
	records := textRecords(
		[2]string{"neutral", "ok"},
		[2]string{"neutral", "yes"},
	)

	q := NewProfilerService().AssessQuality(records)

	if q.Quality != "basic" || q.Depth != "moderate" {
		t.Fatalf("expected basic/moderate, got %s/%s", q.Quality, q.Depth)
	}
	if q.EngagementScore != 3 {
		t.Fatalf("expected engagement 3, got %v", q.EngagementScore)
	}
}

func TestAssessQuality_EmptyHistory(t *testing.T) {
	q := NewProfilerService().AssessQuality(nil)

	if q.Quality != "unknown" || q.Depth != "shallow" {
		t.Fatalf("expected unknown/shallow, got %s/%s", q.Quality, q.Depth)
	}
}

func TestRecommendations_DistressBranch(t *testing.T) {
	records := textRecords(
		[2]string{"sadness", "nothing feels right"},
		[2]string{"anger", "everything annoys me"},
		[2]string{"fear", "I cannot stop worrying"},
		[2]string{"neutral", "it is what it is"},
	)

	recs := NewProfilerService().Recommendations(records)

	if len(recs) != 2 {
		t.Fatalf("expected 2 recommendations, got %v", recs)
	}
	if recs[0] != "Consider seeking additional emotional support" {
		t.Fatalf("unexpected first recommendation: %q", recs[0])
	}
}

func TestRecommendations_PositiveBranchPlusThemes(t *testing.T) {
	records := textRecords(
		[2]string{"joy", "my job is going great"},
		[2]string{"gratitude", "my partner has been wonderful"},
		[2]string{"joy", "celebrated with a friend"},
	)

	recs := NewProfilerService().Recommendations(records)

	want := []string{
		"Keep maintaining your positive mindset!",
		"Share your positive energy with others",
		"Consider work-life balance strategies",
		"Focus on healthy communication patterns",
	}
	if len(recs) != len(want) {
		t.Fatalf("expected %d recommendations, got %v", len(want), recs)
	}
	for i := range want {
		if recs[i] != want[i] {
			t.Fatalf("expected %q at %d, got %q", want[i], i, recs[i])
		}
	}
}

func TestRecommendations_CappedAtFour(t *testing.T) {
	// Rama positiva (2) + work + relationships ya llena el cupo; un tercer
	// tema no debe colarse.
	records := textRecords(
		[2]string{"joy", "my job is fine, my partner is kind and the doctor cleared me"},
	)

	recs := NewProfilerService().Recommendations(records)

	if len(recs) != 4 {
		t.Fatalf("expected cap of 4, got %d: %v", len(recs), recs)
	}
}

func TestRecommendations_EmptyHistory(t *testing.T) {
	recs := NewProfilerService().Recommendations(nil)

	if len(recs) != 1 || recs[0] != "Start a conversation to get personalized recommendations" {
		t.Fatalf("unexpected recommendations: %v", recs)
	}
}

func TestProfile_ComposesAllSections(t *testing.T) {
	records := textRecords([2]string{"joy", "great morning at the office"})

	report := NewProfilerService().Profile(records)

	if report.TotalMessages != 1 {
		t.Fatalf("expected 1 message, got %d", report.TotalMessages)
	}
	if len(report.Themes) == 0 {
		t.Fatalf("expected at least one theme")
	}
	if report.Quality.Quality == "" {
		t.Fatalf("expected quality populated")
	}
	if len(report.Recommendations) == 0 {
		t.Fatalf("expected recommendations")
	}
}
