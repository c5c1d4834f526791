package preprocess

import "testing"

func TestCleanText(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello   World!", "hello world"},
		{"check https://example.com/page now", "check now"},
		{"write to someone@example.com please", "write to please"},
		{"room 404 is empty", "room is empty"},
		{"", ""},
		{"!!!", ""},
	}

	for _, tc := range cases {
		if got := CleanText(tc.in); got != tc.want {
			t.Fatalf("CleanText(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRemoveStopWords(t *testing.T) {
	got := RemoveStopWords("i went to the office and it was fine")

	if got != "went office fine" {
		t.Fatalf("unexpected result: %q", got)
	}
}

func TestRemoveStopWords_Empty(t *testing.T) {
	if got := RemoveStopWords(""); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestLemmatizeText(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"studies", "study"},
		{"walking", "walk"},
		{"worked", "work"},
		{"cats", "cat"},
		{"stress", "stress"},
		{"sad", "sad"},
		{"ties", "tie"},
	}

	for _, tc := range cases {
		if got := LemmatizeText(tc.in); got != tc.want {
			t.Fatalf("LemmatizeText(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPreprocessText_FullPipeline(t *testing.T) {
	got := PreprocessText("I was Walking to https://a.b and STUDIES helped!", Options{RemoveStops: true, Lemmatize: true})

	if got != "walk study help" {
		t.Fatalf("unexpected pipeline output: %q", got)
	}
}

func TestPreprocessText_NoOptions(t *testing.T) {
	got := PreprocessText("The CATS!", Options{})

	if got != "the cats" {
		t.Fatalf("expected clean only, got %q", got)
	}
}
