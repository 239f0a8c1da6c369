package domain

import "testing"

func TestSummarizeRatings(t *testing.T) {
	reviews := []Review{
		{Rating: 4},
		{Rating: 5},
		{Rating: 3},
	}

	summary := SummarizeRatings(reviews)
	if summary.Average != 4.0 {
		t.Errorf("expected average 4.0, got %f", summary.Average)
	}
	if summary.Count != 3 {
		t.Errorf("expected count 3, got %d", summary.Count)
	}
}

func TestSummarizeRatingsRounding(t *testing.T) {
	// 13/3 = 4.333... -> 4.3 at one decimal
	reviews := []Review{
		{Rating: 4},
		{Rating: 4},
		{Rating: 5},
	}

	summary := SummarizeRatings(reviews)
	if summary.Average != 4.3 {
		t.Errorf("expected average 4.3, got %f", summary.Average)
	}
}

func TestSummarizeRatingsEmpty(t *testing.T) {
	summary := SummarizeRatings(nil)
	if summary.Average != 0 || summary.Count != 0 {
		t.Errorf("expected zero summary, got %+v", summary)
	}
}
