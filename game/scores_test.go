package game

import (
	"os"
	"path/filepath"
	"testing"
)

func TestScoresKeepBestThreeAscending(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	s := LoadScores(path)

	for _, sec := range []float64{310.2, 295.7, 330.0, 301.4} {
		s.Record(2, sec)
	}

	best := s.Best(2)
	if len(best) != 3 {
		t.Fatalf("expected 3 retained entries, got %d", len(best))
	}
	want := []float64{295.7, 301.4, 310.2}
	for i, e := range best {
		if e.TimeSeconds != want[i] {
			t.Fatalf("entry %d: expected %v, got %v", i, want[i], e.TimeSeconds)
		}
	}
}

func TestRecordReportsWhetherTimeKept(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	s := LoadScores(path)

	for _, sec := range []float64{100, 110, 120} {
		if !s.Record(1, sec) {
			t.Fatalf("expected %v to be kept in an unfilled list", sec)
		}
	}
	if s.Record(1, 130) {
		t.Fatal("expected slower-than-worst time to be dropped")
	}
	if !s.Record(1, 105) {
		t.Fatal("expected a new second-best time to be kept")
	}
}

func TestScoresRoundTripThroughFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	s := LoadScores(path)
	s.Record(2, 295.7)
	s.Record(5, 801.3)

	reloaded := LoadScores(path)
	if got := reloaded.Best(2); len(got) != 1 || got[0].TimeSeconds != 295.7 {
		t.Fatalf("2 km entries did not survive reload: %+v", got)
	}
	if got := reloaded.Best(5); len(got) != 1 || got[0].TimeSeconds != 801.3 {
		t.Fatalf("5 km entries did not survive reload: %+v", got)
	}
}

func TestCorruptScoresFileStartsFresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := LoadScores(path)
	if len(s.Best(2)) != 0 {
		t.Fatal("expected empty store after corrupt file")
	}
	if !s.Record(2, 300) {
		t.Fatal("expected store to be writable after corrupt load")
	}
}

func TestMissingScoresFileIsEmpty(t *testing.T) {
	s := LoadScores(filepath.Join(t.TempDir(), "absent.json"))
	if len(s.Best(1)) != 0 {
		t.Fatal("expected empty store for a missing file")
	}
}
