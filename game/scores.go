package game

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"sort"
	"time"
)

// maxScoresPerCourse caps how many finish times are retained per course.
const maxScoresPerCourse = 3

// ScoreEntry is one recorded finish.
type ScoreEntry struct {
	TimeSeconds float64 `json:"timeSeconds"`
	RecordedAt  int64   `json:"recordedAt"` // unix seconds
}

// ScoreStore keeps the best finish times keyed by course length in
// kilometers, persisted as a JSON file. Missing files are treated as empty;
// corrupt files are logged and discarded.
type ScoreStore struct {
	path   string
	scores map[int][]ScoreEntry
}

// LoadScores opens the store at path, reading any existing entries.
func LoadScores(path string) *ScoreStore {
	s := &ScoreStore{
		path:   path,
		scores: make(map[int][]ScoreEntry),
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("scores: read %s: %v", path, err)
		}
		return s
	}
	if err := json.Unmarshal(data, &s.scores); err != nil {
		log.Printf("scores: corrupt file %s, starting fresh: %v", path, err)
		s.scores = make(map[int][]ScoreEntry)
	}
	return s
}

// Best returns the retained entries for a course length, best first.
func (s *ScoreStore) Best(courseKm int) []ScoreEntry {
	return s.scores[courseKm]
}

// Record inserts a finish time for the course and persists the store. It
// returns true when the time made the retained list.
func (s *ScoreStore) Record(courseKm int, timeSeconds float64) bool {
	entries := append(s.scores[courseKm], ScoreEntry{
		TimeSeconds: timeSeconds,
		RecordedAt:  time.Now().Unix(),
	})
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].TimeSeconds < entries[j].TimeSeconds
	})
	if len(entries) > maxScoresPerCourse {
		entries = entries[:maxScoresPerCourse]
	}
	s.scores[courseKm] = entries

	kept := false
	for _, e := range entries {
		if e.TimeSeconds == timeSeconds {
			kept = true
			break
		}
	}
	if err := s.save(); err != nil {
		log.Printf("scores: save %s: %v", s.path, err)
	}
	return kept
}

func (s *ScoreStore) save() error {
	data, err := json.MarshalIndent(s.scores, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}
