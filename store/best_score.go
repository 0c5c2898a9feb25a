package store

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	recordObject   = "record"
	recordProperty = "best_score"
)

// Record is the persisted high score.
type Record struct {
	BestScore int `yaml:"bestScore"`
}

// BestScore keeps the best score across process runs. A nil gdata manager
// keeps the record in memory only.
type BestScore struct {
	data   *gdata.Manager
	record Record
}

// Open creates a gdata-backed store for appName. Failing to open storage is
// not fatal: the store falls back to memory and the error is logged.
func Open(appName string) *BestScore {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[store] storage unavailable, best score will not persist: %v", err)
		m = nil
	}
	s, err := NewBestScore(m)
	if err != nil {
		log.Printf("[store] load best score: %v", err)
	}
	return s
}

func NewBestScore(m *gdata.Manager) (*BestScore, error) {
	s := &BestScore{data: m, record: Record{BestScore: 1}}
	return s, s.Load()
}

func (s *BestScore) Best() int {
	return s.record.BestScore
}

func (s *BestScore) Load() error {
	if s.data == nil || !s.data.ObjectPropExists(recordObject, recordProperty) {
		return nil
	}
	raw, err := s.data.LoadObjectProp(recordObject, recordProperty)
	if err != nil {
		return fmt.Errorf("load %s/%s: %w", recordObject, recordProperty, err)
	}
	var r Record
	if err := yaml.Unmarshal(raw, &r); err != nil {
		return fmt.Errorf("decode %s/%s: %w", recordObject, recordProperty, err)
	}
	if r.BestScore > s.record.BestScore {
		s.record = r
	}
	return nil
}

// Submit records score when it beats the stored best. It reports whether
// the record changed.
func (s *BestScore) Submit(score int) (bool, error) {
	if score <= s.record.BestScore {
		return false, nil
	}
	s.record.BestScore = score
	if s.data == nil {
		return true, nil
	}
	raw, err := yaml.Marshal(s.record)
	if err != nil {
		return true, fmt.Errorf("encode best score: %w", err)
	}
	if err := s.data.SaveObjectProp(recordObject, recordProperty, raw); err != nil {
		return true, fmt.Errorf("save best score: %w", err)
	}
	return true, nil
}
