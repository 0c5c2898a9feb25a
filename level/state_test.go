package level

import "testing"

func TestScoreTransitions(t *testing.T) {
	tests := []struct {
		name      string
		ops       string
		wantScore int
		wantBest  int
	}{
		{"fresh", "", 1, 1},
		{"clear_once", "c", 2, 2},
		{"clear_then_die", "ccd", 1, 3},
		{"die_keeps_best", "cccdcd", 1, 4},
		{"climb_past_best", "ccdccc", 4, 4},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewState(4)
			best := s.BestScore
			for _, op := range tc.ops {
				prev := s.Score
				switch op {
				case 'c':
					if got := s.Clear(); got != prev+1 {
						t.Fatalf("Clear() = %d, want %d", got, prev+1)
					}
				case 'd':
					s.Die()
					if s.Score != 1 {
						t.Fatalf("score after death = %d", s.Score)
					}
				}
				if s.BestScore < best {
					t.Fatalf("best score dropped from %d to %d", best, s.BestScore)
				}
				best = s.BestScore
			}
			if s.Score != tc.wantScore || s.BestScore != tc.wantBest {
				t.Fatalf("got score=%d best=%d, want %d/%d", s.Score, s.BestScore, tc.wantScore, tc.wantBest)
			}
		})
	}
}

func TestClearLine(t *testing.T) {
	s := NewState(4)
	if _, ok := s.ClearLine(0.99); ok {
		t.Fatal("empty state should not report a clear line")
	}
	s.append(Layer{SubLayersAmount: 2})

	tests := []struct {
		margin float64
		want   float64
	}{
		{margin: 0.99, want: 4*3 + 0.99},
		{margin: 0, want: 12},
		{margin: 2.5, want: 14.5},
	}
	for _, tt := range tests {
		line, ok := s.ClearLine(tt.margin)
		if !ok || line != tt.want {
			t.Fatalf("ClearLine(%v) = %v, %v; want %v", tt.margin, line, ok, tt.want)
		}
	}
}

func TestRecordBest(t *testing.T) {
	s := NewState(4)
	s.RecordBest(7)
	s.RecordBest(3)
	if s.BestScore != 7 {
		t.Fatalf("BestScore = %d, want 7", s.BestScore)
	}
}
