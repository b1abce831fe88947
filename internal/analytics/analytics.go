// Package analytics records which screens users look at.
package analytics

import (
	"sort"
	"sync"

	"go.uber.org/zap"
)

// Screen titles reported by the navigation layer.
const (
	ScreenBrewDetails      = "brewDetails"
	ScreenBrewScoreDetails = "brewScoreDetails"
	ScreenNewBrew          = "newBrew"
	ScreenSelectableSearch = "selectableSearch"
	ScreenNumericalInput   = "numericalInput"
	ScreenGrindSize        = "grindSize"
	ScreenTamping          = "tamping"
	ScreenNotes            = "notes"
)

// Tracker is a fire-and-forget analytics sink.
type Tracker interface {
	TrackScreen(title string)
}

// ScreenCount is how often a screen was shown.
type ScreenCount struct {
	Screen string `json:"screen"`
	Count  int    `json:"count"`
}

// Recorder logs screen views and keeps per-screen counters. Safe for concurrent use.
type Recorder struct {
	log *zap.Logger

	mu     sync.Mutex
	counts map[string]int
}

func NewRecorder(log *zap.Logger) *Recorder {
	return &Recorder{log: log.Named("analytics"), counts: make(map[string]int)}
}

func (r *Recorder) TrackScreen(title string) {
	r.mu.Lock()
	r.counts[title]++
	r.mu.Unlock()
	r.log.Debug("screen shown", zap.String("screen", title))
}

// Counts returns the counters, most viewed first.
func (r *Recorder) Counts() []ScreenCount {
	r.mu.Lock()
	out := make([]ScreenCount, 0, len(r.counts))
	for screen, n := range r.counts {
		out = append(out, ScreenCount{Screen: screen, Count: n})
	}
	r.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Screen < out[j].Screen
	})
	return out
}
