package alert

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type recordingAlerter struct {
	mu     sync.Mutex
	starts []int
	chimes int
	stops  int
}

func (r *recordingAlerter) StartAlert(pending int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.starts = append(r.starts, pending)
}

func (r *recordingAlerter) Chime() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.chimes++
}

func (r *recordingAlerter) StopAlert() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stops++
}

func (r *recordingAlerter) counts() (int, int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.starts), r.chimes, r.stops
}

func TestLoop_Observe(t *testing.T) {
	tests := []struct {
		name       string
		counts     []int
		wantStarts int
		wantStops  int
		wantState  State
	}{
		{name: "rise_and_fall", counts: []int{0, 0, 2, 2, 0}, wantStarts: 1, wantStops: 1, wantState: Idle},
		{name: "stays_pending", counts: []int{1, 3, 2, 5}, wantStarts: 1, wantStops: 0, wantState: Alerting},
		{name: "two_rising_edges", counts: []int{1, 0, 4, 0}, wantStarts: 2, wantStops: 2, wantState: Idle},
		{name: "never_pending", counts: []int{0, 0, 0}, wantStarts: 0, wantStops: 0, wantState: Idle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recordingAlerter{}
			l := NewLoop(rec, time.Hour)
			defer l.Close()

			for _, c := range tt.counts {
				l.Observe(c)
			}

			starts, _, stops := rec.counts()
			assert.Equal(t, tt.wantStarts, starts)
			assert.Equal(t, tt.wantStops, stops)
			assert.Equal(t, tt.wantState, l.State())
		})
	}
}

func TestLoop_DismissIsIdempotent(t *testing.T) {
	rec := &recordingAlerter{}
	l := NewLoop(rec, time.Hour)
	defer l.Close()

	l.Dismiss()
	l.Observe(2)
	l.Dismiss()
	l.Dismiss()

	starts, _, stops := rec.counts()
	assert.Equal(t, 1, starts)
	assert.Equal(t, 1, stops)
	assert.Equal(t, Idle, l.State())

	// dismissed alert does not re-fire while orders stay pending
	l.Observe(2)
	l.Observe(3)
	starts, _, _ = rec.counts()
	assert.Equal(t, 1, starts)

	// but does on next rising edge
	l.Observe(0)
	l.Observe(1)
	starts, _, _ = rec.counts()
	assert.Equal(t, 2, starts)
}

func TestLoop_ChimesWhileAlerting(t *testing.T) {
	rec := &recordingAlerter{}
	l := NewLoop(rec, 10*time.Millisecond)

	l.Observe(1)
	assert.Eventually(t, func() bool {
		_, chimes, _ := rec.counts()
		return chimes >= 2
	}, time.Second, 5*time.Millisecond)

	l.Observe(0)
	l.Close()

	_, after, _ := rec.counts()
	time.Sleep(50 * time.Millisecond)
	_, later, _ := rec.counts()
	assert.Equal(t, after, later)
}

type sequenceAlerter struct {
	mu     sync.Mutex
	events []string
}

func (s *sequenceAlerter) add(e string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
}

func (s *sequenceAlerter) StartAlert(int) { s.add("start") }
func (s *sequenceAlerter) Chime()         { s.add("chime") }
func (s *sequenceAlerter) StopAlert()     { s.add("stop") }

func TestLoop_NoChimeAfterDismiss(t *testing.T) {
	seq := &sequenceAlerter{}
	l := NewLoop(seq, time.Millisecond)

	for i := 0; i < 50; i++ {
		l.Observe(1)
		time.Sleep(2 * time.Millisecond)
		l.Dismiss()
		l.Observe(0)
	}
	time.Sleep(10 * time.Millisecond)
	l.Close()

	seq.mu.Lock()
	defer seq.mu.Unlock()

	alerting := false
	for i, e := range seq.events {
		switch e {
		case "start":
			alerting = true
		case "stop":
			alerting = false
		case "chime":
			assert.True(t, alerting, "chime at %d after stop", i)
		}
	}
}

func TestTerminalAlerter(t *testing.T) {
	var buf bytes.Buffer
	a := NewTerminalAlerter(&buf, zap.NewNop())

	a.StartAlert(3)
	a.Chime()
	a.StopAlert()

	assert.Equal(t, "\a\a", buf.String())
}
