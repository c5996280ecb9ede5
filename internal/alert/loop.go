package alert

import (
	"context"
	"sync"
	"time"
)

// State is alert loop state
type State int

const (
	Idle State = iota
	Alerting
)

func (s State) String() string {
	if s == Alerting {
		return "alerting"
	}
	return "idle"
}

// Alerter renders the alert
type Alerter interface {
	// StartAlert is called once when loop enters Alerting
	StartAlert(pending int)
	// Chime is called every chime interval while alerting
	Chime()
	// StopAlert is called once when loop leaves Alerting
	StopAlert()
}

// Loop raises an alert on the rising edge of the pending order count
// and keeps chiming until the count drops to zero or the alert is dismissed.
type Loop struct {
	alerter  Alerter
	interval time.Duration

	mu        sync.Mutex
	state     State
	lastCount int
	cancel    context.CancelFunc
	wg        sync.WaitGroup
}

// NewLoop creates new Loop instance
func NewLoop(alerter Alerter, interval time.Duration) *Loop {
	return &Loop{
		alerter:  alerter,
		interval: interval,
	}
}

// Observe feeds pending order count of one poll cycle
func (l *Loop) Observe(pending int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	prev := l.lastCount
	l.lastCount = pending

	if pending <= 0 {
		l.stopLocked()
		return
	}
	if prev <= 0 && l.state == Idle {
		l.startLocked(pending)
	}
}

// Dismiss stops alert. Loop stays idle until pending count drops to zero
// and rises again. Safe to call when idle.
func (l *Loop) Dismiss() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.stopLocked()
}

// Close stops alert and waits for chime goroutine to exit
func (l *Loop) Close() {
	l.Dismiss()
	l.wg.Wait()
}

// State returns current loop state
func (l *Loop) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.state
}

// Pending returns last observed pending count
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.lastCount
}

func (l *Loop) startLocked(pending int) {
	ctx, cancel := context.WithCancel(context.Background())
	l.state = Alerting
	l.cancel = cancel
	l.alerter.StartAlert(pending)

	l.wg.Add(1)
	go l.chime(ctx)
}

func (l *Loop) stopLocked() {
	if l.state == Idle {
		return
	}
	l.state = Idle
	l.cancel()
	l.cancel = nil
	l.alerter.StopAlert()
}

func (l *Loop) chime(ctx context.Context) {
	defer l.wg.Done()

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !l.chimeOnce(ctx) {
				return
			}
		}
	}
}

// chimeOnce chimes unless alert was stopped after tick was selected
func (l *Loop) chimeOnce(ctx context.Context) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if ctx.Err() != nil {
		return false
	}
	l.alerter.Chime()
	return true
}
