package alert

import (
	"io"
	"sync"

	"go.uber.org/zap"
)

const bell = "\a"

// TerminalAlerter rings terminal bell and logs alert transitions
type TerminalAlerter struct {
	mu  sync.Mutex
	out io.Writer
	log *zap.Logger
}

// NewTerminalAlerter creates new TerminalAlerter instance
func NewTerminalAlerter(out io.Writer, log *zap.Logger) *TerminalAlerter {
	return &TerminalAlerter{out: out, log: log}
}

func (a *TerminalAlerter) StartAlert(pending int) {
	a.log.Warn("new orders waiting", zap.Int("pending", pending))
	a.ring()
}

func (a *TerminalAlerter) Chime() {
	a.ring()
}

func (a *TerminalAlerter) StopAlert() {
	a.log.Info("order alert stopped")
}

func (a *TerminalAlerter) ring() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, err := io.WriteString(a.out, bell); err != nil {
		a.log.Debug("cannot ring bell", zap.Error(err))
	}
}
