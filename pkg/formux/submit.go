package formux

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/nextwave/siteclient/pkg/shared/sched"
)

const (
	// RestoreDelay is how long a submit button stays in its busy state.
	RestoreDelay = 2 * time.Second
	SendingLabel = "Sending..."
)

// ButtonView is what a form's submit button should look like right now.
type ButtonView struct {
	Label    string
	Disabled bool
	Spinner  bool
}

// SubmitButton shows a busy state while a form is being sent and restores itself
// after RestoreDelay regardless of the outcome.
type SubmitButton struct {
	label     string
	scheduler sched.Scheduler
	log       zerolog.Logger
	onChange  func(ButtonView)

	mu      sync.Mutex
	busy    bool
	restore sched.Timer
}

func NewSubmitButton(label string, scheduler sched.Scheduler, log zerolog.Logger, onChange func(ButtonView)) *SubmitButton {
	if scheduler == nil {
		scheduler = sched.Real
	}
	return &SubmitButton{label: label, scheduler: scheduler, log: log, onChange: onChange}
}

func (b *SubmitButton) View() ButtonView {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.viewLocked()
}

func (b *SubmitButton) viewLocked() ButtonView {
	if b.busy {
		return ButtonView{Label: SendingLabel, Disabled: true, Spinner: true}
	}
	return ButtonView{Label: b.label}
}

// Submit switches to the busy state and schedules the restore.
func (b *SubmitButton) Submit() {
	b.mu.Lock()
	if b.restore != nil {
		b.restore.Stop()
	}
	b.busy = true
	b.restore = b.scheduler.AfterFunc(RestoreDelay, b.reset)
	view := b.viewLocked()
	b.mu.Unlock()
	b.log.Debug().Str("label", b.label).Msg("Form submitted, button disabled")
	b.notify(view)
}

func (b *SubmitButton) reset() {
	b.mu.Lock()
	b.busy = false
	b.restore = nil
	view := b.viewLocked()
	b.mu.Unlock()
	b.notify(view)
}

func (b *SubmitButton) notify(view ButtonView) {
	if b.onChange != nil {
		b.onChange(view)
	}
}
