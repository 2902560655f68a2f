package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/pentagongym/gymdiag/pkg/observability"
)

// Spinner provides a simple progress indicator with context cancellation support.
type Spinner struct {
	message string
	w       io.Writer
	ctx     context.Context
	cancel  context.CancelFunc
	done    chan struct{}
	stopped chan struct{}
	frames  []string
	mu      sync.Mutex
}

// newSpinner creates a new spinner with the given message.
func newSpinner(message string) *Spinner {
	return newSpinnerWithContext(context.Background(), message)
}

// newSpinnerWithContext creates a spinner that will stop when the context is cancelled.
func newSpinnerWithContext(ctx context.Context, message string) *Spinner {
	spinnerCtx, cancel := context.WithCancel(ctx)
	return &Spinner{
		message: message,
		w:       os.Stderr,
		ctx:     spinnerCtx,
		cancel:  cancel,
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
		frames:  []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
	}
}

// Start begins the spinner animation.
func (s *Spinner) Start() {
	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		i := 0
		for {
			select {
			case <-s.ctx.Done():
				s.clearLine()
				return
			case <-s.done:
				return
			case <-ticker.C:
				frame := s.frames[i%len(s.frames)]
				s.mu.Lock()
				fmt.Fprintf(s.w, "\r%s %s", styleIconSpinner.Render(frame), StyleDim.Render(s.message))
				s.mu.Unlock()
				i++
			}
		}
	}()
}

// Stop stops the spinner and clears the line. It must follow Start and
// may be called more than once.
func (s *Spinner) Stop() {
	s.cancel()
	s.mu.Lock()
	select {
	case <-s.done:
	default:
		close(s.done)
	}
	s.mu.Unlock()
	<-s.stopped
	s.clearLine()
}

func (s *Spinner) clearLine() {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", len(s.message)+4))
}

// Cancelled returns true if the spinner was stopped due to context cancellation.
func (s *Spinner) Cancelled() bool {
	return s.ctx.Err() != nil
}

// =============================================================================
// Pipeline Integration
// =============================================================================

// spinnerHooks shows one spinner per diagram while the pipeline renders it.
type spinnerHooks struct {
	observability.NoopPipelineHooks

	w       io.Writer
	mu      sync.Mutex
	total   int
	n       int
	current *Spinner
}

func (h *spinnerHooks) OnRunStart(_ context.Context, _ string, diagrams int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.total, h.n = diagrams, 0
}

func (h *spinnerHooks) OnDiagramStart(ctx context.Context, name string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.n++
	s := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s (%d/%d)", name, h.n, h.total))
	if h.w != nil {
		s.w = h.w
	}
	s.Start()
	h.current = s
}

func (h *spinnerHooks) OnDiagramComplete(context.Context, string, int, time.Duration, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.current != nil {
		h.current.Stop()
		h.current = nil
	}
}

// useSpinner installs spinner hooks when stderr is a terminal and debug
// logging is off. The returned function restores the previous hooks.
func useSpinner(verbose bool) func() {
	if verbose || !isatty.IsTerminal(os.Stderr.Fd()) {
		return func() {}
	}
	prev := observability.Pipeline()
	observability.SetPipelineHooks(&spinnerHooks{})
	return func() { observability.SetPipelineHooks(prev) }
}
