// Package welcome drives the splash screen shown when the page opens:
// fully visible, then fading, then hidden with the main content entering.
package welcome

import (
	"context"
	"fmt"
	"time"
)

// Phase is the splash screen state.
type Phase string

const (
	PhaseVisible Phase = "visible"
	PhaseFading  Phase = "fading"
	PhaseHidden  Phase = "hidden"
)

// Entered reports whether the main content entrance flag is set.
func (p Phase) Entered() bool { return p == PhaseHidden }

// Default timings.
const (
	DefaultFadeAfter = 3 * time.Second
	DefaultHideAfter = 4 * time.Second
)

// Sequence is the two-timer splash timeline.
type Sequence struct {
	FadeAfter time.Duration
	HideAfter time.Duration
}

// New returns a sequence fading at fadeAfter and hiding at hideAfter.
func New(fadeAfter, hideAfter time.Duration) Sequence {
	return Sequence{FadeAfter: fadeAfter, HideAfter: hideAfter}
}

// Validate requires 0 < FadeAfter < HideAfter.
func (s Sequence) Validate() error {
	if s.FadeAfter <= 0 {
		return fmt.Errorf("welcome: fade delay must be positive, got %s", s.FadeAfter)
	}
	if s.HideAfter <= s.FadeAfter {
		return fmt.Errorf("welcome: hide delay %s must be after fade delay %s", s.HideAfter, s.FadeAfter)
	}
	return nil
}

// PhaseAt returns the phase elapsed after the page mounted.
func (s Sequence) PhaseAt(elapsed time.Duration) Phase {
	switch {
	case elapsed < s.FadeAfter:
		return PhaseVisible
	case elapsed < s.HideAfter:
		return PhaseFading
	default:
		return PhaseHidden
	}
}

// Step is one transition of the timeline. Delay is measured from the
// previous step (or from mount for the first one).
type Step struct {
	At    time.Duration
	Delay time.Duration
	Phase Phase
}

// Steps returns the timeline transitions in order.
func (s Sequence) Steps() []Step {
	return []Step{
		{At: s.FadeAfter, Delay: s.FadeAfter, Phase: PhaseFading},
		{At: s.HideAfter, Delay: s.HideAfter - s.FadeAfter, Phase: PhaseHidden},
	}
}

// Run arms both timers and calls emit on every phase change. It returns
// nil once the splash is hidden, or ctx.Err() if ctx ends first; both
// timers are stopped either way and emit is not called after cancellation.
func (s Sequence) Run(ctx context.Context, emit func(Phase)) error {
	if err := s.Validate(); err != nil {
		return err
	}

	fade := time.NewTimer(s.FadeAfter)
	defer fade.Stop()
	hide := time.NewTimer(s.HideAfter)
	defer hide.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-fade.C:
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	emit(PhaseFading)

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-hide.C:
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	emit(PhaseHidden)
	return nil
}
