// Package gallery is the image-gallery modal state machine: Closed, or
// Open on a project at an image index that wraps circularly.
package gallery

import (
	"errors"
	"fmt"

	"github.com/mhmaidi/folio/internal/content"
)

var (
	// ErrNoImages is returned when opening a project without images.
	ErrNoImages = errors.New("project has no images")
	// ErrIndexOutOfRange is returned for an image index outside the project.
	ErrIndexOutOfRange = errors.New("image index out of range")
	// ErrClosed is returned by JumpTo while no project is open.
	ErrClosed = errors.New("gallery is closed")
)

// Navigator tracks the selected project and image index. The zero value is
// a closed gallery. It is not safe for concurrent use.
type Navigator struct {
	project *content.Project
	index   int
}

// State is a render-ready snapshot of the navigator.
type State struct {
	Open    bool
	Project *content.Project
	Index   int
	Count   int
	Next    int
	Prev    int
}

// Image returns the reference of the current image, or "" when closed.
func (s State) Image() string {
	if !s.Open {
		return ""
	}
	return s.Project.Images[s.Index]
}

// Indices returns 0..Count-1, for pagination dots.
func (s State) Indices() []int {
	out := make([]int, s.Count)
	for i := range out {
		out[i] = i
	}
	return out
}

// IsOpen reports whether a project is selected.
func (n *Navigator) IsOpen() bool { return n.project != nil }

// Index returns the current image index; 0 when closed.
func (n *Navigator) Index() int { return n.index }

// Project returns the selected project, or nil when closed.
func (n *Navigator) Project() *content.Project { return n.project }

// Open selects project and shows the image at start. Opening while already
// open switches to the new project.
func (n *Navigator) Open(project *content.Project, start int) error {
	if project == nil || len(project.Images) == 0 {
		return ErrNoImages
	}
	if start < 0 || start >= len(project.Images) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, start, len(project.Images))
	}
	n.project = project
	n.index = start
	return nil
}

// Close deselects the project and resets the index for the next open.
func (n *Navigator) Close() {
	n.project = nil
	n.index = 0
}

// Next advances one image, wrapping from last to first. No-op when closed.
func (n *Navigator) Next() {
	if n.project == nil {
		return
	}
	n.index = (n.index + 1) % len(n.project.Images)
}

// Previous goes back one image, wrapping from first to last. No-op when
// closed.
func (n *Navigator) Previous() {
	if n.project == nil {
		return
	}
	count := len(n.project.Images)
	n.index = (n.index - 1 + count) % count
}

// JumpTo shows image k of the open project.
func (n *Navigator) JumpTo(k int) error {
	if n.project == nil {
		return ErrClosed
	}
	if k < 0 || k >= len(n.project.Images) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, k, len(n.project.Images))
	}
	n.index = k
	return nil
}

// State returns a snapshot for rendering.
func (n *Navigator) State() State {
	if n.project == nil {
		return State{}
	}
	count := len(n.project.Images)
	return State{
		Open:    true,
		Project: n.project,
		Index:   n.index,
		Count:   count,
		Next:    (n.index + 1) % count,
		Prev:    (n.index - 1 + count) % count,
	}
}

// StateAt is the snapshot of Open(project, index) without mutating a
// navigator. The static export renders every gallery state with it.
func StateAt(project *content.Project, index int) (State, error) {
	var n Navigator
	if err := n.Open(project, index); err != nil {
		return State{}, err
	}
	return n.State(), nil
}
