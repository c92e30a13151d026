package testing

import (
	"github.com/go-boreal/boreal/pkg/core"
	"github.com/go-boreal/boreal/pkg/geometry"
)

// DrawCall records one draw issued during a frame.
type DrawCall struct {
	View  core.View
	Frame geometry.Rect
}

// RecordingRenderer implements core.Renderer by recording every draw call,
// so tests can assert what a draw pass emitted (and what culling skipped).
type RecordingRenderer struct {
	Calls []DrawCall
}

// DrawView records the call.
func (r *RecordingRenderer) DrawView(view core.View, frame geometry.Rect) {
	r.Calls = append(r.Calls, DrawCall{View: view, Frame: frame})
}

// Drew reports whether the view was drawn since the last Reset.
func (r *RecordingRenderer) Drew(view core.View) bool {
	for _, call := range r.Calls {
		if call.View == view {
			return true
		}
	}
	return false
}

// Reset clears the recorded calls.
func (r *RecordingRenderer) Reset() {
	r.Calls = nil
}
