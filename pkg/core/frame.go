package core

import "github.com/go-boreal/boreal/pkg/geometry"

// Renderer executes draw calls for views. It is an external collaborator:
// the core hands it resolved geometry and never knows how pixels happen.
type Renderer interface {
	// DrawView renders one view at its resolved frame.
	DrawView(view View, frame geometry.Rect)
}

// FrameContext is the drawing context handle threaded through a draw pass.
type FrameContext struct {
	Renderer Renderer
}
