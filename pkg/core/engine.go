package core

import (
	"sync"

	"github.com/go-boreal/boreal/pkg/layout"
)

var (
	engineMu     sync.RWMutex
	layoutEngine layout.Engine = layout.NewBasicEngine()
)

// SetLayoutEngine installs the layout engine new views allocate their nodes
// from. Call once during application boot, before any view is constructed;
// views created against a previous engine keep their old nodes.
func SetLayoutEngine(engine layout.Engine) {
	if engine == nil {
		return
	}
	engineMu.Lock()
	layoutEngine = engine
	engineMu.Unlock()
}

// LayoutEngine returns the engine used for new view nodes.
func LayoutEngine() layout.Engine {
	engineMu.RLock()
	defer engineMu.RUnlock()
	return layoutEngine
}
