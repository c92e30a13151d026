package inflate

import (
	"os"
	"path/filepath"
	"sync"
)

var (
	resourcesMu         sync.RWMutex
	resourcesPath       string
	customResourcesPath string
)

// SetResourcesPath sets the directory bundled resources are read from.
func SetResourcesPath(dir string) {
	resourcesMu.Lock()
	resourcesPath = dir
	resourcesMu.Unlock()
}

// SetCustomResourcesPath sets the override directory checked before the
// bundled resources directory, letting users replace shipped UI documents.
func SetCustomResourcesPath(dir string) {
	resourcesMu.Lock()
	customResourcesPath = dir
	resourcesMu.Unlock()
}

// lookupResource resolves a resource name to a readable file path, checking
// the override directory first.
func lookupResource(name string) (string, bool) {
	resourcesMu.RLock()
	custom, bundled := customResourcesPath, resourcesPath
	resourcesMu.RUnlock()

	if custom != "" {
		path := filepath.Join(custom, name)
		if fileExists(path) {
			return path, true
		}
	}
	if bundled != "" {
		path := filepath.Join(bundled, name)
		if fileExists(path) {
			return path, true
		}
	}
	return "", false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
