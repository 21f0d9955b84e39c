package modkit

import "sync"

var (
	regMu sync.RWMutex
	reg   = map[string]any{}
)

// Register publishes a module's ports under name
func Register(name string, ports any) {
	if ports == nil {
		return
	}
	regMu.Lock()
	reg[name] = ports
	regMu.Unlock()
}

// PortsAs looks up name and asserts its ports to T
func PortsAs[T any](name string) (T, bool) {
	regMu.RLock()
	v, ok := reg[name]
	regMu.RUnlock()
	out, ok2 := v.(T)
	return out, ok && ok2
}

// Reset clears the registry; tests only
func Reset() {
	regMu.Lock()
	reg = map[string]any{}
	regMu.Unlock()
}
