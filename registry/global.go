package registry

import "sync"

// Global registry singleton used by vidplugins' init() registrations and
// by project loading in production. Built lazily on first access.
var (
	global     *Registry
	globalOnce sync.Once
)

// Global returns the process-wide registry, creating it on first call.
func Global() *Registry {
	globalOnce.Do(func() {
		global = New()
	})
	return global
}

// ResetGlobal discards the global registry. Test-only: production code
// never needs to un-register a plugin.
func ResetGlobal() {
	global = nil
	globalOnce = sync.Once{}
}
