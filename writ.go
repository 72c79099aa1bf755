package writ

// Host is implemented by types whose exported methods are registered as
// named exports. Every exported method except Namespace and ParamNames
// becomes an export named by converting PascalCase to kebab-case.
type Host interface {
	// Namespace returns the interface name (e.g., "writ:records/records@0.1.0").
	Namespace() string
}

// ParamNamer optionally supplies parameter names for a Host's exports,
// keyed by export name.
type ParamNamer interface {
	ParamNames() map[string][]string
}
