package stack

// FileOverride is a single file written on top of generator output.
// Overrides are applied in order after a generator succeeds.
type FileOverride struct {
	// Path is relative to the project root.
	Path    string
	Content string
}

// Descriptor is the read-only definition of one scaffoldable component.
// Descriptors are fixed configuration; nothing mutates them at runtime.
type Descriptor struct {
	Name string

	// Dir is the component's directory, relative to the project root.
	Dir string

	// Marker is the presence-marker file, relative to the project root.
	// Its existence is the sole signal that the component has already
	// been scaffolded.
	Marker string

	// GeneratorArgv is the external generator invocation. The command
	// must run non-interactively and signal success via its exit code.
	GeneratorArgv []string

	// GeneratorDir is the working directory for the generator, relative
	// to the project root.
	GeneratorDir string

	Overrides []FileOverride
}

// ComponentState is derived from the filesystem on every invocation and
// never cached; the marker file is the single source of truth.
type ComponentState int

const (
	Uninitialized ComponentState = iota
	Ready
)

func (s ComponentState) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Ready:
		return "ready"
	default:
		return "invalid"
	}
}
