package launcher

const (
	// FlagRuntimePath overrides the Java executable.
	FlagRuntimePath = "--java-path"
	// FlagArtifactPath overrides the JAR location and skips resolution.
	FlagArtifactPath = "--jar-path"
)

// Invocation is the parsed launcher command line.
type Invocation struct {
	// RuntimePath is the requested Java executable, DefaultRuntime unless overridden.
	RuntimePath string
	// ArtifactPath is the explicit JAR path, empty when not given.
	ArtifactPath string
	// ForwardedArgs are passed to the server unchanged and in order.
	ForwardedArgs []string
}

// ParseArgs scans argv once, left to right. The two launcher flags consume
// the following token; every other token, including unknown flags and a
// launcher flag with no value after it, is forwarded to the server.
func ParseArgs(argv []string) *Invocation {
	inv := &Invocation{
		RuntimePath:   DefaultRuntime,
		ForwardedArgs: make([]string, 0, len(argv)),
	}

	for i := 0; i < len(argv); i++ {
		hasValue := i+1 < len(argv)

		switch {
		case argv[i] == FlagRuntimePath && hasValue:
			i++
			inv.RuntimePath = argv[i]
		case argv[i] == FlagArtifactPath && hasValue:
			i++
			inv.ArtifactPath = argv[i]
		default:
			inv.ForwardedArgs = append(inv.ForwardedArgs, argv[i])
		}
	}

	return inv
}
