package profile

// Profiler describes one profiling session: the mode to run, the output
// directory, and whether to suppress the profiler's own logging.
type Profiler struct {
	Mode  string
	Path  string
	Quiet bool
}

// Start initializes the profiler and returns a handle for stopping it.
//
// If the pprof build tag or Mode is unset, Start returns a no-op
// implementation. Both Start and Stop are always safely callable.
func (p Profiler) Start() interface{ Stop() } {
	if p.Mode == "" {
		return ignore{}
	}

	return start(p.Mode, p.Path, p.Quiet)
}

type ignore struct{}

func (ignore) Stop() {}
