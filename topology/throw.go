package topology

import "github.com/pkg/errors"

// Threading error returns through every graph construction and labelling
// helper would bloat the whole engine for conditions that are either internal
// invariant violations or topology conflicts detected deep inside a loop.
// Instead we panic with a TopologyError, and the public API recovers it back
// into an ordinary error.

type TopologyError error

// Panic with a TopologyError.
func fatalf(format string, args ...interface{}) {
	panic(TopologyError(errors.Errorf(format, args...)))
}

func HandleRelatePanicRecover(r interface{}) error {
	if r != nil {
		if topologyError, ok := r.(TopologyError); ok {
			return topologyError
		}
		panic(r)
	}
	return nil
}
