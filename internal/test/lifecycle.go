package test

import (
	"go.uber.org/fx"
)

// LifecycleRecorder collects hooks registered against it so tests can
// invoke OnStart and OnStop by hand instead of spinning up an fx app.
type LifecycleRecorder struct {
	Hooks []fx.Hook
}

// Append implements fx.Lifecycle.
func (l *LifecycleRecorder) Append(h fx.Hook) {
	l.Hooks = append(l.Hooks, h)
}

// Last returns the most recently registered hook. It returns a zero
// hook when nothing was appended.
func (l *LifecycleRecorder) Last() fx.Hook {
	if len(l.Hooks) == 0 {
		return fx.Hook{}
	}
	return l.Hooks[len(l.Hooks)-1]
}

// ShutdownerStub signals on Called whenever Shutdown is invoked. The
// send never blocks, repeated shutdowns past the channel capacity are
// simply dropped.
type ShutdownerStub struct {
	Called chan struct{}
}

func (s *ShutdownerStub) Shutdown(...fx.ShutdownOption) error {
	if s.Called != nil {
		select {
		case s.Called <- struct{}{}:
		default:
		}
	}
	return nil
}
