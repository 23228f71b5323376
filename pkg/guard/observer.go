package guard

import (
	"sync/atomic"

	"github.com/vnykmshr/goguard/pkg/message"
)

// Observer is notified after every guard evaluation. err is nil when the
// guard passed. Implementations must be safe for concurrent use.
type Observer interface {
	ObserveGuard(kind message.Kind, item string, err error)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(kind message.Kind, item string, err error)

// ObserveGuard calls f.
func (f ObserverFunc) ObserveGuard(kind message.Kind, item string, err error) {
	f(kind, item, err)
}

type observerHolder struct {
	o Observer
}

var current atomic.Pointer[observerHolder]

// SetObserver installs the process-wide observer. Pass nil to remove it.
// It is meant to be called once during start-up.
func SetObserver(o Observer) {
	if o == nil {
		current.Store(nil)
		return
	}
	current.Store(&observerHolder{o: o})
}

// CurrentObserver returns the installed observer, or nil.
func CurrentObserver() Observer {
	if h := current.Load(); h != nil {
		return h.o
	}
	return nil
}

func notify(kind message.Kind, item string, err error) {
	if h := current.Load(); h != nil {
		h.o.ObserveGuard(kind, item, err)
	}
}
