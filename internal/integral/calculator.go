package integral

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/agbru/polyint/internal/progress"
)

// Request describes one definite-integral problem. It is a read-only
// snapshot: backends never mutate it, and all entities derived from it live
// only for the duration of the call.
type Request struct {
	// Poly is the quartic being integrated.
	Poly Polynomial
	// XStart and XEnd are the integration bounds. The unsigned domain is an
	// explicit restriction of the ring design: negative bounds are not
	// representable.
	XStart Word
	XEnd   Word
	// Combinator fixes the term fold for the whole run.
	Combinator Combinator
	// UnsafeXor acknowledges that CombinatorXor is mathematically wrong.
	// Without it, the ring backend refuses the XOR combinator with an
	// InvalidModeError.
	UnsafeXor bool
}

// Options carries tuning knobs that do not change the problem itself.
type Options struct {
	// Intervals is the subinterval count for the trapezoid backend.
	// Zero selects DefaultIntervals.
	Intervals int
	// ParallelThreshold is the interval count at or above which the
	// trapezoid sum is chunked across goroutines. Zero disables
	// parallelism.
	ParallelThreshold int
}

// Result is the outcome of one backend run.
type Result struct {
	// Backend identifies which implementation produced the value.
	Backend string
	// Value is the numeric result used for cross-backend comparison.
	Value float64
	// Units is the exact integer result; valid only when Exact is true.
	Units uint64
	// Exact reports whether Units holds the exact integer value.
	Exact bool
	// Tolerance is the worst-case absolute error the backend admits for
	// Value. Exact backends report zero; the trapezoid backend reports its
	// analytic O(h²) bound.
	Tolerance float64
}

// String renders the result value: exact integers print without a fractional
// part, approximate values with six decimals.
func (r Result) String() string {
	if r.Exact {
		return strconv.FormatUint(r.Units, 10)
	}
	return strconv.FormatFloat(r.Value, 'f', 6, 64)
}

// Calculator is the common interface implemented by every integration
// backend. Implementations publish progress on progressChan (tagged with
// idx) and honor context cancellation on long runs.
type Calculator interface {
	// Name returns the human-readable backend name.
	Name() string
	// Integrate computes the definite integral described by req.
	Integrate(ctx context.Context, progressChan chan<- progress.Update, idx int, req Request, opts Options) (Result, error)
}

// CalculatorFactory provides access to the registered backends.
type CalculatorFactory interface {
	// Get returns the backend registered under the given key.
	Get(key string) (Calculator, error)
	// GetAll returns every registered backend, in List() order.
	GetAll() []Calculator
	// List returns the sorted registration keys.
	List() []string
}

var (
	registryMu sync.RWMutex
	registry   = map[string]func() Calculator{}
)

// RegisterCalculator adds a backend constructor under the given key.
// Backends register themselves from init functions; build-tagged backends
// (the GMP one) only appear when their tag is enabled.
func RegisterCalculator(key string, ctor func() Calculator) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[key] = ctor
}

// DefaultFactory resolves backends from the process-wide registry.
type DefaultFactory struct{}

// NewDefaultFactory returns the factory backed by the registry.
func NewDefaultFactory() CalculatorFactory { return DefaultFactory{} }

// Get returns the backend registered under key.
func (DefaultFactory) Get(key string) (Calculator, error) {
	registryMu.RLock()
	ctor, ok := registry[key]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown backend %q (available: %v)", key, DefaultFactory{}.List())
	}
	return ctor(), nil
}

// GetAll returns every registered backend in sorted-key order.
func (f DefaultFactory) GetAll() []Calculator {
	keys := f.List()
	calcs := make([]Calculator, 0, len(keys))
	for _, k := range keys {
		if c, err := f.Get(k); err == nil {
			calcs = append(calcs, c)
		}
	}
	return calcs
}

// List returns the sorted registration keys.
func (DefaultFactory) List() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	keys := make([]string, 0, len(registry))
	for k := range registry {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// reportProgress publishes an update without ever blocking a backend: if the
// consumer lags behind the buffered channel, the update is dropped rather
// than stalling the computation.
func reportProgress(ch chan<- progress.Update, idx int, value float64) {
	if ch == nil {
		return
	}
	select {
	case ch <- progress.Update{CalculatorIndex: idx, Value: value}:
	default:
	}
}
