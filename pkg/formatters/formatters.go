// Package formatters defines the pluggable report styles and the named
// registry through which a style is selected at runtime. Each style is a
// process-wide singleton: the first resolution of a name constructs the
// instance, later resolutions return the same one, and any state the
// instance accumulates (nesting depth, progress indicator) survives for
// the life of the process.
package formatters

import (
	"io"
	"strings"

	"github.com/nelyj/command-line-reporter/pkg/errors"
	"github.com/nelyj/command-line-reporter/pkg/registry"
)

// Surface is the slice of the reporter a formatter renders through: the
// alignment primitive for full lines, and the raw sink for partial writes
// such as progress dots.
type Surface interface {
	io.Writer

	// Aligned renders one aligned, optionally decorated line
	Aligned(text string, opts Options) error
}

// Formatter is the strategy contract behind report and progress calls.
// Format receives the deferred report body and decides when to run it;
// Progress renders one progress step.
type Formatter interface {
	Format(s Surface, opts Options, body func() error) error
	Progress(s Surface, override string) error
}

// Factory constructs a formatter instance. Factories are registered under
// canonical names; instances are created lazily and cached.
type Factory func() Formatter

var (
	factories = registry.New[Factory]()
	instances = registry.New[Formatter]()
)

func init() {
	registry.MustRegister(factories, NestedName, func() Formatter { return NewNested() })
	registry.MustRegister(factories, ProgressName, func() Formatter { return NewProgress() })
}

// Canonicalize normalizes a formatter name for lookup
func Canonicalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Register makes a formatter factory resolvable under name. Built-ins are
// registered during init; external packages can add their own styles.
func Register(name string, factory Factory) error {
	if factory == nil {
		return errors.New(errors.ErrInvalidArgument, "formatter factory cannot be nil")
	}
	return factories.Register(Canonicalize(name), factory)
}

// Resolve returns the singleton formatter for name, constructing it on
// first use. Unknown names fail with ErrInvalidFormatter.
func Resolve(name string) (Formatter, error) {
	canonical := Canonicalize(name)

	if instance, err := instances.Get(canonical); err == nil {
		return instance, nil
	}

	factory, err := factories.Get(canonical)
	if err != nil {
		return nil, errors.Newf(errors.ErrInvalidFormatter, "invalid formatter specified: %q", name)
	}

	instance := factory()
	if regErr := instances.Register(canonical, instance); regErr != nil {
		// Lost a race with a concurrent resolver; use the cached one.
		return instances.Get(canonical)
	}

	return instance, nil
}

// Names returns the registered formatter names in sorted order
func Names() []string {
	return factories.List()
}
