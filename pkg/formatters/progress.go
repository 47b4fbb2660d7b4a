package formatters

import (
	"fmt"
)

// ProgressName is the canonical registry name of the progress style
const ProgressName = "progress"

// progressConfig holds the per-call options of the progress style
type progressConfig struct {
	Indicator string `report:"indicator"`
}

// Progress renders report bodies as a flat run of progress indicators:
// the body emits dots as it works, and Format terminates the run with a
// newline. A custom indicator set on one call sticks for later ones.
type Progress struct {
	indicator string
}

// NewProgress creates a progress formatter with the default "." indicator
func NewProgress() *Progress {
	return &Progress{indicator: "."}
}

// Indicator returns the current progress indicator
func (p *Progress) Indicator() string {
	return p.indicator
}

// Format runs the body, then ends the indicator run with a newline
func (p *Progress) Format(s Surface, opts Options, body func() error) error {
	cfg := progressConfig{}
	if err := Decode(opts, &cfg); err != nil {
		return err
	}
	if cfg.Indicator != "" {
		p.indicator = cfg.Indicator
	}

	var bodyErr error
	if body != nil {
		bodyErr = body()
	}

	if _, err := fmt.Fprintln(s); err != nil {
		return err
	}
	return bodyErr
}

// Progress writes one indicator without a newline. An override replaces
// the indicator for this step only.
func (p *Progress) Progress(s Surface, override string) error {
	indicator := p.indicator
	if override != "" {
		indicator = override
	}
	_, err := fmt.Fprint(s, indicator)
	return err
}
