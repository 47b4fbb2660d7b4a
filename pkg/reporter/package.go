package reporter

// Package-level functions delegating to the process-wide default
// reporter, for callers that treat the console as ambient output.

// Aligned writes one aligned, optionally decorated line
func Aligned(text string, opts Options) error {
	return std.Aligned(text, opts)
}

// HorizontalRule writes one rule line
func HorizontalRule(opts Options) error {
	return std.HorizontalRule(opts)
}

// VerticalSpacing writes lines blank lines
func VerticalSpacing(lines int) error {
	return std.VerticalSpacing(lines)
}

// Datetime writes the current time as one aligned line
func Datetime(opts Options) error {
	return std.Datetime(opts)
}

// Header writes a header block
func Header(opts Options) error {
	return std.Header(opts)
}

// Footer writes a footer block
func Footer(opts Options) error {
	return std.Footer(opts)
}

// SetFormatter selects the active report style by name or instance
func SetFormatter(v interface{}) error {
	return std.SetFormatter(v)
}

// Report renders a report body through the active formatter
func Report(opts Options, body func() error) error {
	return std.Report(opts, body)
}

// Progress renders one progress step through the active formatter
func Progress(override string) error {
	return std.Progress(override)
}

// SuppressOutput redirects the default reporter's output to a buffer
func SuppressOutput() {
	std.SuppressOutput()
}

// CaptureOutput returns the buffered output and restores the console
func CaptureOutput() (string, error) {
	return std.CaptureOutput()
}

// RestoreOutput unconditionally restores the console sink
func RestoreOutput() {
	std.RestoreOutput()
}
