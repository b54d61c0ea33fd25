package fsop

type readConfig struct {
	limits Limits
}

type ReadOption func(*readConfig)

// WithReadLimits sets custom decode limits. Zero-valued fields keep their
// defaults.
func WithReadLimits(l Limits) ReadOption {
	return func(c *readConfig) { c.limits = l }
}

type writeConfig struct {
	warnings func(Warning)
}

type WriteOption func(*writeConfig)

// WithWarnings registers a callback for non-fatal diagnostics emitted while
// packing: skipped entries and encoding fallbacks. Skips also appear in the
// returned PackResult; the callback exists for progress-style reporting.
func WithWarnings(fn func(Warning)) WriteOption {
	return func(c *writeConfig) { c.warnings = fn }
}

func (c *writeConfig) warn(entry int, name, detail string) {
	if c.warnings != nil {
		c.warnings(Warning{Entry: entry, Name: name, Detail: detail})
	}
}
