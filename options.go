package cjson

// defaultDateFormat and defaultTimeFormat mirror the C source's
// DEFAULT_DATE_FORMAT / DEFAULT_TIME_FORMAT macros (§6).
const (
	defaultDateFormat = "%Y-%m-%d"
	defaultTimeFormat = "%H:%M:%S"
)

// decodeConfig holds the resolved state for one Decode call.
type decodeConfig struct {
	allUnicode bool
}

// DecodeOption configures a single Decode call.
type DecodeOption func(*decodeConfig)

// WithAllUnicode forces every decoded string through the Unicode-escape
// path regardless of its content (§3, §4.2, §6 all_unicode).
func WithAllUnicode() DecodeOption {
	return func(c *decodeConfig) { c.allUnicode = true }
}

func newDecodeConfig(opts []DecodeOption) decodeConfig {
	var c decodeConfig
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// encodeConfig holds the resolved state for one Encode call.
type encodeConfig struct {
	fallback     func(any) (any, error)
	fmtDate      string
	fmtTime      string
	fmtDateTime  string
	dateSet      bool
	timeSet      bool
	dateTimeSet  bool
}

// EncodeOption configures a single Encode call.
type EncodeOption func(*encodeConfig)

// WithDefault installs a fallback invoked at most once per opaque value
// (§4.7 step 11, §6 default).
func WithDefault(fn func(any) (any, error)) EncodeOption {
	return func(c *encodeConfig) { c.fallback = fn }
}

// WithDateFormat overrides the strftime-style pattern used for date-only
// Temporal values (§4.5, §6 fmt_date). An empty pattern is equivalent to
// not calling this option.
func WithDateFormat(pattern string) EncodeOption {
	return func(c *encodeConfig) {
		if pattern != "" {
			c.fmtDate = pattern
			c.dateSet = true
		}
	}
}

// WithTimeFormat overrides the strftime-style pattern used for time-only
// Temporal values (§4.5, §6 fmt_time).
func WithTimeFormat(pattern string) EncodeOption {
	return func(c *encodeConfig) {
		if pattern != "" {
			c.fmtTime = pattern
			c.timeSet = true
		}
	}
}

// WithDateTimeFormat overrides the strftime-style pattern used for
// combined date+time Temporal values (§4.5, §6 fmt_datetime). When unset,
// the pattern is composed from the (possibly just-defaulted) date and time
// patterns joined by a space — see DESIGN.md for the Open Question this
// resolves.
func WithDateTimeFormat(pattern string) EncodeOption {
	return func(c *encodeConfig) {
		if pattern != "" {
			c.fmtDateTime = pattern
			c.dateTimeSet = true
		}
	}
}

func newEncodeConfig(opts []EncodeOption) encodeConfig {
	c := encodeConfig{fmtDate: defaultDateFormat, fmtTime: defaultTimeFormat}
	for _, opt := range opts {
		opt(&c)
	}
	if !c.dateSet {
		c.fmtDate = defaultDateFormat
	}
	if !c.timeSet {
		c.fmtTime = defaultTimeFormat
	}
	if !c.dateTimeSet {
		c.fmtDateTime = c.fmtDate + " " + c.fmtTime
	}
	return c
}
