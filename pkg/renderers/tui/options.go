package tui

// OutputFormat controls how collected values are serialized.
type OutputFormat string

const (
	// OutputFormatJSON emits {"object":{"method":value}} documents.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatFormURLEncoded emits object[method][]=value pairs, the
	// same names the HTML renderer submits.
	OutputFormatFormURLEncoded OutputFormat = "form"
	// OutputFormatPrettyText emits one path=value line per answer.
	OutputFormatPrettyText OutputFormat = "pretty"
)

// Theme captures optional message prefixes.
type Theme struct {
	PromptPrefix   string
	InfoPrefix     string
	ErrorPrefix    string
	DisabledSuffix string
}

// SubmitTransformer mutates collected values before serialization.
type SubmitTransformer func(map[string]any) (map[string]any, error)

// Option configures the TUI renderer.
type Option func(*Renderer)

// WithPromptDriver overrides the prompt driver used by the renderer.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithOutputFormat selects the output serialization format.
func WithOutputFormat(format OutputFormat) Option {
	return func(r *Renderer) {
		if format != "" {
			r.outputFormat = format
		}
	}
}

// WithSubmitTransformer allows callers to mutate collected values prior to
// serialization.
func WithSubmitTransformer(fn SubmitTransformer) Option {
	return func(r *Renderer) {
		r.submitTransformer = fn
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(r *Renderer) {
		r.theme = theme
	}
}

// WithPageSize limits how many options are visible at once.
func WithPageSize(size int) Option {
	return func(r *Renderer) {
		if size > 0 {
			r.pageSize = size
		}
	}
}

// WithMaxAttempts bounds how many rejected answers are tolerated per field
// before Render gives up. Zero means unbounded.
func WithMaxAttempts(n int) Option {
	return func(r *Renderer) {
		if n >= 0 {
			r.maxAttempts = n
		}
	}
}
