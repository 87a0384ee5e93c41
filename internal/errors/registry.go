package errors

// Template defines a registered error code.
type Template struct {
	Category   Category
	Message    string
	Detail     string
	Suggestion string
	DocURL     string
}

// registry maps error codes to their templates.
var registry = map[string]Template{
	// Live runtime (E001-E019)

	"E001": {
		Category:   CategoryLive,
		Message:    "session not found",
		Detail:     "The session ID is unknown or the session has expired and been evicted.",
		Suggestion: "Reload the page to start a fresh session.",
		DocURL:     "https://picklist.dev/docs/errors/E001",
	},
	"E002": {
		Category:   CategoryLive,
		Message:    "handler not found",
		Detail:     "No handler is registered for the event's hydration ID. The view may have re-rendered and dropped the element.",
		DocURL:     "https://picklist.dev/docs/errors/E002",
	},
	"E003": {
		Category:   CategoryLive,
		Message:    "malformed event frame",
		Detail:     "The client sent a frame the server could not decode.",
		DocURL:     "https://picklist.dev/docs/errors/E003",
	},
	"E004": {
		Category:   CategoryLive,
		Message:    "handler panicked",
		Detail:     "An event handler panicked while running. The session stays alive; the event is dropped.",
		DocURL:     "https://picklist.dev/docs/errors/E004",
	},
	"E005": {
		Category:   CategoryLive,
		Message:    "websocket upgrade failed",
		Detail:     "The HTTP connection could not be upgraded to a WebSocket.",
		DocURL:     "https://picklist.dev/docs/errors/E005",
	},

	// Rendering (E020-E039)

	"E020": {
		Category: CategoryRender,
		Message:  "render failed",
		Detail:   "The view's tree could not be rendered to HTML.",
		DocURL:   "https://picklist.dev/docs/errors/E020",
	},

	// Publishing (E040-E059)

	"E040": {
		Category:   CategoryPublish,
		Message:    "snapshot write failed",
		Detail:     "The rendered page could not be written to the store.",
		Suggestion: "Check the output directory or bucket permissions.",
		DocURL:     "https://picklist.dev/docs/errors/E040",
	},
	"E041": {
		Category:   CategoryPublish,
		Message:    "snapshot too large",
		Detail:     "The rendered page exceeds the store's size limit.",
		DocURL:     "https://picklist.dev/docs/errors/E041",
	},
	"E042": {
		Category:   CategoryPublish,
		Message:    "page not found",
		Detail:     "No page with that name is registered in the showcase.",
		Suggestion: "Run `picklist render --list` to see the available pages.",
		DocURL:     "https://picklist.dev/docs/errors/E042",
	},

	// Configuration (E060-E079)

	"E060": {
		Category:   CategoryConfig,
		Message:    "invalid listen address",
		Detail:     "The --addr value is not a valid host:port.",
		Suggestion: "Use a value like :8080 or 127.0.0.1:8080.",
		DocURL:     "https://picklist.dev/docs/errors/E060",
	},
	"E061": {
		Category:   CategoryConfig,
		Message:    "missing S3 bucket",
		Detail:     "Publishing to S3 requires --s3-bucket.",
		Suggestion: "Pass --s3-bucket, or use --dir for a local snapshot.",
		DocURL:     "https://picklist.dev/docs/errors/E061",
	},
	"E062": {
		Category:   CategoryConfig,
		Message:    "AWS configuration failed",
		Detail:     "Credentials or region could not be resolved from the environment.",
		Suggestion: "Set AWS_PROFILE or AWS_ACCESS_KEY_ID, or pass --region.",
		DocURL:     "https://picklist.dev/docs/errors/E062",
	},

	// CLI (E080-E099)

	"E080": {
		Category:   CategoryCLI,
		Message:    "output write failed",
		Detail:     "The rendered output could not be written to the target file.",
		DocURL:     "https://picklist.dev/docs/errors/E080",
	},
}
