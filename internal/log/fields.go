package log

// Common field names for structured logging.
const (
	FieldComponent   = "component"
	FieldRequestID   = "request_id"
	FieldClientIP    = "client_ip"
	FieldMethod      = "method"
	FieldPath        = "path"
	FieldStatusCode  = "status_code"
	FieldDuration    = "duration_ms"
	FieldUserAgent   = "user_agent"
	FieldSuccess     = "success"
	FieldError       = "error"
	FieldOperation   = "operation"
	FieldStatementID = "statement_id"
	FieldFilename    = "filename"
	FieldRows        = "rows"
	FieldBytes       = "bytes"
	FieldChecksum    = "checksum"
)

// Components defines standard component names.
const (
	ComponentApp       = "app"
	ComponentHTTP      = "http"
	ComponentStatement = "statement"
	ComponentParser    = "parser"
	ComponentCache     = "cache"
	ComponentSecurity  = "security"
	ComponentRateLimit = "rate_limit"
	ComponentTemplate  = "template"
	ComponentCLI       = "cli"
)

// Operations defines standard operation names.
const (
	OpParse    = "parse"
	OpUpload   = "upload"
	OpRender   = "render"
	OpClear    = "clear"
	OpValidate = "validate"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)

// Fields is a builder for structured log attributes.
type Fields map[string]any

// NewFields creates an empty Fields builder.
func NewFields() Fields {
	return make(Fields)
}

// WithComponent adds the component field.
func (f Fields) WithComponent(component string) Fields {
	f[FieldComponent] = component
	return f
}

// WithOperation adds the operation field.
func (f Fields) WithOperation(op string) Fields {
	f[FieldOperation] = op
	return f
}

// WithError adds the error field when err is non-nil.
func (f Fields) WithError(err error) Fields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

// WithStatement adds statement identity fields.
func (f Fields) WithStatement(id, filename string, rows int) Fields {
	f[FieldStatementID] = id
	f[FieldFilename] = filename
	f[FieldRows] = rows
	return f
}

// WithHTTPRequest adds request fields.
func (f Fields) WithHTTPRequest(method, path, clientIP string) Fields {
	f[FieldMethod] = method
	f[FieldPath] = path
	f[FieldClientIP] = clientIP
	return f
}

// WithHTTPResponse adds response fields.
func (f Fields) WithHTTPResponse(statusCode int, durationMs int64) Fields {
	f[FieldStatusCode] = statusCode
	f[FieldDuration] = durationMs
	f[FieldSuccess] = statusCode < 400
	return f
}

// ToSlice flattens the fields for slog's variadic API.
func (f Fields) ToSlice() []any {
	out := make([]any, 0, len(f)*2)
	for k, v := range f {
		out = append(out, k, v)
	}
	return out
}
