package logging

// Structured field names.
const (
	FieldError    = "error"
	FieldPath     = "path"
	FieldSocket   = "socket"
	FieldOp       = "op"
	FieldInput    = "input"
	FieldOutput   = "output"
	FieldRole     = "role"
	FieldEncoding = "encoding"
	FieldLayout   = "layout"
	FieldRemote   = "remote"
	FieldVersion  = "version"
	FieldClient   = "client"
)

// Build fields.
const (
	FieldCommit = "commit"
	FieldBuilt  = "built"
)
