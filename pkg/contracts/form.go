package contracts

// FormBuilder appends parts to a caller owned multipart form. Absent inputs
// (empty path, nil value) are skipped without error; file read failures are
// returned as they come from the filesystem.
type FormBuilder interface {
	// AttachImage reads the file at path and appends it as image/png named
	// "<name>.png".
	AttachImage(path, name string) error
	// AttachJSONL reads the line-delimited JSON file at path and appends it.
	AttachJSONL(path, name string) error
	// AttachValue appends the textual form of value as a plain field.
	AttachValue(value any, name string) error
	// Len reports the number of parts appended so far.
	Len() int
}
