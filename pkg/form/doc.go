// Package form appends files and primitive values to multipart request
// bodies.
//
// Two destinations are offered behind contracts.FormBuilder. Multipart writes
// parts through mime/multipart for requests built with net/http. Sections keeps
// an ordered list of sections that is encoded on demand, for requests built
// with the framework client in pkg/http.
//
// Absent inputs are skipped: an empty path or a nil value appends nothing and
// returns nil. Errors from reading a file are returned unchanged, so
// errors.Is(err, fs.ErrNotExist) works on them.
package form
