// Package form implements the form-state controller: a per-instance store of
// field values, touched flags, and validation errors, plus the submission
// flow that gates a caller-supplied handler behind a clean validation pass.
//
// A Controller owns its state exclusively and processes events (change,
// blur, submit) synchronously to completion. It is not safe for concurrent
// use; bind one controller per form instance.
package form
