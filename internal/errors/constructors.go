package errors

import "errors"

// Convenience constructors for common error patterns

// ErrIncomparable signals that two values have no defined order. Callers
// treat the pair as equal-ordered instead of aborting a sort.
var ErrIncomparable = errors.New("values are not comparable")

// Document resolution errors

// InvalidDate reports a date value that could not be coerced to a
// timestamp during a front matter merge. The offending raw value and the
// merge source label are carried as context for diagnostics.
func InvalidDate(value any, source string) *SiteError {
	return New(CategoryDate, SeverityError, "invalid date value in front matter").
		WithContext("value", value).
		WithContext("source", source)
}

// FrontMatterSyntax reports malformed YAML front matter or a malformed
// structured-data document.
func FrontMatterSyntax(path string, cause error) *SiteError {
	return Wrap(cause, CategoryFrontMatter, SeverityError, "malformed front matter").
		WithContext("path", path)
}

// ReadFailed reports a generic I/O or parse failure while reading a document.
func ReadFailed(path string, cause error) *SiteError {
	return Wrap(cause, CategoryRead, SeverityError, "document read failed").
		WithContext("path", path)
}

// RenderFailed reports a markdown or layout rendering failure.
func RenderFailed(path string, cause error) *SiteError {
	return Wrap(cause, CategoryRender, SeverityError, "document render failed").
		WithContext("path", path)
}

// Configuration errors

func ConfigNotFound(path string) *SiteError {
	return New(CategoryConfig, SeverityFatal, "configuration file not found").
		WithContext("path", path)
}

func ValidationFailed(field, reason string) *SiteError {
	return New(CategoryConfig, SeverityFatal, "validation failed").
		WithContext("field", field).
		WithContext("reason", reason)
}

// Infrastructure errors

func WriteFailed(path string, cause error) *SiteError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "output write failed").
		WithContext("path", path)
}

func StoreFailed(operation string, cause error) *SiteError {
	return Wrap(cause, CategoryStore, SeverityError, "build state store operation failed").
		WithContext("operation", operation)
}

func HookPublishFailed(event string, cause error) *SiteError {
	return Wrap(cause, CategoryHooks, SeverityWarning, "hook event publish failed").
		WithContext("event", event)
}
