package fontconv

import "fmt"

// InputNotFoundError is returned when the input path does not exist as a
// regular file.
type InputNotFoundError struct {
	Path string
}

func (e *InputNotFoundError) Error() string {
	return fmt.Sprintf("input file not found: %s", e.Path)
}

// UnknownFormatError is returned when a file extension or format name does
// not match any supported font format.
type UnknownFormatError struct {
	Path      string // empty when parsing a bare format name
	Extension string
}

func (e *UnknownFormatError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("unknown font format: %s", e.Extension)
	}
	return fmt.Sprintf("unknown font format %q: %s", e.Extension, e.Path)
}

// ConversionNotAllowedError is returned when the compatibility matrix blocks
// the source to target conversion.
type ConversionNotAllowedError struct {
	Source Format
	Target Format
}

func (e *ConversionNotAllowedError) Error() string {
	return fmt.Sprintf("cannot convert from %s to %s", e.Source, e.Target)
}

// ConversionFailedError wraps a failure of the font conversion backend. Any
// partial output has been removed by the time this error is returned.
type ConversionFailedError struct {
	Input  string
	Output string
	Err    error
}

func (e *ConversionFailedError) Error() string {
	return fmt.Sprintf("conversion of %s failed: %v", e.Input, e.Err)
}

func (e *ConversionFailedError) Unwrap() error {
	return e.Err
}

// OutputDirError is returned when the resolver cannot create the output
// directory.
type OutputDirError struct {
	Path string
	Err  error
}

func (e *OutputDirError) Error() string {
	return fmt.Sprintf("cannot create output directory %s: %v", e.Path, e.Err)
}

func (e *OutputDirError) Unwrap() error {
	return e.Err
}
