// Package fontconv converts font files between the TTF, OTF, WOFF and WOFF2
// formats. It validates that the requested conversion is supported, resolves
// the destination path from an optional user hint, and cleans up partial
// output when the underlying transcoder fails.
package fontconv

// FontConverter transcodes a font file to the target format. Implementations
// must not leave output behind that is observable as a successful conversion
// when they return an error.
type FontConverter interface {
	Convert(input, output string, target Format) error
}

// Request describes a single font conversion.
type Request struct {
	Input  string // path of the font file to convert
	Target Format
	Output string // optional output path or directory hint, may be empty
}

// Result is the terminal outcome of a successful conversion. A failed
// conversion returns a classified error instead.
type Result struct {
	Output       string
	Target       Format
	Success      bool
	CreatedDir   bool // the resolver created the output directory
	CorrectedExt bool // the resolver replaced the hinted extension
}

// Converter orchestrates single font conversions. It holds no per-request
// state, so one Converter may serve concurrent requests on different files.
type Converter struct {
	FS    FileSystem
	Fonts FontConverter
}

// NewConverter returns a Converter using the local filesystem and the sfnt
// transcoder.
func NewConverter() *Converter {
	return &Converter{FS: DiskFS{}, Fonts: &Transcoder{}}
}

// Execute runs the conversion described by req. It checks that the input
// exists as a file, resolves the output path, detects the source format,
// validates the conversion against the compatibility matrix, and invokes the
// transcoder. When the transcoder fails, partial output is removed before the
// failure is returned. No step is retried.
func (c *Converter) Execute(req Request) (Result, error) {
	if !c.FS.IsFile(req.Input) {
		return Result{}, &InputNotFoundError{Path: req.Input}
	}

	resolution, err := ResolveOutput(c.FS, req.Input, req.Target, req.Output)
	if err != nil {
		return Result{}, err
	}

	source, err := FormatFromPath(req.Input)
	if err != nil {
		return Result{}, err
	}
	if !CanConvert(source, req.Target) {
		return Result{}, &ConversionNotAllowedError{Source: source, Target: req.Target}
	}

	if err := c.Fonts.Convert(req.Input, resolution.Path, req.Target); err != nil {
		if c.FS.Exists(resolution.Path) {
			c.FS.Remove(resolution.Path) // best-effort, the conversion error prevails
		}
		return Result{}, &ConversionFailedError{Input: req.Input, Output: resolution.Path, Err: err}
	}

	return Result{
		Output:       resolution.Path,
		Target:       req.Target,
		Success:      true,
		CreatedDir:   resolution.CreatedDir,
		CorrectedExt: resolution.CorrectedExt,
	}, nil
}
