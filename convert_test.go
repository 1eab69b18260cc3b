package fontconv

import (
	"errors"
	"testing"

	"github.com/tdewolff/test"
)

type fakeFS struct {
	files     map[string]bool
	dirs      map[string]bool
	mkdirs    []string
	mkdirErr  error
	removed   []string
	removeErr error
}

func newFakeFS() *fakeFS {
	return &fakeFS{files: map[string]bool{}, dirs: map[string]bool{}}
}

func (fs *fakeFS) IsFile(path string) bool { return fs.files[path] }
func (fs *fakeFS) IsDir(path string) bool  { return fs.dirs[path] }
func (fs *fakeFS) Exists(path string) bool { return fs.files[path] || fs.dirs[path] }

func (fs *fakeFS) MkdirAll(path string) error {
	if fs.mkdirErr != nil {
		return fs.mkdirErr
	}
	fs.mkdirs = append(fs.mkdirs, path)
	fs.dirs[path] = true
	return nil
}

func (fs *fakeFS) Remove(path string) error {
	fs.removed = append(fs.removed, path)
	if fs.removeErr != nil {
		return fs.removeErr
	}
	delete(fs.files, path)
	return nil
}

type convertCall struct {
	input, output string
	target        Format
}

type fakeFontConverter struct {
	fs      *fakeFS
	err     error
	partial bool // leave a partial output file behind when failing
	calls   []convertCall
}

func (c *fakeFontConverter) Convert(input, output string, target Format) error {
	c.calls = append(c.calls, convertCall{input, output, target})
	if c.err != nil {
		if c.partial {
			c.fs.files[output] = true
		}
		return c.err
	}
	c.fs.files[output] = true
	return nil
}

func TestExecuteSuccess(t *testing.T) {
	fs := newFakeFS()
	fs.files["font.ttf"] = true
	fonts := &fakeFontConverter{fs: fs}
	c := &Converter{FS: fs, Fonts: fonts}

	result, err := c.Execute(Request{Input: "font.ttf", Target: WOFF})
	test.Error(t, err)
	test.T(t, result.Output, "font.woff")
	test.T(t, result.Target, WOFF)
	test.That(t, result.Success, "conversion succeeded")
	test.T(t, len(fonts.calls), 1)
	test.T(t, fonts.calls[0], convertCall{"font.ttf", "font.woff", WOFF})
}

func TestExecuteInputNotFound(t *testing.T) {
	fs := newFakeFS()
	fonts := &fakeFontConverter{fs: fs}
	c := &Converter{FS: fs, Fonts: fonts}

	_, err := c.Execute(Request{Input: "missing.ttf", Target: WOFF})
	var notFound *InputNotFoundError
	test.That(t, errors.As(err, &notFound), "missing input is classified")
	test.T(t, notFound.Path, "missing.ttf")
	test.T(t, len(fonts.calls), 0)
}

func TestExecuteInputIsDirectory(t *testing.T) {
	fs := newFakeFS()
	fs.dirs["font.ttf"] = true
	c := &Converter{FS: fs, Fonts: &fakeFontConverter{fs: fs}}

	_, err := c.Execute(Request{Input: "font.ttf", Target: WOFF})
	var notFound *InputNotFoundError
	test.That(t, errors.As(err, &notFound), "a directory is not a valid input file")
}

func TestExecuteUnknownFormat(t *testing.T) {
	fs := newFakeFS()
	fs.files["font.eot"] = true
	fonts := &fakeFontConverter{fs: fs}
	c := &Converter{FS: fs, Fonts: fonts}

	_, err := c.Execute(Request{Input: "font.eot", Target: WOFF})
	var unknown *UnknownFormatError
	test.That(t, errors.As(err, &unknown), "eot input is classified")
	test.T(t, unknown.Path, "font.eot")
	test.T(t, len(fonts.calls), 0)
}

func TestExecuteConversionNotAllowed(t *testing.T) {
	fs := newFakeFS()
	fs.files["font.woff"] = true
	fonts := &fakeFontConverter{fs: fs}
	c := &Converter{FS: fs, Fonts: fonts}

	_, err := c.Execute(Request{Input: "font.woff", Target: TTF})
	var notAllowed *ConversionNotAllowedError
	test.That(t, errors.As(err, &notAllowed), "woff to ttf is blocked")
	test.T(t, notAllowed.Source, WOFF)
	test.T(t, notAllowed.Target, TTF)
	test.T(t, len(fonts.calls), 0)
}

func TestExecuteFailureCleanup(t *testing.T) {
	fs := newFakeFS()
	fs.files["font.ttf"] = true
	cause := errors.New("bad cmap table")
	fonts := &fakeFontConverter{fs: fs, err: cause, partial: true}
	c := &Converter{FS: fs, Fonts: fonts}

	_, err := c.Execute(Request{Input: "font.ttf", Target: WOFF2})
	var failed *ConversionFailedError
	test.That(t, errors.As(err, &failed), "backend failure is classified")
	test.That(t, errors.Is(err, cause), "cause is wrapped")
	test.T(t, failed.Output, "font.woff2")
	test.T(t, len(fs.removed), 1)
	test.T(t, fs.removed[0], "font.woff2")
	test.That(t, !fs.files["font.woff2"], "partial output is removed")
}

func TestExecuteFailureWithoutPartialOutput(t *testing.T) {
	fs := newFakeFS()
	fs.files["font.ttf"] = true
	fonts := &fakeFontConverter{fs: fs, err: errors.New("cannot parse font")}
	c := &Converter{FS: fs, Fonts: fonts}

	_, err := c.Execute(Request{Input: "font.ttf", Target: WOFF2})
	var failed *ConversionFailedError
	test.That(t, errors.As(err, &failed), "backend failure is classified")
	test.T(t, len(fs.removed), 0)
}

func TestExecuteCleanupFailureNotEscalated(t *testing.T) {
	fs := newFakeFS()
	fs.files["font.ttf"] = true
	fs.removeErr = errors.New("permission denied")
	cause := errors.New("bad glyf table")
	fonts := &fakeFontConverter{fs: fs, err: cause, partial: true}
	c := &Converter{FS: fs, Fonts: fonts}

	_, err := c.Execute(Request{Input: "font.ttf", Target: WOFF})
	test.That(t, errors.Is(err, cause), "conversion failure prevails over cleanup failure")
	test.T(t, len(fs.removed), 1)
}

func TestExecuteCorrectedExtension(t *testing.T) {
	fs := newFakeFS()
	fs.files["a/font.ttf"] = true
	fonts := &fakeFontConverter{fs: fs}
	c := &Converter{FS: fs, Fonts: fonts}

	result, err := c.Execute(Request{Input: "a/font.ttf", Target: WOFF2, Output: "out/res.ttf"})
	test.Error(t, err)
	test.T(t, result.Output, "out/res.woff2")
	test.That(t, result.CorrectedExt, "extension correction is signalled in the result")
}

func TestExecuteOutputDirCreated(t *testing.T) {
	fs := newFakeFS()
	fs.files["font.ttf"] = true
	fonts := &fakeFontConverter{fs: fs}
	c := &Converter{FS: fs, Fonts: fonts}

	result, err := c.Execute(Request{Input: "font.ttf", Target: OTF, Output: "outdir"})
	test.Error(t, err)
	test.T(t, result.Output, "outdir/font.otf")
	test.That(t, result.CreatedDir, "directory creation is signalled in the result")
}

func TestNewConverterDefaults(t *testing.T) {
	c := NewConverter()
	test.That(t, c.FS != nil && c.Fonts != nil, "default converter is fully wired")
}
