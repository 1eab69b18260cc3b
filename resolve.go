package fontconv

import (
	"path/filepath"
	"strings"
)

// Resolution is the outcome of output path resolution.
type Resolution struct {
	Path         string // destination the conversion writes to
	CreatedDir   bool   // a missing output directory was created
	CorrectedExt bool   // the hint's extension was replaced by the target's
}

// resolveRule is one case of the resolution cascade. Rules are evaluated
// top-down and the first match determines the result, which keeps the
// priority order auditable and each case testable on its own.
type resolveRule struct {
	name  string
	match func(fs FileSystem, input string, target Format, hint string) bool
	apply func(fs FileSystem, input string, target Format, hint string) (Resolution, error)
}

var resolveRules = []resolveRule{
	{
		name: "no hint, sibling of input",
		match: func(fs FileSystem, input string, target Format, hint string) bool {
			return hint == ""
		},
		apply: func(fs FileSystem, input string, target Format, hint string) (Resolution, error) {
			return Resolution{Path: replaceExt(input, target)}, nil
		},
	},
	{
		name: "hint is an existing directory",
		match: func(fs FileSystem, input string, target Format, hint string) bool {
			return fs.IsDir(hint)
		},
		apply: func(fs FileSystem, input string, target Format, hint string) (Resolution, error) {
			return Resolution{Path: filepath.Join(hint, stem(input)+target.Extension())}, nil
		},
	},
	{
		name: "hint without extension, create directory",
		match: func(fs FileSystem, input string, target Format, hint string) bool {
			return filepath.Ext(hint) == ""
		},
		apply: func(fs FileSystem, input string, target Format, hint string) (Resolution, error) {
			if err := fs.MkdirAll(hint); err != nil {
				return Resolution{}, &OutputDirError{Path: hint, Err: err}
			}
			return Resolution{Path: filepath.Join(hint, stem(input)+target.Extension()), CreatedDir: true}, nil
		},
	},
	{
		name: "hint extension differs from target",
		match: func(fs FileSystem, input string, target Format, hint string) bool {
			return !strings.EqualFold(filepath.Ext(hint), target.Extension())
		},
		apply: func(fs FileSystem, input string, target Format, hint string) (Resolution, error) {
			return Resolution{Path: replaceExt(hint, target), CorrectedExt: true}, nil
		},
	},
	{
		name: "hint used verbatim",
		match: func(fs FileSystem, input string, target Format, hint string) bool {
			return true
		},
		apply: func(fs FileSystem, input string, target Format, hint string) (Resolution, error) {
			return Resolution{Path: hint}, nil
		},
	},
}

// ResolveOutput computes the destination path for converting input to target.
// hint may be empty, an existing directory, a directory to create, or a file
// path whose extension is corrected to the target's when it differs. Creating
// a missing hint directory is the only side effect.
func ResolveOutput(fs FileSystem, input string, target Format, hint string) (Resolution, error) {
	for _, rule := range resolveRules {
		if rule.match(fs, input, target, hint) {
			return rule.apply(fs, input, target, hint)
		}
	}
	return Resolution{Path: hint}, nil // unreachable, the last rule always matches
}

func replaceExt(path string, target Format) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + target.Extension()
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
