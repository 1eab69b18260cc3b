package fontconv

import (
	"path/filepath"
	"strings"
)

// Format is a font file format. Its value is the canonical lowercase file
// extension without the leading dot.
type Format string

const (
	TTF   Format = "ttf"
	OTF   Format = "otf"
	WOFF  Format = "woff"
	WOFF2 Format = "woff2"
)

// Formats lists all supported font formats.
var Formats = []Format{TTF, OTF, WOFF, WOFF2}

func (format Format) String() string {
	return string(format)
}

// Extension returns the canonical file extension including the leading dot.
func (format Format) Extension() string {
	return "." + string(format)
}

// ParseFormat parses a format name such as "woff2", "WOFF2" or ".woff2".
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimPrefix(s, "."))
	for _, format := range Formats {
		if name == string(format) {
			return format, nil
		}
	}
	return "", &UnknownFormatError{Extension: name}
}

// FormatFromPath detects the font format from the file extension of path.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	format, err := ParseFormat(ext)
	if err != nil {
		return "", &UnknownFormatError{Path: path, Extension: ext}
	}
	return format, nil
}

// blockedTargets maps a source format to the targets it cannot be converted
// to. A source that is absent converts to any format, including itself. WOFF
// and WOFF2 wrap compressed sfnt data that this pipeline cannot unwrap back
// to bare TTF/OTF losslessly.
var blockedTargets = map[Format][]Format{
	WOFF:  {TTF, OTF},
	WOFF2: {TTF, OTF},
}

// CanConvert returns whether a font of format source may be converted to target.
func CanConvert(source, target Format) bool {
	for _, blocked := range blockedTargets[source] {
		if target == blocked {
			return false
		}
	}
	return true
}
