package fontconv

import (
	"fmt"
	"os"

	"github.com/tdewolff/font"
)

// Transcoder implements FontConverter on the tdewolff/font library. The
// input may be any supported format and is unwrapped to bare sfnt data
// before being written in the target format.
type Transcoder struct {
	Index int // index into a font collection (TTC or OTC)
}

func (t *Transcoder) Convert(input, output string, target Format) error {
	b, err := os.ReadFile(input)
	if err != nil {
		return err
	}
	data, err := font.ToSFNT(b)
	if err != nil {
		return fmt.Errorf("%s: %v", input, err)
	}
	sfnt, err := font.ParseSFNT(data, t.Index)
	if err != nil {
		return fmt.Errorf("%s: %v", input, err)
	}

	var out []byte
	switch target {
	case TTF:
		if sfnt.IsCFF {
			return fmt.Errorf("cannot convert CFF to TrueType glyph outlines")
		}
		out = sfnt.Write()
	case OTF:
		if sfnt.IsTrueType {
			return fmt.Errorf("cannot convert TrueType to CFF glyph outlines")
		}
		out = sfnt.Write()
	case WOFF:
		if out, err = writeWOFF(sfnt); err != nil {
			return err
		}
	case WOFF2:
		if out, err = sfnt.WriteWOFF2(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported output format: %v", target)
	}
	return os.WriteFile(output, out, 0644)
}
