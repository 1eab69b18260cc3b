package fontconv

import (
	"bytes"
	"encoding/binary"
	"sort"

	"github.com/klauspost/compress/zlib"
	"github.com/tdewolff/font"
	"github.com/tdewolff/parse/v2"
)

// writeWOFF wraps the font's tables in the WOFF 1.0 container. Each table is
// compressed individually with zlib and stored raw when compression does not
// make it smaller, as the format requires.
func writeWOFF(sfnt *font.SFNT) ([]byte, error) {
	tags := make([]string, 0, len(sfnt.Tables))
	for tag := range sfnt.Tables {
		if tag == "DSIG" {
			continue // exclude DSIG table
		}
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	// size of the equivalent uncompressed sfnt with padded tables
	totalSfntSize := uint32(12 + 16*len(tags))
	for _, tag := range tags {
		totalSfntSize += (uint32(len(sfnt.Tables[tag])) + 3) &^ 3
	}

	w := parse.NewBinaryWriter([]byte{})
	w.WriteString("wOFF")            // signature
	w.WriteString(sfnt.Version)      // flavor
	w.WriteUint32(0)                 // length (set later)
	w.WriteUint16(uint16(len(tags))) // numTables
	w.WriteUint16(0)                 // reserved
	w.WriteUint32(totalSfntSize)     // totalSfntSize
	w.WriteUint16(1)                 // majorVersion
	w.WriteUint16(0)                 // minorVersion
	w.WriteUint32(0)                 // metaOffset
	w.WriteUint32(0)                 // metaLength
	w.WriteUint32(0)                 // metaOrigLength
	w.WriteUint32(0)                 // privOffset
	w.WriteUint32(0)                 // privLength

	// we'll write the table directory when the offsets are known
	dirPos := w.Len()
	w.WriteBytes(make([]byte, 20*len(tags)))

	offsets := make([]uint32, len(tags))
	compLengths := make([]uint32, len(tags))
	for i, tag := range tags {
		table := sfnt.Tables[tag]
		data, err := compressTable(table)
		if err != nil {
			return nil, err
		}
		if len(table) <= len(data) {
			data = table
		}
		offsets[i] = uint32(w.Len())
		compLengths[i] = uint32(len(data))
		w.WriteBytes(data)

		padding := uint32(4-w.Len()&3) & 3
		for n := uint32(0); n < padding; n++ {
			w.WriteByte(0)
		}
	}

	b := w.Bytes()
	binary.BigEndian.PutUint32(b[8:], uint32(len(b))) // length
	for i, tag := range tags {
		pos := uint32(dirPos) + uint32(20*i)
		copy(b[pos:], []byte(tag))
		binary.BigEndian.PutUint32(b[pos+4:], offsets[i])
		binary.BigEndian.PutUint32(b[pos+8:], compLengths[i])
		binary.BigEndian.PutUint32(b[pos+12:], uint32(len(sfnt.Tables[tag])))
		binary.BigEndian.PutUint32(b[pos+16:], tableChecksum(tag, sfnt.Tables[tag]))
	}
	return b, nil
}

func compressTable(table []byte) ([]byte, error) {
	buf := &bytes.Buffer{}
	zw := zlib.NewWriter(buf)
	if _, err := zw.Write(table); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// tableChecksum sums the table as big-endian uint32s, treating it as
// zero-padded to a four-byte boundary. The checkSumAdjustment field of the
// head table is excluded from its checksum.
func tableChecksum(tag string, table []byte) uint32 {
	var sum uint32
	for i := 0; i < len(table); i += 4 {
		var v uint32
		for j := 0; j < 4; j++ {
			v <<= 8
			if i+j < len(table) {
				v |= uint32(table[i+j])
			}
		}
		if tag == "head" && i == 8 {
			v = 0
		}
		sum += v
	}
	return sum
}
