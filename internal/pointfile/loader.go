// Package pointfile reads whitespace-delimited XYZ point files into a DEFG point sink.
package pointfile

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Sink receives loaded points. DEFG's point list implements it.
type Sink interface {
	AddPoint(x, y, z float64)
}

// Options controls how a point file is decoded.
type Options struct {
	// Encoding names the text encoding used when the file has no byte-order mark:
	// "windows-1252", "iso-8859-1" or "" for UTF-8.
	Encoding string
}

// Load reads path into sink and returns the number of points forwarded.
// A file that cannot be opened yields 0.
func Load(path string, sink Sink) int {
	return LoadWith(path, sink, Options{})
}

// LoadWith is Load with explicit decoding options.
func LoadWith(path string, sink Sink, opts Options) int {
	f, err := os.Open(path)
	if err != nil {
		return 0
	}
	defer f.Close()

	return Read(f, sink, opts)
}

// Read parses X Y Z triples from r until end of input or the first record that is
// not three numbers. Records are token based and may span or share lines.
//
// Each point is forwarded as (-X, -Y, Z): files store map form (north and west
// positive) while DEFG grids are row-major with south and east positive.
func Read(r io.Reader, sink Sink, opts Options) int {
	dec := unicode.BOMOverride(fallbackDecoder(opts.Encoding))
	sc := bufio.NewScanner(transform.NewReader(r, dec))
	sc.Split(bufio.ScanWords)

	loaded := 0
	var rec [3]float64
	for {
		for i := range rec {
			if !sc.Scan() {
				return loaded
			}
			v, err := strconv.ParseFloat(sc.Text(), 64)
			// Out-of-range values keep their ±Inf, as scanf does.
			if err != nil && !errors.Is(err, strconv.ErrRange) {
				return loaded
			}
			rec[i] = v
		}
		sink.AddPoint(-rec[0], -rec[1], rec[2])
		loaded++
	}
}

func fallbackDecoder(name string) transform.Transformer {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "windows-1252", "cp1252":
		return charmap.Windows1252.NewDecoder()
	case "iso-8859-1", "latin1":
		return charmap.ISO8859_1.NewDecoder()
	}
	return encoding.Nop.NewDecoder()
}
