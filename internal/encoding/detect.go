// Package encoding normalises uploaded text files to UTF-8.
package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	xenc "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const sniffSize = 4096

// Charset names the encoding a file was decoded from.
type Charset string

const (
	CharsetUTF8        Charset = "UTF-8"
	CharsetUTF16LE     Charset = "UTF-16LE"
	CharsetUTF16BE     Charset = "UTF-16BE"
	CharsetWindows1252 Charset = "windows-1252"
	CharsetISO88599    Charset = "ISO-8859-9"
	CharsetWindows1256 Charset = "windows-1256"
)

var boms = []struct {
	mark    []byte
	charset Charset
	decoder func() *xenc.Decoder
}{
	{[]byte{0xEF, 0xBB, 0xBF}, CharsetUTF8, nil},
	{[]byte{0xFF, 0xFE}, CharsetUTF16LE, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder},
	{[]byte{0xFE, 0xFF}, CharsetUTF16BE, unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder},
}

// Heuristic results from chardet that we know how to decode.
var detected = map[string]Charset{
	"UTF-8":        CharsetUTF8,
	"ISO-8859-1":   CharsetWindows1252,
	"windows-1252": CharsetWindows1252,
	"ISO-8859-9":   CharsetISO88599,
	"windows-1256": CharsetWindows1256,
	"ISO-8859-6":   CharsetWindows1256,
}

var decoders = map[Charset]*charmap.Charmap{
	CharsetWindows1252: charmap.Windows1252,
	CharsetISO88599:    charmap.ISO8859_9,
	CharsetWindows1256: charmap.Windows1256,
}

// NewUTF8Reader sniffs the start of r and returns a reader yielding UTF-8 together with
// the charset it decoded from. A UTF-8 BOM is dropped. Anything that is neither marked,
// valid UTF-8, nor recognised by chardet is read as Windows-1252.
func NewUTF8Reader(r io.Reader) (io.Reader, Charset, error) {
	br := bufio.NewReaderSize(r, sniffSize)

	buf, err := br.Peek(sniffSize)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, "", fmt.Errorf("peek: %w", err)
	}

	for _, b := range boms {
		if !bytes.HasPrefix(buf, b.mark) {
			continue
		}

		if b.decoder == nil {
			_, _ = br.Discard(len(b.mark))
			return br, b.charset, nil
		}

		return transform.NewReader(br, b.decoder()), b.charset, nil
	}

	if utf8.Valid(buf) {
		return br, CharsetUTF8, nil
	}

	charset := CharsetWindows1252

	if result, err := chardet.NewTextDetector().DetectBest(buf); err == nil {
		if c, ok := detected[result.Charset]; ok {
			charset = c
		}
	}

	if charset == CharsetUTF8 {
		return br, charset, nil
	}

	return transform.NewReader(br, decoders[charset].NewDecoder()), charset, nil
}
