package wincred

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// ansiCodePages maps Windows ANSI code page identifiers (the values GetACP
// returns) to decoders. The set covers the code pages Windows actually
// ships as system ANSI code pages.
var ansiCodePages = map[uint32]encoding.Encoding{
	437:  charmap.CodePage437,
	850:  charmap.CodePage850,
	852:  charmap.CodePage852,
	866:  charmap.CodePage866,
	874:  charmap.Windows874,
	932:  japanese.ShiftJIS,
	936:  simplifiedchinese.GBK,
	949:  korean.EUCKR,
	950:  traditionalchinese.Big5,
	1250: charmap.Windows1250,
	1251: charmap.Windows1251,
	1252: charmap.Windows1252,
	1253: charmap.Windows1253,
	1254: charmap.Windows1254,
	1255: charmap.Windows1255,
	1256: charmap.Windows1256,
	1257: charmap.Windows1257,
	1258: charmap.Windows1258,
}

// decodeCodePage decodes b under the given Windows code page with strict
// error handling: any byte the code page cannot represent fails the call
// instead of being substituted.
func decodeCodePage(b []byte, cp uint32) (string, error) {
	if cp == 65001 {
		if !utf8.Valid(b) {
			return "", &EncodingError{CodePage: cp, Reason: "invalid UTF-8 sequence"}
		}
		return string(b), nil
	}

	enc, ok := ansiCodePages[cp]
	if !ok {
		return "", &EncodingError{CodePage: cp, Reason: "no decoder for this code page"}
	}

	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", &EncodingError{CodePage: cp, Reason: err.Error()}
	}
	// x/text decoders substitute U+FFFD for undecodable bytes rather than
	// failing. No ANSI code page maps any byte to U+FFFD, so a replacement
	// rune in the output always means the input was not valid in cp.
	if bytes.ContainsRune(out, utf8.RuneError) {
		return "", &EncodingError{
			CodePage: cp,
			Reason:   fmt.Sprintf("byte sequence is not valid code page %d text", cp),
		}
	}
	return string(out), nil
}
