package cmd

import (
	"strings"
	"unicode/utf8"

	"github.com/eap-lang/eap/internal/lexer"
	"golang.org/x/text/encoding/charmap"
)

// decodeSource guesses raw's encoding and returns it as a UTF-8 string
// (§8): try it as UTF-8 and check it contains the ALGORITHM keyword;
// otherwise decode as Windows-1253 (the common encoding for older
// Greek-authored files) and retry the same check; otherwise fall back to
// lossy UTF-8 decoding and let the parser report whatever is actually
// wrong. The encoding guess never blocks execution.
func decodeSource(raw []byte) string {
	if utf8.Valid(raw) {
		src := string(raw)
		if lexer.ContainsAlgorithmKeyword(src) {
			return src
		}
	}

	if decoded, err := charmap.Windows1253.NewDecoder().Bytes(raw); err == nil {
		src := string(decoded)
		if lexer.ContainsAlgorithmKeyword(src) {
			return src
		}
	}

	return strings.ToValidUTF8(string(raw), string(utf8.RuneError))
}
