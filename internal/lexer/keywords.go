package lexer

import (
	"github.com/eap-lang/eap/pkg/ident"
	"github.com/eap-lang/eap/pkg/token"
)

// keywords maps every accent-folded Greek and English spelling of a
// keyword to its token type. Both spellings of a keyword always resolve to
// the same type; the surface language a program happens to use is not
// otherwise tracked.
var keywords = buildKeywordTable(map[token.Type][]string{
	token.ALGORITHM:    {"ΑΛΓΟΡΙΘΜΟΣ", "ALGORITHM"},
	token.CONSTANTS:    {"ΣΤΑΘΕΡΕΣ", "CONSTANTS"},
	token.DATA:         {"ΜΕΤΑΒΛΗΤΕΣ", "DATA", "VARIABLES"},
	token.BEGIN:        {"ΑΡΧΗ", "BEGIN"},
	token.END:          {"ΤΕΛΟΣ", "END"},
	token.INTEGER_TYPE: {"ΑΚΕΡΑΙΟΣ", "ΑΚΕΡΑΙΟΙ", "ΑΚΕΡΑΙΟΥΣ", "INTEGER"},
	token.REAL_TYPE:    {"ΠΡΑΓΜΑΤΙΚΟΣ", "ΠΡΑΓΜΑΤΙΚΟΙ", "ΠΡΑΓΜΑΤΙΚΟΥΣ", "REAL"},
	token.BOOLEAN_TYPE: {"ΛΟΓΙΚΗ", "ΛΟΓΙΚΕΣ", "BOOLEAN"},
	token.CHAR_TYPE:    {"ΧΑΡΑΚΤΗΡΑΣ", "ΧΑΡΑΚΤΗΡΕΣ", "CHAR"},
	token.STRING_TYPE:  {"ΣΥΜΒΟΛΟΣΕΙΡΑ", "ΣΥΜΒΟΛΟΣΕΙΡΕΣ", "STRING"},
	token.ARRAY:        {"ΠΙΝΑΚΑΣ", "ARRAY"},
	token.OF:           {"ΑΠΟ", "OF"},
	token.FUNCTION:     {"ΣΥΝΑΡΤΗΣΗ", "FUNCTION"},
	token.PROCEDURE:    {"ΔΙΑΔΙΚΑΣΙΑ", "PROCEDURE"},
	token.INTERFACE:    {"ΔΙΕΠΑΦΗ", "INTERFACE"},
	token.INPUT:        {"ΕΙΣΟΔΟΣ"}, // INPUT is deliberately NOT reserved, see §4.1
	token.OUTPUT:       {"ΕΞΟΔΟΣ"},  // OUTPUT is deliberately NOT reserved, see §4.1
	token.CALCULATE:    {"ΚΑΛΕΣΕ", "CALCULATE", "CALL"},
	token.IF:           {"ΕΑΝ", "IF"},
	token.THEN:         {"ΤΟΤΕ", "THEN"},
	token.ELSE:         {"ΑΛΛΙΩΣ", "ELSE"},
	token.FOR:          {"ΓΙΑ", "FOR"},
	token.TO:           {"ΕΩΣ", "TO"},
	token.WITH:         {"ΜΕ", "WITH"},
	token.STEP:         {"ΒΗΜΑ", "STEP"},
	token.REPEAT:       {"ΕΠΑΝΑΛΑΒΕ", "REPEAT"},
	token.WHILE:        {"ΕΝΟΣΩ", "WHILE"},
	token.UNTIL:        {"ΜΕΧΡΙ", "UNTIL"},
	token.PRINT:        {"ΤΥΠΩΣΕ", "PRINT"},
	token.READ:         {"ΔΙΑΒΑΣΕ", "READ"},
	token.TRUE:         {"ΑΛΗΘΗΣ", "TRUE"},
	token.FALSE:        {"ΨΕΥΔΗΣ", "FALSE"},
	token.AND:          {"ΚΑΙ", "AND"},
	token.OR:           {"Η", "OR"},
	token.NOT:          {"ΟΧΙ", "NOT"},
	token.DIV:          {"DIV"},
	token.MOD:          {"MOD"},
	// Underscore spellings of the block closers scan as one identifier
	// lexeme, so they live here rather than in compoundKeywords.
	token.END_IF:        {"END_IF"},
	token.END_FOR:       {"END_FOR"},
	token.END_WHILE:     {"END_WHILE"},
	token.END_FUNCTION:  {"END_FUNCTION"},
	token.END_PROCEDURE: {"END_PROCEDURE"},
})

// compoundKeywords lists the hyphenated keywords that must be recognized
// atomically before the hyphen is considered the minus operator (spec
// §4.1). Lookup is by the whole hyphenated lexeme, so the order of the
// entries does not matter.
var compoundKeywords = buildKeywordTable(map[token.Type][]string{
	token.END_IF:        {"ΕΑΝ-ΤΕΛΟΣ", "END-IF"},
	token.END_FOR:       {"ΓΙΑ-ΤΕΛΟΣ", "END-FOR"},
	token.END_WHILE:     {"ΕΝΟΣΩ-ΤΕΛΟΣ", "END-WHILE"},
	token.END_FUNCTION:  {"ΤΕΛΟΣ-ΣΥΝΑΡΤΗΣΗΣ", "END-FUNCTION"},
	token.END_PROCEDURE: {"ΤΕΛΟΣ-ΔΙΑΔΙΚΑΣΙΑΣ", "END-PROCEDURE"},
})

func buildKeywordTable(spellings map[token.Type][]string) map[string]token.Type {
	table := make(map[string]token.Type)
	for tok, words := range spellings {
		for _, w := range words {
			table[ident.Normalize(w)] = tok
		}
	}
	return table
}

// lookupKeyword resolves a plain (non-hyphenated) lexeme to its token
// type, accent- and case-insensitively. INPUT/OUTPUT English spellings are
// intentionally absent from the table so they remain usable identifiers.
func lookupKeyword(lexeme string) (token.Type, bool) {
	t, ok := keywords[ident.Normalize(lexeme)]
	return t, ok
}

// lookupCompoundKeyword resolves a hyphenated lexeme to its token type.
func lookupCompoundKeyword(lexeme string) (token.Type, bool) {
	t, ok := compoundKeywords[ident.Normalize(lexeme)]
	return t, ok
}
