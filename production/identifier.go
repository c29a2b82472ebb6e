package production

import "strings"

// normalizeIdentifier strips a single leading underscore used to escape a
// WebIDL keyword as an identifier (e.g. "_interface"), per the tokenizer's
// contract: the underscore is retained in the token text but stripped from
// the semantic name.
func normalizeIdentifier(text string) string {
	return strings.TrimPrefix(text, "_")
}
