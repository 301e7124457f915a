package rest

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// contentDisposition builds an attachment header for the stored filename.
// Embedded double quotes are replaced so the quoted value cannot break out
// of the header. The quoted value carries an ASCII fold of the name for
// legacy clients; when the name is not pure ASCII, filename* carries the
// exact UTF-8 form.
func contentDisposition(filename string) string {
	safe := strings.ReplaceAll(filename, `"`, "_")

	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	ascii, _, err := transform.String(t, safe)
	if err != nil {
		ascii = safe
	}
	ascii = strings.Map(func(r rune) rune {
		if r < 0x20 || r > 0x7e {
			return '_'
		}
		return r
	}, ascii)

	if ascii == safe {
		return fmt.Sprintf("attachment; filename=%q", safe)
	}

	return fmt.Sprintf(
		"attachment; filename=%q; filename*=UTF-8''%s",
		ascii, url.PathEscape(safe),
	)
}

func isMn(r rune) bool { return unicode.Is(unicode.Mn, r) }
