package console

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/udisondev/battlego/internal/data"
)

// RosterLines lists the catalog as a numbered menu:
// "N. Display (Type: Title, HP: n)".
func RosterLines(catalog *data.Catalog) []string {
	title := cases.Title(language.English)
	all := catalog.All()
	lines := make([]string, len(all))
	for i, a := range all {
		lines[i] = fmt.Sprintf("%d. %s (Type: %s, HP: %d)", i+1, a.Display(), title.String(a.Type().String()), a.BaseHP())
	}
	return lines
}
