// Package report renders shop state in the plain text fixture format.
package report

import (
	"fmt"
	"io"

	"github.com/if23b108/GildedRose-Refactoring-Kata/internal/item"
)

// WriteDay writes one day block: header, column line, one line per item,
// then a blank line.
func WriteDay(w io.Writer, day int, items []item.Item) error {
	if _, err := fmt.Fprintf(w, "-------- day %d --------\n", day); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "name, sellIn, quality"); err != nil {
		return err
	}
	for _, it := range items {
		if _, err := fmt.Fprintln(w, it.String()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}
