package frontend

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/1homsi/hopscotch/internal/symtab"
)

// WritePlain renders groups (in emission order, ascending group ids,
// members already sorted ascending by the solver) as one line per
// group: "<group-id>: " followed by each label and a single space,
// then "\n" (so "0: f g \n", with a space before the newline).
func WritePlain(w io.Writer, tab *symtab.Table, groups [][]uint32) error {
	var b strings.Builder
	for groupID, members := range groups {
		b.WriteString(strconv.Itoa(groupID))
		b.WriteString(": ")
		for _, id := range members {
			sym := tab.Get(id)
			if sym == nil {
				return fmt.Errorf("plain output: unknown symbol id %d", id)
			}
			b.WriteString(sym.Text)
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}
