// Package frontend implements the line-oriented textual front-end:
// parsing `head: succ succ …` input into the engine, and rendering
// solved groups either as plain group listings or as DOT output.
package frontend

import (
	"bufio"
	"io"
	"strings"

	"github.com/1homsi/hopscotch/internal/engine"
	"github.com/1homsi/hopscotch/internal/symtab"
)

// Parse reads line-oriented input from r: each non-empty,
// non-comment line has the shape `head token separator successor
// successor …`, where head is terminated by a colon or whitespace.
// Lines starting with '#' are comments; blank lines and lines with no
// head token (nothing but whitespace before the first colon) are
// silently skipped. Every label is interned via tab
// and added to eng via Add.
func Parse(r io.Reader, tab *symtab.Table, eng *engine.Engine) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if trimmed := strings.TrimLeft(line, " \t"); trimmed == "" || trimmed[0] == ':' {
			continue
		}

		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ':' || r == ' ' || r == '\t'
		})
		if len(fields) == 0 {
			continue
		}

		head := fields[0]
		headSym, _, err := tab.Intern(head)
		if err != nil {
			return err
		}

		succIDs := make([]uint32, 0, len(fields)-1)
		for _, tok := range fields[1:] {
			sym, _, err := tab.Intern(tok)
			if err != nil {
				return err
			}
			succIDs = append(succIDs, sym.ID)
		}

		if !eng.Add(headSym.ID, succIDs) {
			return eng.LastError()
		}
	}
	return scanner.Err()
}
