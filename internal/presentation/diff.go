package presentation

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// RegistryDiff renders a line-oriented diff between the current and the
// would-be registry.json, shown on dry runs so the operator can inspect
// the change before publishing for real.
func RegistryDiff(before, after string) string {
	dmp := diffmatchpatch.New()

	// Line-mode diff: convert lines to runes, diff, then re-expand
	beforeRunes, afterRunes, lines := dmp.DiffLinesToRunes(before, after)
	diffs := dmp.DiffMainRunes(beforeRunes, afterRunes, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	var b strings.Builder
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		}
		for _, line := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			b.WriteString(prefix)
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return b.String()
}
