package param

import "strings"

// padHelp aligns help at HelpColumn, keeping at least one space after prefix.
func padHelp(prefix, help string) string {
	if help == "" {
		return prefix
	}
	pad := HelpColumn - len(prefix)
	if pad < 1 {
		pad = 1
	}
	return prefix + strings.Repeat(" ", pad) + help
}

// wrapHelp aligns help at HelpColumn, moving it to an indented second line
// when prefix already reaches the column.
func wrapHelp(prefix, help string) string {
	if help == "" {
		return prefix
	}
	if len(prefix) < HelpColumn {
		return prefix + strings.Repeat(" ", HelpColumn-len(prefix)) + help
	}
	return prefix + "\n" + strings.Repeat(" ", HelpColumn) + "    " + help
}
