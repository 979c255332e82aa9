package command

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/specialistvlad/cleago/internal/param"
	"github.com/specialistvlad/cleago/internal/parser"
)

const helpIndent = "    "

func writeHelp(w io.Writer, name, doc string, p *parser.Parser) {
	usage := "Usage: " + name + " [OPTIONS]"
	if vars := p.ArgVars(); len(vars) > 0 {
		usage += " " + strings.Join(vars, " ")
	}
	fmt.Fprintln(w, usage)
	fmt.Fprintf(w, "\n\t%s\n\n", doc)
	fmt.Fprint(w, "Options:\n\n")
	for _, opt := range p.Options() {
		fmt.Fprintln(w, helpIndent+opt.HelpLine())
	}
	fmt.Fprintf(w, "%s%-*s%s\n", helpIndent, param.HelpColumn, "--help", "Show help and exit.")
}

func writeCommands(w io.Writer, children []Executable) {
	fmt.Fprint(w, "\nCommands:\n\n")
	for _, child := range children {
		line := helpIndent + child.Name()
		if pad := param.HelpColumn - len(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		fmt.Fprintln(w, line+helpIndent+child.Summary())
	}
}

var errorLabel = color.New(color.FgRed, color.Bold).SprintFunc()

// ReportError writes err to w as a single `Error: ...` line. The label is
// colored when color output is enabled.
func ReportError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", errorLabel("Error:"), err)
}
