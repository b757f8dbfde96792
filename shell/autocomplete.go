package shell

import (
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/domino14/ludeme/testhelpers"
)

// ShellCompleter completes command names, game names after load and
// topics after help.
type ShellCompleter struct {
	sc *ShellController
}

func NewShellCompleter(sc *ShellController) *ShellCompleter {
	return &ShellCompleter{sc: sc}
}

// Do implements the readline.AutoCompleter interface.
func (c *ShellCompleter) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line[:pos])
	fields, err := shellquote.Split(text)
	if err != nil {
		fields = strings.Fields(text)
	}
	endsWithSpace := len(text) > 0 && text[len(text)-1] == ' '

	var prefix string
	var completions []string
	switch {
	case len(fields) == 0 || (len(fields) == 1 && !endsWithSpace):
		if len(fields) == 1 {
			prefix = fields[0]
		}
		completions = commandNames
	case len(fields) == 1 || (len(fields) == 2 && !endsWithSpace):
		if len(fields) == 2 {
			prefix = fields[1]
		}
		switch fields[0] {
		case "load":
			completions = testhelpers.Names()
		case "help":
			completions = commandNames
		}
	}

	var out [][]rune
	for _, cand := range completions {
		if strings.HasPrefix(cand, prefix) {
			out = append(out, []rune(cand[len(prefix):]+" "))
		}
	}
	return out, len([]rune(prefix))
}
