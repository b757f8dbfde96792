package shell

import (
	"sort"
	"strings"
)

var helpTopics = map[string]string{
	"load":    "load <game> - load and compile a sample game, starting a new trial",
	"games":   "games - list the sample games",
	"gen":     "gen - list the legal moves, numbered",
	"play":    "play #n - apply move n from the last gen",
	"undo":    "undo - take back the last move",
	"state":   "state - show the board and whose turn it is",
	"report":  "report [-format yaml|text] - show the compile summary and diagnostics",
	"playout": "playout [n] - play n random games and summarize them",
	"help":    "help [command] - show help",
	"exit":    "exit - leave the shell",
}

var commandNames = func() []string {
	names := make([]string, 0, len(helpTopics))
	for k := range helpTopics {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}()

func (sc *ShellController) help(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) > 0 {
		if h, ok := helpTopics[cmd.args[0]]; ok {
			return msg(h), nil
		}
		return msg("There is no help text for the topic " + cmd.args[0]), nil
	}
	lines := make([]string, len(commandNames))
	for i, n := range commandNames {
		lines[i] = helpTopics[n]
	}
	return msg(strings.Join(lines, "\n")), nil
}
