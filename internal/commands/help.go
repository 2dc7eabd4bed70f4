package commands

import (
	"strings"

	"simpledb/internal/common"
	"simpledb/internal/dbmanager"
)

func init() {
	Register("HELP", []ArgSpec{}, ensureHelp, execHelp)
}

type HelpArgs struct{}

func ensureHelp(dm *dbmanager.DBManager, cmd *common.Command) (*HelpArgs, error) {
	if len(cmd.Args) != 0 {
		return nil, extraArguments("HELP")
	}

	return &HelpArgs{}, nil
}

func execHelp(dm *dbmanager.DBManager, helpArgs *HelpArgs, ctx *CommandContext) ([]byte, error) {
	lines := make([]string, 0)
	for _, name := range Names() {
		spec, _ := Get(name)
		lines = append(lines, spec.Usage())
		for _, arg := range spec.Args {
			lines = append(lines, "    "+arg.Name+" ("+arg.Type+"): "+arg.Description)
		}
	}
	return []byte(strings.Join(lines, "\n")), nil
}
