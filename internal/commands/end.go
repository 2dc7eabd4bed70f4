package commands

import (
	"log/slog"

	"simpledb/internal/common"
	"simpledb/internal/dbmanager"
)

func init() {
	Register("END", []ArgSpec{}, ensureEnd, execEnd)
}

type EndArgs struct{}

func ensureEnd(dm *dbmanager.DBManager, cmd *common.Command) (*EndArgs, error) {
	if len(cmd.Args) != 0 {
		return nil, extraArguments("END")
	}

	return &EndArgs{}, nil
}

func execEnd(dm *dbmanager.DBManager, endArgs *EndArgs, ctx *CommandContext) ([]byte, error) {
	dm.End()
	slog.Debug("Session ended by command", "sessionId", ctx.sessionId)
	return nil, nil
}
