package commands

import (
	"log/slog"

	"simpledb/internal/common"
	"simpledb/internal/dbmanager"
)

func init() {
	Register("BEGIN", []ArgSpec{}, ensureBegin, execBegin)
}

type BeginArgs struct{}

func ensureBegin(dm *dbmanager.DBManager, cmd *common.Command) (*BeginArgs, error) {
	if len(cmd.Args) != 0 {
		return nil, extraArguments("BEGIN")
	}

	return &BeginArgs{}, nil
}

func execBegin(dm *dbmanager.DBManager, beginArgs *BeginArgs, ctx *CommandContext) ([]byte, error) {
	scopeId := dm.Begin()
	slog.Debug("Transaction begun", "sessionId", ctx.sessionId, "scopeId", scopeId, "depth", dm.TransactionManager.Depth())
	return nil, nil
}
