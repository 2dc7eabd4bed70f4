package commands

import (
	"errors"

	"simpledb/internal/common"
	"simpledb/internal/dbmanager"
)

const noTransactionReply = "NO TRANSACTION"

func init() {
	Register("ROLLBACK", []ArgSpec{}, ensureRollback, execRollback)
}

type RollbackArgs struct{}

func ensureRollback(dm *dbmanager.DBManager, cmd *common.Command) (*RollbackArgs, error) {
	if len(cmd.Args) != 0 {
		return nil, extraArguments("ROLLBACK")
	}

	return &RollbackArgs{}, nil
}

func execRollback(dm *dbmanager.DBManager, rollbackArgs *RollbackArgs, ctx *CommandContext) ([]byte, error) {
	err := dm.Rollback()
	if errors.Is(err, common.ErrNoActiveTransaction) {
		return []byte(noTransactionReply), nil
	}
	if err != nil {
		return nil, err
	}

	return nil, nil
}
