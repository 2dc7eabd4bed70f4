package commands

import (
	"errors"

	"simpledb/internal/common"
	"simpledb/internal/dbmanager"
)

func init() {
	Register("COMMIT", []ArgSpec{}, ensureCommit, execCommit)
}

type CommitArgs struct{}

func ensureCommit(dm *dbmanager.DBManager, cmd *common.Command) (*CommitArgs, error) {
	if len(cmd.Args) != 0 {
		return nil, extraArguments("COMMIT")
	}

	return &CommitArgs{}, nil
}

func execCommit(dm *dbmanager.DBManager, commitArgs *CommitArgs, ctx *CommandContext) ([]byte, error) {
	err := dm.Commit()
	if errors.Is(err, common.ErrNoActiveTransaction) {
		return []byte(noTransactionReply), nil
	}
	if err != nil {
		return nil, err
	}

	return nil, nil
}
