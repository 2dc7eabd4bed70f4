package commands

import (
	"simpledb/internal/common"
	"simpledb/internal/dbmanager"
)

func init() {
	Register("UNSET", []ArgSpec{
		{Name: "key", Type: "string", Required: true, Description: "The key to remove"},
	}, ensureUnset, execUnset)
}

type UnsetArgs struct {
	key string
}

func ensureUnset(dm *dbmanager.DBManager, cmd *common.Command) (*UnsetArgs, error) {
	if len(cmd.Args) != 1 {
		return nil, invalidArguments("UNSET")
	}

	return &UnsetArgs{key: cmd.Args[0]}, nil
}

func execUnset(dm *dbmanager.DBManager, unsetArgs *UnsetArgs, ctx *CommandContext) ([]byte, error) {
	dm.Unset(unsetArgs.key)
	return nil, nil
}
