package commands

import (
	"simpledb/internal/common"
	"simpledb/internal/dbmanager"
)

func init() {
	Register("GET", []ArgSpec{
		{Name: "key", Type: "string", Required: true, Description: "The key to get"},
	}, ensureGet, execGet)
}

type GetArgs struct {
	key string
}

func ensureGet(dm *dbmanager.DBManager, cmd *common.Command) (*GetArgs, error) {
	if len(cmd.Args) != 1 {
		return nil, invalidArguments("GET")
	}

	return &GetArgs{key: cmd.Args[0]}, nil
}

// execGet answers with the bound value, or NULL when the key is absent
func execGet(dm *dbmanager.DBManager, getArgs *GetArgs, ctx *CommandContext) ([]byte, error) {
	return []byte(dm.Get(getArgs.key).String()), nil
}
