package commands

import (
	"simpledb/internal/common"
	"simpledb/internal/dbmanager"
)

func init() {
	Register("SET", []ArgSpec{
		{Name: "key", Type: "string", Required: true, Description: "The key to set"},
		{Name: "value", Type: "int64", Required: true, Description: "The value to bind to the key"},
	}, ensureSet, execSet)
}

type SetArgs struct {
	key   string
	value int64
}

func ensureSet(dm *dbmanager.DBManager, cmd *common.Command) (*SetArgs, error) {
	if len(cmd.Args) != 2 {
		return nil, invalidArguments("SET")
	}

	value, ok := parseInteger(cmd.Args[1])
	if !ok {
		return nil, invalidArguments("SET")
	}

	return &SetArgs{key: cmd.Args[0], value: value}, nil
}

func execSet(dm *dbmanager.DBManager, setArgs *SetArgs, ctx *CommandContext) ([]byte, error) {
	dm.Set(setArgs.key, setArgs.value)
	return nil, nil
}
