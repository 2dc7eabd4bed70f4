package commands

import (
	"strconv"

	"simpledb/internal/common"
	"simpledb/internal/dbmanager"
)

func init() {
	Register("NUMEQUALTO", []ArgSpec{
		{Name: "value", Type: "int64", Required: true, Description: "The value to count keys for"},
	}, ensureNumEqualTo, execNumEqualTo)
}

type NumEqualToArgs struct {
	value int64
}

func ensureNumEqualTo(dm *dbmanager.DBManager, cmd *common.Command) (*NumEqualToArgs, error) {
	if len(cmd.Args) != 1 {
		return nil, invalidArguments("NUMEQUALTO")
	}

	value, ok := parseInteger(cmd.Args[0])
	if !ok {
		return nil, invalidArguments("NUMEQUALTO")
	}

	return &NumEqualToArgs{value: value}, nil
}

func execNumEqualTo(dm *dbmanager.DBManager, numEqualToArgs *NumEqualToArgs, ctx *CommandContext) ([]byte, error) {
	count := dm.NumEqualTo(numEqualToArgs.value)
	return []byte(strconv.Itoa(count)), nil
}
