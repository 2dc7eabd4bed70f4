package commands

import (
	"errors"
	"strconv"
)

var ErrInvalidCommand = errors.New("invalid command")

func invalidArguments(name string) error {
	return errors.New("invalid arguments for " + name)
}

func extraArguments(name string) error {
	return errors.New("extra arguments for " + name)
}

func parseInteger(arg string) (int64, bool) {
	n, err := strconv.ParseInt(arg, 10, 64)
	return n, err == nil
}
