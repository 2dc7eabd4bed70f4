package common

import "errors"

var ErrNoActiveTransaction = errors.New("no active transaction")
