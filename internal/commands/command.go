package commands

import (
	"log"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"time"

	"simpledb/internal/common"
	"simpledb/internal/dbmanager"
)

// ArgSpec describes exactly one positional argument
type ArgSpec struct {
	Name        string
	Type        string
	Required    bool
	Description string
}

// CommandSpec is what each file builds and calls Register on
type CommandSpec struct {
	Name    string
	Args    []ArgSpec
	Handler func(dm *dbmanager.DBManager, cmd *common.Command) ([]byte, error)
}

type CommandContext struct {
	sessionId string
}

var registry = make(map[string]*CommandSpec)

// Register wires up your CommandSpec into the global registry
func Register[I any](
	name string,
	args []ArgSpec,
	ensureInputs func(*dbmanager.DBManager, *common.Command) (I, error),
	execute func(*dbmanager.DBManager, I, *CommandContext) ([]byte, error),
) {
	if name == "" {
		log.Fatalf("command name cannot be empty")
	}

	uppercasedName := strings.ToUpper(name)

	if _, ok := registry[uppercasedName]; ok {
		log.Fatalf("command with name %q already registered", name)
	}

	if ensureInputs == nil {
		log.Fatalf("command %q must supply ensureInput function", name)
	}
	if execute == nil {
		log.Fatalf("command %q must supply execute function", name)
	}

	handler := func(dm *dbmanager.DBManager, cmd *common.Command) ([]byte, error) {
		logger := slog.With("command", name, "sessionId", cmd.SessionId)

		logger.Debug("Validating command", "args", cmd.Args)
		in, err := ensureInputs(dm, cmd)
		if err != nil {
			logger.Debug("Validation failed", "error", err)
			return nil, err
		}

		t0 := time.Now()
		res, err := execute(dm, in, &CommandContext{sessionId: cmd.SessionId})
		dt := time.Since(t0)

		if err != nil {
			logger.Warn("Command failed", "duration", dt, "error", err)
		} else {
			logger.Debug("Command done", "duration", dt)
		}
		return res, err
	}

	registry[uppercasedName] = &CommandSpec{
		Name:    uppercasedName,
		Args:    args,
		Handler: handler,
	}
}

// Get returns the CommandSpec registered under name, if any
func Get(name string) (*CommandSpec, bool) {
	uppercasedName := strings.ToUpper(name)
	c, ok := registry[uppercasedName]
	return c, ok
}

// Names lists the registered commands in alphabetical order
func Names() []string {
	return slices.Sorted(maps.Keys(registry))
}

// Usage renders the command and its arguments, e.g. "SET <key> <value>"
func (c *CommandSpec) Usage() string {
	var b strings.Builder
	b.WriteString(c.Name)
	for _, arg := range c.Args {
		if arg.Required {
			b.WriteString(" <" + arg.Name + ">")
		} else {
			b.WriteString(" [" + arg.Name + "]")
		}
	}
	return b.String()
}

// Dispatch looks up cmd.Operation and runs its handler
func Dispatch(dm *dbmanager.DBManager, cmd *common.Command) ([]byte, error) {
	spec, ok := Get(cmd.Operation)
	if !ok {
		return nil, ErrInvalidCommand
	}
	return spec.Handler(dm, cmd)
}
