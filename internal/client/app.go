package client

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-task-keeper/internal/adapter"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
)

type command struct {
	usage string
	run   func(ctx context.Context, args []string) error
}

var _ Client = (*App)(nil)

// App runs one subcommand per invocation.
type App struct {
	adapter  adapter.ServerAdapter
	out      io.Writer
	commands map[string]command
	logger   *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, out io.Writer, logger *logger.Logger) *App {
	a := &App{adapter: serverAdapter, out: out, logger: logger}
	a.commands = map[string]command{
		"register": {"register -email E -password P", a.register},
		"login":    {"login -email E -password P", a.login},
		"me":       {"me", a.me},
		"list":     {"list [-category C] [-priority P] [-search S] [-sort O]", a.list},
		"add":      {"add -name N [-description D] [-category C] [-priority P]", a.add},
		"update":   {"update -id ID [-name N] [-description D] [-category C] [-priority P] [-done=true|false]", a.update},
		"done":     {"done ID", a.done},
		"delete":   {"delete ID", a.delete},
		"health":   {"health", a.health},
		"version":  {"version", a.version},
	}
	return a
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printUsage()
		return ErrNoCommand
	}

	name := args[0]
	if name == "help" || name == "-h" || name == "--help" {
		a.printUsage()
		return nil
	}

	cmd, ok := a.commands[name]
	if !ok {
		a.printUsage()
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}

	a.logger.Debug().Str("command", name).Msg("running command")
	if err := cmd.run(ctx, args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%s: %w", name, err)
	}

	return nil
}

func (a *App) printUsage() {
	fmt.Fprintln(a.out, "usage: task-keeper <command> [flags]")
	fmt.Fprintln(a.out, "commands:")
	for _, name := range []string{"register", "login", "me", "list", "add", "update", "done", "delete", "health", "version"} {
		fmt.Fprintf(a.out, "  %s\n", a.commands[name].usage)
	}
	fmt.Fprintln(a.out, "set ADAPTER_TOKEN to the token printed by login or register.")
}

func (a *App) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	return fs
}

func (a *App) printJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(a.out, string(b))
	return err
}

// positionalID returns the first positional argument, or the -id flag value
// when the flag set defines one.
func positionalID(fs *flag.FlagSet, flagID string) (string, error) {
	id := strings.TrimSpace(flagID)
	if id == "" && fs.NArg() > 0 {
		id = strings.TrimSpace(fs.Arg(0))
	}
	if id == "" {
		return "", fmt.Errorf("%w: id", ErrMissingFlag)
	}
	return id, nil
}
