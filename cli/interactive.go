package cli

import (
	"bufio"
	"errors"
	"io"
	"os"
	"slices"
	"strings"
)

const (
	UseCommand  = "$use"  // This is used in interactive mode to indicate that a set of segments should be pushed to the invocation stack.
	BackCommand = "$back" // This is used in interactive mode to indicate that the last element on the invocation stack should be popped.
)

var (
	InteractiveFlag         = "-i"                  // InteractiveFlag specifies the argument that the user should pass to trigger [App.RespondInteractive].
	InteractiveQuitCommands = []string{"quit", "x"} // InteractiveQuitCommands is a slice of strings that should escape from interactive mode.
)

// RespondInteractive will start an interactive "shell" for the [App] if the [InteractiveFlag] is the first argument.
// Each line is parsed and executed in process, with the same router, as if it were given as arguments.
// Returns false if interactive mode was not requested by the user.
//
// This loop may be interrupted with one of the [InteractiveQuitCommands].
func (a *App) RespondInteractive() bool {
	args := os.Args[1:]
	if len(args) == 0 || args[0] != InteractiveFlag {
		return false
	}
	if err := a.interactiveLoop(os.Stdin); err != nil {
		a.printer.Println("Error running interactively:", err)
	}
	return true
}

func (a *App) interactiveLoop(in io.Reader) error {
	var (
		commandStack [][]string
		name         = a.router.Name(0)
		p            = a.printer
		scanner      = bufio.NewScanner(in)
	)
	prefixCommands := func() []string {
		if len(commandStack) == 0 {
			return nil
		}
		return commandStack[len(commandStack)-1]
	}
	p.Printf(`Running '%s' interactively. Enter %s to exit.
Use %s with one or more segments to push them to the invocation stack, and %s to pop and return.
`, name, strings.Join(InteractiveQuitCommands, " or "), UseCommand, BackCommand)
	for {
		p.Printf("%s> ", strings.TrimSpace(strings.Join(append([]string{name}, prefixCommands()...), " ")))
		if !scanner.Scan() {
			return scanner.Err()
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch {
		case slices.Contains(InteractiveQuitCommands, strings.ToLower(fields[0])):
			return nil
		case fields[0] == UseCommand:
			newStack := slices.Concat(prefixCommands(), fields[1:])
			p.Printf("Using '%s'\n", strings.Join(newStack, " "))
			commandStack = append(commandStack, newStack)
		case fields[0] == BackCommand:
			if len(commandStack) == 0 {
				p.Println("Already at root command")
				continue
			}
			commandStack = commandStack[:len(commandStack)-1]
		case fields[0] == InteractiveFlag:
			p.Println("Already running interactively")
		default:
			err := a.Exec(slices.Concat(prefixCommands(), fields))
			// Usage errors have already been shown.
			if err != nil && !errors.Is(err, &UsageError{}) {
				p.Error(err)
			}
		}
	}
}
