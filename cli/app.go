package cli

import (
	"errors"
	"log/slog"
	"os"
	"strings"

	"github.com/saylorsolutions/segroute/route"
)

// Exit codes used by [App.Main].
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// App runs the actions of a [route.Router] as a command line interface.
type App struct {
	router  *route.Router
	parser  route.Parser
	printer *Printer
	width   int
	log     *slog.Logger
}

// AppOption configures an [App] created with [New].
type AppOption func(a *App)

// WithParser replaces the [route.DefaultParser].
// The parser's logger is kept if it has one, otherwise the App's logger is used.
func WithParser(p route.Parser) AppOption {
	return func(a *App) {
		a.parser = p
	}
}

// WithPrinter sets where user-visible output is written.
func WithPrinter(p *Printer) AppOption {
	return func(a *App) {
		a.printer = p
	}
}

// WithWidth sets the column width usage is wrapped to. Zero disables wrapping.
func WithWidth(width int) AppOption {
	return func(a *App) {
		a.width = width
	}
}

// WithLogger sets the logger for parsing and dispatching.
func WithLogger(log *slog.Logger) AppOption {
	return func(a *App) {
		a.log = log
	}
}

// WithConfig applies a [Config], usually loaded with [LoadConfig].
func WithConfig(cfg Config) AppOption {
	return func(a *App) {
		a.parser.EqSeparator = cfg.EqSeparator
		if cfg.Width > 0 {
			a.width = cfg.Width
		}
		cfg.applyColor()
	}
}

// New creates an [App] for the router.
// Output goes to STDERR, and usage is wrapped to the terminal width when STDOUT is a terminal.
func New(router *route.Router, opts ...AppOption) *App {
	if router == nil {
		panic("nil router passed to cli.New")
	}
	a := &App{
		router:  router,
		parser:  route.DefaultParser,
		printer: NewPrinter(),
		width:   TerminalWidth(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.log == nil {
		a.log = slog.New(discardHandler{})
	}
	if a.parser.Logger == nil {
		a.parser.Logger = a.log
	}
	return a
}

// Printer returns the [Printer] used for user-visible output.
func (a *App) Printer() *Printer {
	return a.printer
}

// Exec parses args, which shouldn't include the program name, and runs the selected segment's action.
//
// Usage is printed instead when the help option is given, or when the selected segment has no action of its own.
// Invalid input is returned as a [UsageError], after printing it with usage for the deepest segment that matched.
func (a *App) Exec(args []string) error {
	c, err := a.parser.Parse(a.router, args)
	if err != nil {
		if errors.Is(err, route.ErrInvalidInput) {
			uerr := &UsageError{wrapped: err}
			a.respondUsage(uerr, a.deepest(args))
			return uerr
		}
		return err
	}
	log := a.log.With("segment", strings.Join(a.router.Path(c.Selected), " "))
	if c.HelpRequested() || !a.router.HasAction(c.Selected) {
		log.Debug("Showing usage", "help", c.HelpRequested())
		a.printer.Print(Usage(a.router, c.Selected, a.width))
		return nil
	}
	if err := runGlobalPreExec(c); err != nil {
		return err
	}
	log.Debug("Running action", "operands", len(c.Operands()))
	if err := c.Run(); err != nil {
		if errors.Is(err, &UsageError{}) {
			a.respondUsage(err, c.Selected)
		}
		return err
	}
	return nil
}

// Run executes the App with the process arguments, or enters interactive mode when requested.
func (a *App) Run() error {
	if a.RespondInteractive() {
		return nil
	}
	return a.Exec(os.Args[1:])
}

// Main calls [App.Run] and exits the process with the result of [ExitCode].
func (a *App) Main() {
	err := a.Run()
	if err != nil && !errors.Is(err, &UsageError{}) {
		a.printer.Error(err)
	}
	os.Exit(ExitCode(err))
}

// ExitCode maps the error returned from [App.Exec] to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, &UsageError{}):
		return ExitUsage
	default:
		return ExitError
	}
}

func (a *App) respondUsage(err error, segment uint16) {
	if uerr, ok := AsUsageError(err); ok {
		uerr.path = a.router.Path(segment)
	}
	a.printer.Error(err)
	a.printer.Println()
	a.printer.Print(Usage(a.router, segment, a.width))
}

// deepest finds the segment named by args while ignoring options, for showing usage after a failed parse.
func (a *App) deepest(args []string) uint16 {
	var (
		path     []string
		selected uint16
	)
	for _, arg := range args {
		if arg == "--" {
			break
		}
		if strings.HasPrefix(arg, "-") {
			continue
		}
		if idx, ok := a.router.Lookup(append(path, arg)...); ok {
			path = append(path, arg)
			selected = idx
		}
	}
	return selected
}
