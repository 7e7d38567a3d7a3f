/*
Package cli runs the actions of a [route.Router] as a command line interface.

There are a few reasonable (IMHO) policies for how this operates.

  - User-visible output should go to STDERR by default. This is supported with a configurable [Printer].
  - Options are declared once for the whole tree, and each command lists the option groups it accepts.
  - Unrecognized commands and options are ignored rather than rejected, so scripts written for newer builds still run.
  - Configuration that isn't part of an invocation, like log levels, comes from the environment with [LoadConfig].

# Invocation

Invoking a CLI can always follow this form:

	CLI_NAME [COMMAND...] [OPTIONS...] [OPERANDS...]

Options may be given anywhere after CLI_NAME, and "--" ends option parsing.
Just calling CLI_NAME, or any command without an action of its own, will print usage information.

# Usage by default

Usage is shown for the selected command when the router's help option is given.
It's rendered by [Usage] with the command's summary, the options it accepts, and its sub-commands.
Input the parser rejects, or a [UsageError] returned from an action, is printed along with usage as well.

# Prioritizing Dev UX

If your CLI calls [App.Run], then the [InteractiveFlag] (which can be changed) enters interactive mode.
Each line is run in process with the same router.

If you want to work with a nested command, [UseCommand] pushes commands to an invocation stack.
Use [BackCommand] to pop the invocation stack and go back to where you were.

To exit interactive mode, use one of the [InteractiveQuitCommands] at the prompt.

*/
package cli
