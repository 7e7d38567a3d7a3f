/*
Package route selects a command, or a resource, from its input and extracts the options and operands given for it.

A tree of segments is described with [New] and [Seg.Nest], then flattened by [Build] into an immutable [Router].
Segments are stored in pre-order, and each one records how many descendants follow it, so a parse can skip an entire
subtree in one step. A [Router] is safe to share, and each parse produces its own [Context].

# Command lines

[Parser.Parse] walks arguments from left to right. An argument naming a child of the selected segment selects that
child, until the selected segment expects operands. Options may appear anywhere.

  - Long options are given as "--name", or "-name" with [Parser.SingleHyphen].
  - Short options may be clustered, as in "-abc", and only the last one in a cluster may take a value.
  - "--" ends parsing, and everything after it is available from [Context.TerminatedArgs].
  - "-" is always an operand.

Unrecognized segments and options are ignored, so older builds accept newer invocations.

# Option groups

A segment declares the options it accepts in groups. [AnyOf] groups accept any combination, [OneOf] groups accept at most
one option, and [OptGroup.Required] needs at least one. Options outside of every group are rejected, unless the segment
declares no groups at all. The help option is always accepted.

# URIs

[Parser.ParseURI] skips the scheme and authority found by [ScanAuthority], matches path components the same way as
arguments, and treats query parameters as options. A segment named with a leading ':' matches any component, which is
captured as a path parameter.
*/
package route
