/* Package dc implements a small reverse Polish desk calculator in the style
of the classic dc(1), over arbitrary precision decimals.

Programs are parsed in full before anything runs: Parse scans the text with
an ordered Registry of command patterns, where the first pattern to match at
each offset wins, producing a Program or an UnknownCommandError. A Program then
runs against a Stack, one Token at a time, under an Executor; a command that
needs more values than the stack holds halts the run with an EmptyStackError,
leaving the stack as it was at that point.

Commands:

	whitespace   no-op
	# ...        comment to end of line
	_1.5         push a number; a leading _ means negative
	[text]       push a text
	I O          push the radix, always 10
	K            push the precision (significant digits)
	k            pop and set the precision
	f            print the stack, top first
	r            swap the top two values
	R            pop n, rotate the top |n| values; negative n rotates the other way
	c            clear the stack
	d            duplicate the top value
	z            push the stack depth
	v            square root
	+ - * / ^    arithmetic; the top value is the right hand operand
	%            remainder
	~            quotient and remainder
	|            modular exponentiation: base exp mod |

Multiplying a text by a number replicates the text.
*/
package dc
