/* Command godc is a reverse Polish desk calculator over arbitrary precision
decimals, in the spirit of dc(1).

Usage:

	godc [-e expr] [-prec N] [-emax N] [-emin N] [-i] [-trace] [file ...]

The program text comes from the -e expression if given, otherwise from the
named files read one after another, otherwise from standard input. The whole
text is parsed before anything runs. After a successful run, the stack is
printed to standard output, top first, one value per line.

Errors are reported on standard error along with the file, line, and column
of the command that caused them. The exit status is 1 for an unknown command,
2 when a command finds too few values on the stack, and 3 for any other error.

With -i, each line read is parsed and run against one persistent stack, which
is shown after every line; errors are reported without ending the session.
When standard input is a terminal, lines may be edited and recalled from
history.

With -trace, every command is logged as it runs, and the stack is dumped
after an error.

See package dc for the command language.
*/
package main
