/* Package main: STK -- a small concatenative language

STK programs are whitespace separated words, run left to right against a
single operand stack. There is no other syntax: a word is either a literal, a
binding reference, an action, or a brace that opens or closes a block.

	// prints 7
	3 4 + println

Literals push themselves: integers like 42 and -7, and characters like 'x'.
There are no string literals; strings are arrays of characters, and are
printed as text.

Blocks are written between braces, and are pushed onto the stack as values
without being run. The "#" action pops a block and runs it; so do the
looping and higher order actions, like while, map, fold, and break.

	// defines the word inc, then prints 42
	{ 1 + } $inc ::
	41 inc println

Bindings are written with a "$" sigil. Referencing a bound name pushes its
value. Referencing an unbound name pushes a placeholder, which the ":" action
consumes to bind the next value down on the stack:

	// binds $x to 5, then prints 25
	5 $x :
	$x $x * println

A name may be bound only once in a frame; binding it again is an error, since
the second $x reference pushes 5, not a placeholder.

Scoping is dynamic: each running block gets a fresh frame of bindings, which
is discarded when the block returns. A block sees the bindings of every block
that is running beneath it, not those of the place where it was written.

Words are defined with "::", which takes a placeholder and a block; a word may
not be redefined. Words and builtin actions are called the same way, by name.

Errors stop the program. Syntax errors report where the offending text is;
execution errors report the innermost action that was running when the error
happened.

The builtin actions are:

	:  ::  #               bind, define word, run block
	true false = ? | & !   booleans, equality, choice
	while                  loop: body-block cond-block while
	+ - * / > < neg abs    integers
	. .. ... .... ..... ......  unpack an array of 1 to 6 items
	[] @ length append range map ++ fold sort shift break reverse
	lines wsplit int digit?
	print println debug

See stdlib.stk for the standard words, defined in STK itself.

Usage:

	gostk [-timeout d] [-trace] [-depth-limit n] [-no-stdlib] [program.stk [input]]

With no program, an interactive session starts. Given an input file, its
contents are bound to $input as a string before the program runs.

Lines whose first non-blank text is "//" are comments.
*/
package main
