/*
Package jsonv is a JSON lexer, recursive-descent parser and validator that
conforms strictly to RFC 8259. It turns raw text into a token stream, then
into a value tree, or reports the first syntax error with its exact 1-indexed
line and column.

The lexer rejects everything the RFC rejects: unescaped control characters
and bad escapes in strings, single-quoted strings, leading zeros and
malformed fractions or exponents in numbers, and misspelled literals. The
parser additionally rejects duplicate object keys, trailing commas, and
content after the top-level value. The first error aborts the attempt; there
is no recovery or multi-error reporting.

Nesting depth is bounded only by the stack, so adversarial input can exhaust
it; callers wanting a bound must impose an input-size limit.

cmd/jsonv wraps Validate in a CLI filter with distinct exit codes and an
optional pretty printer.
*/
package jsonv // import "github.com/d1ced/jsonv_airp"
