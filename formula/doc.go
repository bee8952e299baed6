// Package formula evaluates the reference-and-arithmetic expressions held
// by expression nodes.
//
// A formula may contain reference tokens of the form {{path}}, where path
// is a dotted jar path. Evaluation substitutes each reference with the
// referenced node's value, resolved against the whole tree root. A
// reference to another expression node substitutes that node's raw formula
// text verbatim; there is no recursive evaluation.
//
// After substitution, the result is evaluated as arithmetic only when it
// looks arithmetic (contains an operator character or is itself a number)
// and contains nothing but digits, the operators + - * / %, parentheses,
// decimal points, and whitespace. Anything else is returned as plain text.
//
// The arithmetic grammar is standard 4-function expressions with modulo
// and parentheses over float64, usual precedence, left-to-right
// associativity, and unary minus. It is evaluated by a dedicated tokenizer
// and recursive-descent parser; no dynamic code execution is involved.
//
// Failures are localized: a bad formula yields the "ERR" sentinel and an
// error describing the failure, and never affects any other node.
package formula
