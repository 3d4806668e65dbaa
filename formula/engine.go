// Package formula implements the §6 external collaborator spec.md treats
// as out of scope for the core engine: a lexer, a recursive-descent parser,
// and an AST evaluator over the grammar spec.md §6 names — infix + - * /,
// unary + -, parenthesization, numeric literals, and A1-form cell
// references. spreadsheet.Cell calls ParseFormula and never reaches into
// this package's internals; the dependency runs one way.
package formula

// ParseFormula parses expression (the formula text with its leading '='
// sigil already stripped by the caller) into an AST, or returns a syntax
// error describing why it was rejected.
func ParseFormula(expression string) (*AST, error) {
	return Parse(expression)
}
