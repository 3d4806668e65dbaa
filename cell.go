package spreadsheet

import "github.com/danvixent/sheetengine/formula"

// cellKind tags a Cell's variant, replacing the inheritance hierarchy the
// original implementation used (Impl/TextImpl/FormulaImpl/EmptyImpl) with a
// single struct dispatching on a tag, per §4.1's Design Notes: no
// allocation per contents change, exhaustive dispatch at call sites.
type cellKind uint8

const (
	cellEmpty cellKind = iota
	cellText
	cellFormula
)

// Cell is a single addressable unit of content: Empty, Text, or Formula.
// It holds a back-pointer to its owning Sheet so Formula evaluation can
// read other cells, mirroring the original Cell holding a reference to its
// owning sheet for the same reason. Cell is not safe for concurrent use.
type Cell struct {
	sheet *Sheet
	pos   Position

	kind cellKind
	text string       // raw Set() argument, for Text cells (escape sigil included, if any)
	ast  *formula.AST // parsed formula, for Formula cells

	cache   *CellValue            // nil means absent/stale
	reverse map[Position]struct{} // cells whose formula directly references this one
}

func newCell(sheet *Sheet, pos Position) *Cell {
	return &Cell{
		sheet:   sheet,
		pos:     pos,
		kind:    cellEmpty,
		reverse: make(map[Position]struct{}),
	}
}

// Set installs new contents at this cell, running the cycle check,
// cache invalidation, and reverse-edge maintenance in the order §5 fixes.
// A rejected Set (syntax or cycle error) leaves the cell exactly as it was.
func (c *Cell) Set(text string) error {
	var (
		newKind cellKind
		newText string
		newAST  *formula.AST
		newRefs []Position
	)

	switch {
	case text == "":
		newKind = cellEmpty
	case len(text) > 1 && text[0] == FormulaSigil:
		ast, err := formula.ParseFormula(text[1:])
		if err != nil {
			return &FormulaSyntaxError{Text: text, Err: err}
		}
		newKind = cellFormula
		newAST = ast
		newRefs = convertRefs(ast.ReferencedCells())
	default:
		newKind = cellText
		newText = text
	}

	if newKind == cellFormula && DetectCycle(c.sheet, c.pos, newRefs) {
		return &CircularDependencyError{At: c.pos}
	}

	// Order per §5: cycle check (above) -> invalidate the reverse closure
	// of self -> remove old forward edges -> install -> add new forward
	// edges.
	oldRefs := c.GetReferencedCells()

	InvalidateCache(c.sheet, c.pos)

	for _, v := range oldRefs {
		c.sheet.removeReverseDependent(v, c.pos)
	}

	c.kind = newKind
	c.text = newText
	c.ast = newAST
	c.cache = nil

	for _, v := range newRefs {
		c.sheet.addReverseDependent(v, c.pos)
	}

	return nil
}

// Clear is equivalent to Set(""); the reverse-edge cleanup of whatever
// contents preceded it still runs.
func (c *Cell) Clear() error {
	return c.Set("")
}

// GetValue returns the cached value if present, otherwise evaluates the
// current contents and memoizes the result.
func (c *Cell) GetValue() CellValue {
	if c.cache != nil {
		return *c.cache
	}
	v := c.evaluate()
	c.cache = &v
	return v
}

func (c *Cell) evaluate() CellValue {
	switch c.kind {
	case cellText:
		if len(c.text) > 0 && c.text[0] == EscapeSigil {
			return TextValue(c.text[1:])
		}
		return TextValue(c.text)

	case cellFormula:
		number, ferr := c.ast.Execute(c.sheet.formulaLookup())
		if ferr != nil {
			return ErrorValue(FormulaErrorKind(ferr.Kind))
		}
		return NumberValue(number)

	default: // cellEmpty
		return TextValue("")
	}
}

// GetText returns the cell's raw source text: "" for Empty, the stored
// string (escape sigil and all) for Text, and '=' plus the canonical
// rendering of the AST for Formula.
func (c *Cell) GetText() string {
	switch c.kind {
	case cellText:
		return c.text
	case cellFormula:
		return string(FormulaSigil) + c.ast.PrintCanonical()
	default:
		return ""
	}
}

// GetReferencedCells returns the positions this cell's formula reads.
// Empty and Text cells reference nothing.
func (c *Cell) GetReferencedCells() []Position {
	if c.kind != cellFormula {
		return nil
	}
	return convertRefs(c.ast.ReferencedCells())
}

func convertRefs(refs []formula.Position) []Position {
	if len(refs) == 0 {
		return nil
	}
	out := make([]Position, len(refs))
	for i, r := range refs {
		out[i] = Position{Row: r.Row, Col: r.Col}
	}
	return out
}
