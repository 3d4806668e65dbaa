package spreadsheet

import (
	"io"
	"log/slog"
	"strconv"

	"github.com/danvixent/sheetengine/formula"
)

// Sheet is a single sparse grid of cells. It owns all cells, mediates
// reverse-edge bookkeeping between them, and is the only way the dependency
// graph is mutated: Cell.Set calls back into Sheet's addReverseDependent /
// removeReverseDependent rather than reaching into another cell directly.
type Sheet struct {
	cells map[Position]*Cell

	maxRows int
	maxCols int
	logger  *slog.Logger
}

// NewSheet builds an empty Sheet, applying opts in order.
func NewSheet(opts ...Option) *Sheet {
	s := &Sheet{
		cells:   make(map[Position]*Cell),
		maxRows: DefaultMaxRows,
		maxCols: DefaultMaxCols,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetCell parses and installs text at pos. Invalid positions fail with
// InvalidPositionError before anything else runs; a previously-unpopulated
// slot is lazily created as Empty before the candidate contents are
// attempted, so a rejected Set on a brand-new position may still leave a
// visible (but Empty) cell behind.
func (s *Sheet) SetCell(pos Position, text string) error {
	if !pos.Valid(s.maxRows, s.maxCols) {
		return &InvalidPositionError{Pos: pos}
	}
	cell := s.ensureCell(pos)
	if err := cell.Set(text); err != nil {
		s.logRejected(pos, text, err)
		return err
	}
	return nil
}

// GetCell returns the cell at pos, or a nil handle if no cell has ever been
// stored there. An invalid pos fails with InvalidPositionError.
func (s *Sheet) GetCell(pos Position) (*Cell, error) {
	if !pos.Valid(s.maxRows, s.maxCols) {
		return nil, &InvalidPositionError{Pos: pos}
	}
	return s.cells[pos], nil
}

// ClearCell removes the contents at pos, leaving it Empty. It is a no-op if
// the slot was never populated. An invalid pos still fails.
func (s *Sheet) ClearCell(pos Position) error {
	if !pos.Valid(s.maxRows, s.maxCols) {
		return &InvalidPositionError{Pos: pos}
	}
	cell, ok := s.cells[pos]
	if !ok {
		return nil
	}
	return cell.Clear()
}

// GetPrintableSize returns the smallest rectangle anchored at (0,0) that
// contains every cell whose GetText is non-empty.
func (s *Sheet) GetPrintableSize() Size {
	var sz Size
	for pos, cell := range s.cells {
		if cell.GetText() == "" {
			continue
		}
		if pos.Row+1 > sz.Rows {
			sz.Rows = pos.Row + 1
		}
		if pos.Col+1 > sz.Cols {
			sz.Cols = pos.Col + 1
		}
	}
	return sz
}

// PrintValues writes the printable rectangle's evaluated values to w,
// tab-separated within a row, newline-terminated after every row including
// the last.
func (s *Sheet) PrintValues(w io.Writer) error {
	return s.print(w, func(c *Cell) string {
		if c == nil {
			return ""
		}
		return c.GetValue().String()
	})
}

// PrintTexts writes the printable rectangle's raw source text to w, with
// the same layout as PrintValues.
func (s *Sheet) PrintTexts(w io.Writer) error {
	return s.print(w, func(c *Cell) string {
		if c == nil {
			return ""
		}
		return c.GetText()
	})
}

func (s *Sheet) print(w io.Writer, render func(*Cell) string) error {
	size := s.GetPrintableSize()
	for r := 0; r < size.Rows; r++ {
		for c := 0; c < size.Cols; c++ {
			if c > 0 {
				if _, err := io.WriteString(w, "\t"); err != nil {
					return err
				}
			}
			cell := s.cells[Position{Row: r, Col: c}]
			if _, err := io.WriteString(w, render(cell)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// ensureCell returns the cell at pos, creating it as Empty if this is the
// first time pos has been touched. It does not check bounds: SetCell
// validates pos first, but addReverseDependent passes formula targets
// through unchecked.
func (s *Sheet) ensureCell(pos Position) *Cell {
	if c, ok := s.cells[pos]; ok {
		return c
	}
	c := newCell(s, pos)
	s.cells[pos] = c
	return c
}

// addReverseDependent records that the cell at dependent reads target,
// auto-creating target as Empty if it has never been touched (a formula may
// reference a position nothing has written to yet). target is not
// bounds-checked, so a reference to an out-of-bounds position gets an Empty
// slot there holding the reverse edge; SetCell and GetCell still reject
// that position, and formulaLookup resolves it to Ref.
func (s *Sheet) addReverseDependent(target, dependent Position) {
	s.ensureCell(target).reverse[dependent] = struct{}{}
}

// removeReverseDependent drops the dependent edge from target, tolerating a
// target that no longer exists.
func (s *Sheet) removeReverseDependent(target, dependent Position) {
	if cell, ok := s.cells[target]; ok {
		delete(cell.reverse, dependent)
	}
}

// formulaLookup builds the closure formula.AST.Execute uses to resolve cell
// references, implementing §4.6's coercion table: invalid positions raise
// Ref; positions outside the printable size or never written raise nothing
// and coerce to 0; otherwise the referenced cell's value is read and
// coerced (Number as-is, Error propagated, Text parsed or rejected as
// Value).
func (s *Sheet) formulaLookup() formula.Lookup {
	return func(p formula.Position) (float64, *formula.FormulaError) {
		pos := Position{Row: p.Row, Col: p.Col}
		if !pos.Valid(s.maxRows, s.maxCols) {
			return 0, &formula.FormulaError{Kind: formula.ErrRef}
		}

		size := s.GetPrintableSize()
		cell, ok := s.cells[pos]
		if !ok || pos.Row >= size.Rows || pos.Col >= size.Cols {
			return 0, nil
		}

		value := cell.GetValue()
		switch value.Kind {
		case ValueNumber:
			return value.Number, nil
		case ValueError:
			return 0, &formula.FormulaError{Kind: formula.ErrorKind(value.Err)}
		default: // ValueText
			if value.Text == "" {
				return 0, nil
			}
			n, err := strconv.ParseFloat(value.Text, 64)
			if err != nil {
				return 0, &formula.FormulaError{Kind: formula.ErrValue}
			}
			return n, nil
		}
	}
}
