package spreadsheet

// DetectCycle reports whether installing candidateRefs as self's forward
// references would create a cycle, per §4.3: a DFS over forward references
// starting from each candidate ref, using a visited set shared across all
// of them, reporting a cycle iff the traversal ever visits self.
//
// The DFS reads the sheet's currently installed contents for every cell
// other than self — self's old contents are never consulted, since the
// candidate is what would replace them.
func DetectCycle(sheet *Sheet, self Position, candidateRefs []Position) bool {
	visited := make(map[Position]bool)

	var visit func(p Position) bool
	visit = func(p Position) bool {
		if p == self {
			return true
		}
		if visited[p] {
			return false
		}
		visited[p] = true

		cell, ok := sheet.cells[p]
		if !ok {
			return false
		}
		for _, ref := range cell.GetReferencedCells() {
			if visit(ref) {
				return true
			}
		}
		return false
	}

	for _, ref := range candidateRefs {
		if visit(ref) {
			return true
		}
	}
	return false
}
