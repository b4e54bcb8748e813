package world

// Grid represents the board with encapsulated cell storage
type Grid struct {
	cellMap map[int]map[int]*Cell
	rows    int
	cols    int
}

// NewGrid creates a new grid with the given dimensions
func NewGrid(rows, cols int) *Grid {
	g := &Grid{}
	g.Build(rows, cols)
	return g
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// Size returns the total number of cells
func (g *Grid) Size() int {
	return g.rows * g.cols
}

// IsValidPosition checks if a row/col position is within grid bounds
func (g *Grid) IsValidPosition(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Contains checks if a position is within grid bounds
func (g *Grid) Contains(p Position) bool {
	return g.IsValidPosition(p.Row, p.Col)
}

// GetCell returns the cell at the given position, or nil if out of bounds
func (g *Grid) GetCell(row, col int) *Cell {
	if !g.IsValidPosition(row, col) {
		return nil
	}

	if g.cellMap == nil {
		return nil
	}

	rowMap, found := g.cellMap[row]
	if !found {
		return nil
	}

	return rowMap[col]
}

// CellAt returns the cell at p, or nil if out of bounds
func (g *Grid) CellAt(p Position) *Cell {
	return g.GetCell(p.Row, p.Col)
}

// GetCellRelative returns the cell adjacent to the given cell in the specified direction
func (g *Grid) GetCellRelative(c *Cell, dir Direction) *Cell {
	if c == nil {
		return nil
	}
	if !dir.IsValid() {
		return nil
	}
	rowRel, colRel := dir.Delta()
	return g.GetCell(c.Row+rowRel, c.Col+colRel)
}

// ContentAt returns the content at p; out-of-bounds positions read as Empty
func (g *Grid) ContentAt(p Position) CellContent {
	cell := g.CellAt(p)
	if cell == nil {
		return Empty
	}
	return cell.Content
}

// Place puts content on an empty cell. Returns false if out of bounds or occupied.
func (g *Grid) Place(p Position, content CellContent) bool {
	cell := g.CellAt(p)
	if cell == nil || !cell.IsEmpty() {
		return false
	}
	cell.Content = content
	return true
}

// Count returns how many cells hold the given content
func (g *Grid) Count(content CellContent) int {
	n := 0
	g.ForEachCell(func(row, col int, cell *Cell) {
		if cell.Content == content {
			n++
		}
	})
	return n
}

// Positions returns the positions holding the given content in row-major order
func (g *Grid) Positions(content CellContent) []Position {
	var out []Position
	g.ForEachCell(func(row, col int, cell *Cell) {
		if cell.Content == content {
			out = append(out, Position{Row: row, Col: col})
		}
	})
	return out
}

// Build initializes the grid with the given dimensions
func (g *Grid) Build(rows, cols int) {
	if rows <= 0 || cols <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.rows = rows
	g.cols = cols

	g.cellMap = make(map[int]map[int]*Cell, rows)

	for currentRow := 0; currentRow < rows; currentRow++ {
		g.cellMap[currentRow] = make(map[int]*Cell, cols)

		for currentCol := 0; currentCol < cols; currentCol++ {
			g.cellMap[currentRow][currentCol] = NewCell(currentRow, currentCol)
		}
	}
}

// ForEachCell iterates over all cells in row-major order, calling the provided function for each
func (g *Grid) ForEachCell(fn func(row, col int, cell *Cell)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			cell := g.GetCell(row, col)
			if cell != nil {
				fn(row, col, cell)
			}
		}
	}
}
