package board

// bracket walks from sq in direction d and returns how many opponent discs
// lie between sq and the first disc of color c. It returns 0 when the run is
// empty or ends at an empty cell or the board edge.
func (b *Board) bracket(sq Square, d Direction, c Cell) int {
	opp := c.Opponent()
	n := 0
	cur := sq.Step(d)
	for cur.Valid() && b[cur.Row][cur.Col] == opp {
		n++
		cur = cur.Step(d)
	}
	if n == 0 || !cur.Valid() || b[cur.Row][cur.Col] != c {
		return 0
	}
	return n
}

// IsValidMove reports whether c may play at sq: the cell is empty and at
// least one direction holds one or more opponent discs capped by a disc of c.
func (b *Board) IsValidMove(sq Square, c Cell) bool {
	if c == Empty || !sq.Valid() || b[sq.Row][sq.Col] != Empty {
		return false
	}
	for _, d := range Directions {
		if b.bracket(sq, d, c) > 0 {
			return true
		}
	}
	return false
}

// Flips returns the discs that playing c at sq would capture, without
// changing the board. The result is empty when the move is not legal.
func (b *Board) Flips(sq Square, c Cell) []Square {
	if c == Empty || !sq.Valid() || b[sq.Row][sq.Col] != Empty {
		return nil
	}
	var flips []Square
	for _, d := range Directions {
		n := b.bracket(sq, d, c)
		cur := sq
		for i := 0; i < n; i++ {
			cur = cur.Step(d)
			flips = append(flips, cur)
		}
	}
	return flips
}

// ApplyMove plays c at sq and flips every captured disc. It returns the
// flipped squares and true, or nil and false with the board untouched when
// the move is not legal.
func (b *Board) ApplyMove(sq Square, c Cell) ([]Square, bool) {
	flips := b.Flips(sq, c)
	if len(flips) == 0 {
		return nil, false
	}
	b[sq.Row][sq.Col] = c
	for _, f := range flips {
		b[f.Row][f.Col] = c
	}
	return flips, true
}

// ValidMoves returns every legal square for c in row-major order.
func (b *Board) ValidMoves(c Cell) []Square {
	var moves []Square
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			sq := Square{Row: row, Col: col}
			if b.IsValidMove(sq, c) {
				moves = append(moves, sq)
			}
		}
	}
	return moves
}

// HasValidMove reports whether c has at least one legal move.
func (b *Board) HasValidMove(c Cell) bool {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b.IsValidMove(Square{Row: row, Col: col}, c) {
				return true
			}
		}
	}
	return false
}
