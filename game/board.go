package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// Board is the state of one chain-reaction game on an N x N grid. Squares
// are addressed either by row and column (between 1 and Size()) or by square
// index in row-major order (0 to N*N-1, row 1 first).
//
// The board carries its own undo history: every AddSpot pushes a snapshot of
// the squares before mutating, and Undo restores the most recent one. A
// notifier, if set, is invoked synchronously after every mutating call.
//
// A Board is not safe for concurrent use; a caller embedding it in a
// concurrent host must serialize all access to one instance.
type Board struct {
	size     int
	squares  []Square
	history  [][]Square
	current  int // valid restore points in history
	notifier func(*Board)

	// Scratch queue for cascades, kept on the board to cut allocations.
	queue []int
}

// New returns an N x N board in the initial configuration: every square
// holding one neutral spot, empty history, no-op notifier.
func New(n int) *Board {
	b := &Board{notifier: func(*Board) {}}
	b.allocate(n)
	return b
}

// NewFrom returns a snapshot of board0 with its own cleared history and a
// no-op notifier. Callers use it as a private working copy or a read-only
// view of an authoritative board.
func NewFrom(board0 *Board) *Board {
	b := New(board0.Size())
	copy(b.squares, board0.squares)
	return b
}

func (b *Board) allocate(n int) {
	b.size = n
	b.squares = make([]Square, n*n)
	for i := range b.squares {
		b.squares[i] = Initial
	}
	b.history = nil
	b.current = 0
}

// Size returns the number of rows (and of columns).
func (b *Board) Size() int {
	return b.size
}

// Exists reports whether row r, column c denotes a valid square.
func (b *Board) Exists(r, c int) bool {
	return 1 <= r && r <= b.size && 1 <= c && c <= b.size
}

// ExistsSquare reports whether n is a valid square index.
func (b *Board) ExistsSquare(n int) bool {
	return 0 <= n && n < len(b.squares)
}

// Row returns the row number (1-based) of square #n.
func (b *Board) Row(n int) int {
	return n/b.size + 1
}

// Col returns the column number (1-based) of square #n.
func (b *Board) Col(n int) int {
	return n%b.size + 1
}

// SqNum returns the square index of row r, column c.
func (b *Board) SqNum(r, c int) int {
	return (c - 1) + (r-1)*b.size
}

// Get returns the contents of the square at row r, column c.
func (b *Board) Get(r, c int) (Square, error) {
	if !b.Exists(r, c) {
		return Square{}, fmt.Errorf("%w: row %d col %d", ErrOutOfRange, r, c)
	}
	return b.squares[b.SqNum(r, c)], nil
}

// At returns the contents of square #n.
func (b *Board) At(n int) (Square, error) {
	if !b.ExistsSquare(n) {
		return Square{}, fmt.Errorf("%w: square %d", ErrOutOfRange, n)
	}
	return b.squares[n], nil
}

// TotalSpots returns the total number of spots on the board.
func (b *Board) TotalSpots() int {
	sum := 0
	for _, sq := range b.squares {
		sum += sq.Spots
	}
	return sum
}

// WhoseMove returns the side that would be next to move. The turn is derived
// from the spot total, never stored, so undo can never desynchronize it:
// Red moves first and the side alternates once per completed AddSpot.
func (b *Board) WhoseMove() Side {
	if (b.TotalSpots()+b.size)&1 == 0 {
		return Red
	}
	return Blue
}

// NumOfSide returns the number of squares held by side.
func (b *Board) NumOfSide(side Side) int {
	sum := 0
	for _, sq := range b.squares {
		if sq.Side == side {
			sum++
		}
	}
	return sum
}

// Winner returns the side holding every square, or None while the game is
// still in progress.
func (b *Board) Winner() Side {
	if b.NumOfSide(Red) == len(b.squares) {
		return Red
	}
	if b.NumOfSide(Blue) == len(b.squares) {
		return Blue
	}
	return None
}

// IsLegal reports whether it would currently be legal for side to add a spot
// to square #n: nobody has won, it is side's turn, and the target square is
// not held by the opponent.
func (b *Board) IsLegal(side Side, n int) bool {
	if !b.ExistsSquare(n) {
		return false
	}
	if b.Winner() != None || side != b.WhoseMove() {
		return false
	}
	return b.squares[n].Side != side.Opposite()
}

// IsLegalRC is IsLegal addressed by row and column.
func (b *Board) IsLegalRC(side Side, r, c int) bool {
	return b.Exists(r, c) && b.IsLegal(side, b.SqNum(r, c))
}

// AddSpot adds a spot from side at square #n, cascading any resulting chain
// reaction, then notifies. It either fully applies or fails with no
// observable state change.
func (b *Board) AddSpot(side Side, n int) error {
	if !b.ExistsSquare(n) {
		return fmt.Errorf("%w: square %d", ErrOutOfRange, n)
	}
	if !b.IsLegal(side, n) {
		return fmt.Errorf("%w: %s at %s", ErrIllegalMove, side, b.MoveString(n))
	}
	b.markUndo()
	b.simpleAdd(side, n, 1)
	if b.squares[n].Spots > b.Neighbors(n) {
		b.jump(n)
	}
	b.announce()
	return nil
}

// AddSpotRC is AddSpot addressed by row and column.
func (b *Board) AddSpotRC(side Side, r, c int) error {
	if !b.Exists(r, c) {
		return fmt.Errorf("%w: row %d col %d", ErrOutOfRange, r, c)
	}
	return b.AddSpot(side, b.SqNum(r, c))
}

// Set puts spots spots of side at row r, column c (neutral if spots is 0),
// then notifies. It bypasses legality and history; use it to set up
// positions, not to play moves.
func (b *Board) Set(r, c, spots int, side Side) error {
	if !b.Exists(r, c) {
		return fmt.Errorf("%w: row %d col %d", ErrOutOfRange, r, c)
	}
	b.set(b.SqNum(r, c), spots, side)
	b.announce()
	return nil
}

// Undo reverts the effects of one AddSpot. There is nothing to revert past
// the last Clear or Copy, or before the first move; then Undo is a no-op.
func (b *Board) Undo() {
	if b.current == 0 {
		return
	}
	b.current--
	copy(b.squares, b.history[b.current])
}

// Clear reinitializes the board to n x n in the initial configuration,
// clears the undo history, and notifies.
func (b *Board) Clear(n int) {
	b.allocate(n)
	b.announce()
}

// Copy replaces the contents of b with those of board, clears the undo
// history, and notifies.
func (b *Board) Copy(board *Board) {
	b.allocate(board.Size())
	copy(b.squares, board.squares)
	b.announce()
}

// Neighbors returns the number of grid neighbors of square #n:
// 2 for a corner, 3 for an edge, 4 for an interior square.
func (b *Board) Neighbors(n int) int {
	return b.NeighborsRC(b.Row(n), b.Col(n))
}

// NeighborsRC returns the number of grid neighbors of row r, column c.
func (b *Board) NeighborsRC(r, c int) int {
	count := 0
	if r > 1 {
		count++
	}
	if r < b.size {
		count++
	}
	if c > 1 {
		count++
	}
	if c < b.size {
		count++
	}
	return count
}

// neighborList returns the indices adjacent to square #n in the fixed
// cascade order: up, down, left, right, skipping directions off the board.
func (b *Board) neighborList(n int) []int {
	neighbors := make([]int, 0, 4)
	if b.Row(n) != 1 {
		neighbors = append(neighbors, n-b.size)
	}
	if b.Row(n) != b.size {
		neighbors = append(neighbors, n+b.size)
	}
	if b.Col(n) != 1 {
		neighbors = append(neighbors, n-1)
	}
	if b.Col(n) != b.size {
		neighbors = append(neighbors, n+1)
	}
	return neighbors
}

// jump runs the cascade assuming that initially square #s is the only one
// that might be overfull. An exploding square resets to one spot and each
// neighbor gains a spot and is captured by the exploding side. Propagation
// is breadth-first from the seed; the queue may hold duplicates, which are
// harmless because a square that is no longer overfull is skipped. A won
// board stops the cascade immediately, abandoning queued work.
func (b *Board) jump(s int) {
	b.queue = b.queue[:0]
	side := b.squares[s].Side
	b.set(s, 1, side)
	for _, nb := range b.neighborList(s) {
		b.simpleAdd(side, nb, 1)
		b.queue = append(b.queue, nb)
	}
	for len(b.queue) > 0 && b.Winner() == None {
		check := b.queue[0]
		b.queue = b.queue[1:]
		if b.squares[check].Spots <= b.Neighbors(check) {
			continue
		}
		side := b.squares[check].Side
		b.set(check, 1, side)
		for _, nb := range b.neighborList(check) {
			b.simpleAdd(side, nb, 1)
			b.queue = append(b.queue, nb)
		}
	}
}

// simpleAdd adds delta spots of side to square #n, capturing it.
func (b *Board) simpleAdd(side Side, n, delta int) {
	b.set(n, b.squares[n].Spots+delta, side)
}

// set replaces square #n without history or notification.
func (b *Board) set(n, spots int, side Side) {
	b.squares[n] = square(side, spots)
}

// markUndo records the current squares as a restore point. Snapshots an
// earlier Undo stepped past are discarded, so the history never holds
// unreachable futures.
func (b *Board) markUndo() {
	snapshot := make([]Square, len(b.squares))
	copy(snapshot, b.squares)
	b.history = append(b.history[:b.current], snapshot)
	b.current++
}

// Equal reports whether b and board have the same size and identical
// contents at every square.
func (b *Board) Equal(board *Board) bool {
	if board == nil || b.size != board.size {
		return false
	}
	for i, sq := range b.squares {
		if board.squares[i] != sq {
			return false
		}
	}
	return true
}

// Hash returns a structural hash of the board contents, consistent with
// Equal.
func (b *Board) Hash() uint64 {
	hasher := fnv.New64a()
	binary.Write(hasher, binary.LittleEndian, int64(b.size))
	for _, sq := range b.squares {
		binary.Write(hasher, binary.LittleEndian, int64(sq.Side))
		binary.Write(hasher, binary.LittleEndian, int64(sq.Spots))
	}
	return hasher.Sum64()
}

// SetNotifier installs notify as the board's change notifier and announces
// the current state to it.
func (b *Board) SetNotifier(notify func(*Board)) {
	if notify == nil {
		notify = func(*Board) {}
	}
	b.notifier = notify
	b.announce()
}

func (b *Board) announce() {
	b.notifier(b)
}
