package ring

// NewPowerTable returns the table [root^0, root^1, ..., root^(N-1)] mod q.
// root must be reduced modulo q.
func NewPowerTable(root uint64, N int, q uint64, brc [2]uint64) (table []uint64) {
	table = make([]uint64, N)
	table[0] = 1
	for i := 1; i < N; i++ {
		table[i] = BRed(table[i-1], root, q, brc)
	}
	return
}
