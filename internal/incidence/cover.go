package incidence

// removeFromRow splices node i out of whatever row it is currently linked
// into, leaving i's own left/right untouched so uncover can restore it later.
func (lk *Linkage) removeFromRow(i uint32) {
	previous := lk.data[i].left
	next := lk.data[i].right
	lk.data[previous].right = next
	lk.data[next].left = previous
}

func (lk *Linkage) removeFromCol(i uint32) {
	previous := lk.data[i].up
	next := lk.data[i].down
	lk.data[previous].down = next
	lk.data[next].up = previous
}

// coverCol removes column col from the header ring and, for every row that
// has a node in col, removes every other member of that row from its own
// column (§4.3). If col is a kind column and repeats are disallowed, its
// capacity contribution is subtracted from maxPossible; if repeats are
// allowed, a kind column is left untouched so other placements of that kind
// stay available.
func (lk *Linkage) coverCol(col uint32) {
	if int(col) >= lk.pointcount && lk.allowRepeat {
		return
	}
	if int(col) >= lk.pointcount && !lk.allowRepeat {
		lk.maxPossible -= int(lk.maxima[int(col)-lk.pointcount])
	}

	lk.removeFromRow(col)
	for i := lk.data[col].down; i != col; i = lk.data[i].down {
		for j := lk.data[i].right; j != i; j = lk.data[j].right {
			lk.removeFromCol(j)
			lk.data[lk.data[j].extra].extra--
		}
	}
}

// uncoverCol exactly inverts coverCol, walking up then left so that every
// cover/uncover pair leaves the structure byte-identical to before the
// cover (§4.3 invariant).
func (lk *Linkage) uncoverCol(col uint32) {
	if int(col) >= lk.pointcount && lk.allowRepeat {
		return
	}
	if int(col) >= lk.pointcount && !lk.allowRepeat {
		lk.maxPossible += int(lk.maxima[int(col)-lk.pointcount])
	}

	for i := lk.data[col].up; i != col; i = lk.data[i].up {
		for j := lk.data[i].left; j != i; j = lk.data[j].left {
			lk.returnToCol(j)
			lk.data[lk.data[j].extra].extra++
		}
	}
	lk.returnToRow(col)
}

// pushSolution appends the row entered at i to the partial solution and
// decrements remaining once per step of the row's right-walk. The walk visits
// every member except i itself; since a row is its cells plus exactly one
// kind-column member, the step count equals the number of cells the row
// covers (§4.4, §9).
func (lk *Linkage) pushSolution(i uint32) {
	lk.solution = append(lk.solution, i)
	for j := lk.data[i].right; j != i; j = lk.data[j].right {
		lk.remaining--
	}
}

// popSolution inverts pushSolution: drop the last placement and restore
// remaining.
func (lk *Linkage) popSolution() {
	n := len(lk.solution)
	i := lk.solution[n-1]
	lk.solution = lk.solution[:n-1]
	for j := lk.data[i].right; j != i; j = lk.data[j].right {
		lk.remaining++
	}
}
