package engine

import "sort"

// frame is one explicit work-stack entry standing in for a native
// recursive call to dfs(node). succPos is the index of the next
// successor to examine; it doubles as the entry/post-child phase
// marker (succPos == 0 means first-entry work still needs to run).
type frame struct {
	n       *node
	succPos int
}

// Solve computes the condensation of the sealed graph and invokes cb
// once per emitted group, in strict reverse-topological emission
// order, with members sorted ascending. maxDepth bounds the explicit
// work stack; 0 means "use the engine's default". Solve must be
// called after Seal, and at most once per seal.
func (e *Engine) Solve(maxDepth int, cb func(groupID uint32, members []uint32)) bool {
	if e.ph != phaseSealed || e.solved {
		return e.fail("solve", ErrMisuse)
	}
	e.solved = true
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}

	var (
		index     = 0
		groupID   uint32
		compStack []*node
		work      []frame
	)

	// Root selection walks referenced ids from highest to lowest: a
	// fully disconnected singleton must emit as group 0 ahead of a
	// larger connected region whose member ids are all lower, which
	// only holds when unvisited roots are picked from the high end of
	// the id range down; see DESIGN.md's Open Question decisions.
	for i := len(e.order) - 1; i >= 0; i-- {
		root := e.nodes[e.order[i]]
		if root.index != -1 {
			continue
		}

		work = append(work, frame{n: root})

		for len(work) > 0 {
			top := &work[len(work)-1]
			n := top.n

			if top.succPos == 0 {
				n.index = index
				n.lowlink = index
				index++
				compStack = append(compStack, n)
				n.onStack = true
			}

			pushedChild := false
			for top.succPos < len(n.successors) {
				succID := n.successors[top.succPos]
				top.succPos++
				w := e.nodes[succID]
				if w.index == -1 {
					if len(work)+1 > maxDepth {
						return e.fail("solve", ErrRecursionDepth)
					}
					work = append(work, frame{n: w})
					pushedChild = true
					break
				}
				if w.onStack && w.index < n.lowlink {
					n.lowlink = w.index
				}
			}
			if pushedChild {
				continue
			}

			// n is fully explored: pop its frame and fold its
			// low-link into whatever frame called it.
			work = work[:len(work)-1]
			if len(work) > 0 {
				parent := work[len(work)-1].n
				if n.lowlink < parent.lowlink {
					parent.lowlink = n.lowlink
				}
			}

			if n.lowlink == n.index {
				members := make([]uint32, 0, 1)
				for {
					m := compStack[len(compStack)-1]
					compStack = compStack[:len(compStack)-1]
					m.onStack = false
					members = append(members, m.id)
					if m == n {
						break
					}
				}
				sort.Slice(members, func(i, j int) bool { return members[i] < members[j] })
				cb(groupID, members)
				groupID++
			}
		}
	}

	return true
}
