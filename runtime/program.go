package tbruntime

import (
	"github.com/danswartzendruber/avl"

	"github.com/gosuda/tinybasic/ast"
)

// storedLine is one program line. The AVL node is intrusive; the tree is
// ordered by line number, which gives lookup, overwrite, and the ordered
// successor query used for sequential execution.
type storedLine struct {
	node avl.AvlNode
	num  int
	stmt ast.Statement
	src  string
}

// ProgramStore is the ordered mapping from line number to statement.
// Exactly one statement per line number; keys iterate in ascending order
// regardless of insertion order.
type ProgramStore struct {
	root *avl.AvlNode
	size int
}

func NewProgramStore() *ProgramStore {
	return &ProgramStore{root: nil}
}

// Wrappers hiding the intrusive AVL interface from the interpreter code.

func cmpLineKey(key any, item any) int {
	return cmpLineNums(key.(int), item.(*storedLine).num)
}

func cmpLineNodes(a, b any) int {
	return cmpLineNums(a.(*storedLine).num, b.(*storedLine).num)
}

func cmpLineNums(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (ps *ProgramStore) lookup(num int) *storedLine {
	p := avl.AvlTreeLookup(ps.root, num, cmpLineKey)
	if p == nil {
		return nil
	}
	return p.(*storedLine)
}

func (ps *ProgramStore) first() *storedLine {
	p := avl.AvlTreeFirstInOrder(ps.root)
	if p == nil {
		return nil
	}
	return p.(*storedLine)
}

func (ps *ProgramStore) nextInOrder(ln *storedLine) *storedLine {
	p := avl.AvlTreeNextInOrder(&ln.node)
	if p == nil {
		return nil
	}
	return p.(*storedLine)
}

// Set inserts or overwrites the statement at num. It never errors.
func (ps *ProgramStore) Set(num int, stmt ast.Statement, src string) {
	if old := ps.lookup(num); old != nil {
		avl.AvlTreeRemove(&ps.root, &old.node)
		ps.size--
	}
	ln := &storedLine{num: num, stmt: stmt, src: src}
	if dup := avl.AvlTreeInsert(&ps.root, &ln.node, ln, cmpLineNodes); dup != nil {
		// Cannot happen: any existing line was just removed.
		return
	}
	ps.size++
}

// Remove deletes the line if present and reports whether it existed.
func (ps *ProgramStore) Remove(num int) bool {
	ln := ps.lookup(num)
	if ln == nil {
		return false
	}
	avl.AvlTreeRemove(&ps.root, &ln.node)
	ps.size--
	return true
}

// Get returns the statement stored at num.
func (ps *ProgramStore) Get(num int) (ast.Statement, bool) {
	ln := ps.lookup(num)
	if ln == nil {
		return nil, false
	}
	return ln.stmt, true
}

// First returns the lowest stored line number.
func (ps *ProgramStore) First() (int, bool) {
	ln := ps.first()
	if ln == nil {
		return 0, false
	}
	return ln.num, true
}

// NextAfter returns the smallest stored line number strictly greater than
// num, for any store contents; num itself need not be stored.
func (ps *ProgramStore) NextAfter(num int) (int, bool) {
	if ln := ps.lookup(num); ln != nil {
		nxt := ps.nextInOrder(ln)
		if nxt == nil {
			return 0, false
		}
		return nxt.num, true
	}
	for ln := ps.first(); ln != nil; ln = ps.nextInOrder(ln) {
		if ln.num > num {
			return ln.num, true
		}
	}
	return 0, false
}

func (ps *ProgramStore) Len() int {
	return ps.size
}

// Each visits stored lines in ascending line-number order until fn
// returns false.
func (ps *ProgramStore) Each(fn func(num int, stmt ast.Statement, src string) bool) {
	for ln := ps.first(); ln != nil; ln = ps.nextInOrder(ln) {
		if !fn(ln.num, ln.stmt, ln.src) {
			return
		}
	}
}

// Clear discards every stored line.
func (ps *ProgramStore) Clear() {
	ps.root = nil
	ps.size = 0
}
