package rbtree

import (
	"cmp"
	"errors"
)

// Sentinel errors returned by Tree operations.
var (
	// ErrEmptyTree indicates min/max on an empty tree, or an operation that
	// needs a starting node but was given the sentinel handle Nil.
	ErrEmptyTree = errors.New("rbtree: tree is empty or handle is nil")

	// ErrInvalidHandle indicates a handle outside the arena or one whose slot
	// has been released by a delete.
	ErrInvalidHandle = errors.New("rbtree: invalid handle")

	// ErrInvariantViolation indicates a broken red-black or ordering rule.
	// It is a programming error in the tree, never a user error.
	ErrInvariantViolation = errors.New("rbtree: invariant violation")

	// ErrNilComparator indicates that NewFunc was called with a nil comparator.
	ErrNilComparator = errors.New("rbtree: comparator is nil")

	// ErrBadCapacity indicates that WithCapacity was given a negative value.
	ErrBadCapacity = errors.New("rbtree: capacity must be non-negative")
)

// Color is the colour tag of a node.
type Color uint8

const (
	// Red marks a node that may not have a Red child.
	Red Color = iota
	// Black marks a node counted by black-height. The sentinel is always Black.
	Black
)

// String returns "Red" or "Black".
func (c Color) String() string {
	switch c {
	case Red:
		return "Red"
	case Black:
		return "Black"
	default:
		return "Color(?)"
	}
}

// Handle addresses a node inside a Tree's arena.
type Handle uint32

// Nil is the sentinel handle. It is the child of every leaf, the parent of
// the root and the root of an empty tree.
const Nil Handle = 0

// Comparator returns a negative number when a < b, zero when a == b and a
// positive number when a > b. It must describe a total order.
type Comparator[K any] func(a, b K) int

// Option configures a Tree at construction time.
type Option func(*options)

type options struct {
	capacity int
	checks   bool
}

// WithCapacity pre-allocates arena room for n nodes.
// Panics with ErrBadCapacity if n < 0.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n < 0 {
			panic(ErrBadCapacity.Error())
		}
		o.capacity = n
	}
}

// WithInvariantChecks makes every Insert and Delete run Validate afterwards
// and panic with the returned error on failure. Meant for tests and debug
// builds; it turns O(log n) mutations into O(n) ones.
func WithInvariantChecks() Option {
	return func(o *options) {
		o.checks = true
	}
}

// node is one arena slot. Slot 0 is the sentinel.
type node[K any] struct {
	key    K
	color  Color
	parent Handle
	left   Handle
	right  Handle
	live   bool
}

// Tree is a red-black tree of keys of type K.
// The zero value is not usable; construct with New or NewFunc.
type Tree[K any] struct {
	cmp    Comparator[K]
	nodes  []node[K] // nodes[Nil] is the sentinel
	free   []Handle  // released slots, reused LIFO
	root   Handle
	size   int
	checks bool
}

// New returns an empty tree ordered by cmp.Compare.
func New[K cmp.Ordered](opts ...Option) *Tree[K] {
	return NewFunc(cmp.Compare[K], opts...)
}

// NewFunc returns an empty tree ordered by compare.
// Panics with ErrNilComparator if compare is nil.
func NewFunc[K any](compare func(a, b K) int, opts ...Option) *Tree[K] {
	if compare == nil {
		panic(ErrNilComparator.Error())
	}

	var cfg options
	for _, opt := range opts {
		opt(&cfg)
	}

	nodes := make([]node[K], 1, cfg.capacity+1)
	nodes[Nil] = node[K]{color: Black, parent: Nil, left: Nil, right: Nil}

	return &Tree[K]{
		cmp:    compare,
		nodes:  nodes,
		root:   Nil,
		checks: cfg.checks,
	}
}
