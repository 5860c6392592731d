// Package midpoint: sentinel error set.
package midpoint

import "errors"

var (
	// ErrNilTree indicates a nil *phylo.Tree was passed.
	ErrNilTree = errors.New("midpoint: tree is nil")

	// ErrNoDiameter indicates the tree has no leaf pair to span a path.
	ErrNoDiameter = errors.New("midpoint: fewer than two leaves")
)
