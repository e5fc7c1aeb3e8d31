// Package som implements a Self-Organizing Map learner on a fixed
// network_size^dim lattice (dim <= 3).
//
// The node and edge sets are built once by Prepare and never change: every
// cell becomes a node carrying its lattice coordinate (core.Node.GridPosition)
// and is linked to its lower-index predecessor along each axis. Training only
// moves positions:
//
//	r = floor(sigma)
//	for every cell c with |grid(c) - grid(n)| <= r, in lattice order:
//	    h  = exp(-|grid(c) - grid(n)|² / (2·sigma²))
//	    c += eta·h·(x - c)
//	eta, sigma *= 0.995
//
// Train reports learner.ErrDone once the timestep exceeds max_iterations.
package som
