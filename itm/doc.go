// Package itm implements the Instantaneous Topological Map learner.
//
// ITM is seeded with the first two samples of the stream and grows whenever
// a stimulus falls outside the local resolution r_max of its winner.
// Only the winner adapts. Edges follow the Thales criterion: an edge n–c
// survives only while c does not lie behind the second-nearest node s as
// seen from n.
//
// One step (Train):
//
//	t += 1;  x = data[(t-1) mod N]  (or a uniform draw)
//	n, s  = FindNearest(x)
//	Adapt:      n += eta·(x-n)
//	EdgeUpdate: connect n–s;  drop n–c where (n-s)·(c-s) < 0;  prune edgeless
//	NodeUpdate: insert x connected to n  if (n-x)·(s-x) > 0 and |x-n| > r_max
//	            remove s                 if |n-s| < r_max/2
//
// r_max defaults to half the mean distance between consecutive samples.
package itm
