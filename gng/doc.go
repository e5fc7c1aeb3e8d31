// Package gng implements the Growing Neural Gas learner.
//
// A GNG map starts from node_min nodes drawn at random from the data and
// grows by inserting a node between the node of maximum accumulated error (q)
// and its lowest-error neighbour (p) every node_interval steps, until
// node_max is reached. Edges age every time their endpoint wins and die once
// older than age_max; nodes left without edges are pruned.
//
// One step (Train):
//
//	t += 1
//	n, s  = FindNearest(x)
//	Adapt:      n += eta_n·(x-n);  c += eta_c·(x-c) for every neighbour c of n
//	EdgeUpdate: age(n,·) += 1;  age(n,s) = 0 (create if absent);
//	            drop edges with age > age_max;  prune edgeless nodes
//	NodeUpdate: err(n) += |x-n|²;  every node_interval steps insert
//	            r = (q+p)/2, rewire q–p into q–r–p, scale err(q), err(p) by
//	            (1-alpha), err(r) = mean;  finally err(·) *= (1-beta)
//
// Capacity refusal at node_max is not an error: the insertion block is
// skipped and the step completes normally.
//
// Complexity per step: O(V·D) for matching plus O(deg(n)·D) for adaptation.
package gng
