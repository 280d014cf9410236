// Package poset implements a dense partial-order matrix over element
// identifiers in [0, n): a three-valued relation (LT/EQ/GT) plus
// Incomparable, with Warshall-style transitive closure.
//
// Closure does not bridge transitivity through EQ — an EQ entry is
// treated as a terminal statement, not a bridging relation, matching the
// rcomb engine's documented limitation (see Closure's doc comment).
package poset
