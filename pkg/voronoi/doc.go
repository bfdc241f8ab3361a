// Package voronoi computes the Voronoi diagram of a set of sites inside a
// rectangle with Steven Fortune's sweep-line algorithm.
//
// The sweep keeps the beachline in a red-black tree threaded as a list and
// its pending circle events in a heap; cancelled events are left in the heap
// and skipped when they surface. Edges are then clipped to the rectangle,
// optionally closed along its border, and linked to the edges they share a
// vertex with.
//
// All coordinate comparisons use the same tolerance, Epsilon.
package voronoi
