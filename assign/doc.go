// Package assign derives the 2-bit assignment table g from a peel
// order: the table such that, for every edge, the sum of its three
// vertices' g-values modulo 3 equals the position of that edge's
// recorded winner.
package assign
