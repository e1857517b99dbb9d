// Package extirpolate spreads irregularly positioned samples onto a regular
// integer grid.
//
// Extirpolation is the reverse of interpolation: instead of estimating a value
// between grid points, each sample's weight y is distributed over the m grid
// points nearest to its position x so that, for every polynomial f of degree
// less than m,
//
//	sum_i f(x_i) * y_i == sum_k f(k) * result[k]
//
// up to floating-point round-off. Smooth functions that are well approximated
// by such polynomials over a window of m points (complex exponentials of low
// frequency in particular) are therefore preserved to high accuracy, which is
// what makes the Press & Rybicki fast Lomb-Scargle algorithm work.
//
// Samples whose position is an exact integer are placed on that single grid
// point. Windows that would run past either end of the grid are shifted back
// inside it rather than wrapped.
package extirpolate
