// Package core holds small integer and floating-point helpers shared by the
// extirpolation and trigonometric-sum packages.
//
// Everything here is pure: no package state beyond the factorial table,
// which is built once at initialisation and never mutated.
package core
