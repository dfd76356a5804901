// Package outline computes the cut outlines of cards: base shapes from a
// fixed catalogue of archetypes, corner rounding, smoothing of curved
// shapes, interactive vertex editing, hole placement and border rings.
//
// All coordinates are in millimetres with the y axis pointing down.
// Outlines run clockwise on screen.
package outline

//go:generate go run ./testcases/export
