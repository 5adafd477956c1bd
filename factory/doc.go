// Package factory dispatches a structured Descriptor to the concrete
// itemcentric, bincentric, multibin, or bound strategy it names, hiding the
// three packages' distinct entry points behind one Strategy interface.
//
// Grounded on tsp's SolveWithGraph/SolveWithMatrix dispatcher: a plain
// Options/Descriptor struct, strict sentinel errors, and a switch-based
// router rather than a registry or reflection-based lookup.
package factory
