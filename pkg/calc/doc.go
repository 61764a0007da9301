// Package calc implements a string calculator: it parses a delimited string
// of integers and sums them. Inputs may declare custom delimiters through a
// "//<spec>\n" header, negative numbers are rejected with an error that lists
// every offender, and values above 1000 are ignored. Each Calculator keeps a
// call counter and an ordered listener registry; listeners are notified after
// every successful evaluation. Frontends (CLI, batch runners) interact with
// the Calculator only and never reach into its internals.
package calc
