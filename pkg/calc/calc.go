package calc

import (
	"strconv"
	"sync"
)

// maxIncluded is the largest value that still participates in the sum.
// Larger values are silently ignored; negativity is checked first, so
// e.g. -2000 is still reported as a negative.
const maxIncluded = 1000

// Calculator evaluates delimited number strings. Each instance owns its own
// call counter and listener registry; create one with New. A Calculator is
// safe for concurrent use: each Evaluate call runs as one atomic unit, so
// counts and notifications never interleave across callers.
type Calculator struct {
	mu        sync.Mutex // serializes Evaluate and guards called
	called    int
	listeners registry
}

// New returns a Calculator with default delimiters, a zero call counter and
// no listeners.
func New() *Calculator {
	return &Calculator{}
}

// Evaluate parses input as a delimited list of base-10 integers and returns
// their sum.
//
// The call counter is incremented first, whether or not the call succeeds.
// The empty string short-circuits to 0. Otherwise the delimiter set is
// resolved (custom header or the default comma/newline), the payload is
// split, and each non-empty token is parsed. Negative numbers abort the call
// with a *NegativeError listing all of them in encounter order; values above
// 1000 are ignored. Listeners are notified with (input, sum) only when the
// call succeeds.
func (c *Calculator) Evaluate(input string) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.called++

	if input == "" {
		c.listeners.notify(input, 0)
		return 0, nil
	}

	delims, payload, err := resolveDelimiters(input)
	if err != nil {
		return 0, err
	}

	var (
		sum       int
		negatives []int
	)

	for _, tok := range splitTokens(payload, delims) {
		if tok == "" {
			continue
		}

		n, err := strconv.Atoi(tok)
		if err != nil {
			return 0, &FormatError{Token: tok}
		}

		switch {
		case n < 0:
			negatives = append(negatives, n)
		case n <= maxIncluded:
			sum += n
		}
	}

	if len(negatives) > 0 {
		return 0, &NegativeError{Values: negatives}
	}

	c.listeners.notify(input, sum)

	return sum, nil
}

// CalledCount returns how many times Evaluate has been invoked on this
// Calculator, failing calls included.
func (c *Calculator) CalledCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.called
}

// AddListener registers fn and returns its subscription handle. Listeners
// are notified synchronously after each successful evaluation, in
// registration order.
func (c *Calculator) AddListener(fn Listener) *Subscription {
	return c.listeners.add(fn)
}

// RemoveListener unregisters the subscription. Unknown handles are ignored.
func (c *Calculator) RemoveListener(sub *Subscription) {
	c.listeners.remove(sub)
}
