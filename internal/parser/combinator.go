package parser

// Pair holds the two results of a Seq rule.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Seq applies a and then b to the remainder, short-circuiting on the first
// failure. Like every combinator here it is atomic: when either side fails
// the caller gets back the untouched input, so an alternative can be tried
// from the same position with no rollback bookkeeping.
func Seq[A, B any, E Failure[E]](a Rule[A, E], b Rule[B, E]) Rule[Pair[A, B], E] {
	return func(in TokenSlice) (TokenSlice, Pair[A, B], error) {
		rest, first, err := a(in)
		if err != nil {
			return in, Pair[A, B]{}, err
		}
		rest, second, err := b(rest)
		if err != nil {
			return in, Pair[A, B]{}, err
		}
		return rest, Pair[A, B]{First: first, Second: second}, nil
	}
}

// Many0 applies rule until it fails and collects the results in order. It
// never fails itself; the failing attempt is simply not consumed. A
// successful application that consumed nothing ends the loop, so repetition
// always terminates on finite input.
func Many0[O any, E Failure[E]](rule Rule[O, E]) Rule[[]O, E] {
	return func(in TokenSlice) (TokenSlice, []O, error) {
		var outs []O
		rest := in
		for {
			next, out, err := rule(rest)
			if err != nil || len(next) == len(rest) {
				return rest, outs, nil
			}
			outs = append(outs, out)
			rest = next
		}
	}
}

// Many1 is Many0 with the first application mandatory: the result sequence
// is guaranteed non-empty, and a failing first application fails the whole
// repetition.
func Many1[O any, E Failure[E]](rule Rule[O, E]) Rule[[]O, E] {
	return func(in TokenSlice) (TokenSlice, []O, error) {
		rest, first, err := rule(in)
		if err != nil {
			return in, nil, err
		}
		rest, more, _ := Many0(rule)(rest)
		return rest, append([]O{first}, more...), nil
	}
}

// Context wraps rule so its failures carry a human-readable label for the
// construct being attempted. Labels nest: wrapping an already-labelled rule
// yields a trail from outermost to innermost. Success behavior and consumed
// input are untouched.
func Context[O any, E Failure[E]](label string, rule Rule[O, E]) Rule[O, E] {
	return func(in TokenSlice) (TokenSlice, O, error) {
		rest, out, err := rule(in)
		if err != nil {
			return in, out, err.(E).WithContext(in, label)
		}
		return rest, out, nil
	}
}

// Verify applies rule and rejects its result unless pred holds, reporting
// the expectation described by want at the position rule started from. This
// is how content-specific matchers are built from type-generic ones.
func Verify[O any, E Failure[E]](rule Rule[O, E], want string, pred func(O) bool) Rule[O, E] {
	return func(in TokenSlice) (TokenSlice, O, error) {
		rest, out, err := rule(in)
		if err != nil {
			return in, out, err
		}
		if !pred(out) {
			var fail E
			var none O
			return in, none, fail.FromExpectation(in, want)
		}
		return rest, out, nil
	}
}
