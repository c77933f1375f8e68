package usererror

import "reflect"

// maxChainLength bounds chain extraction. Cycles through pointer errors are
// detected directly; anything else stops here.
const maxChainLength = 64

type singleUnwrapper interface{ Unwrap() error }
type multiUnwrapper interface{ Unwrap() []error }

// causer is the github.com/pkg/errors cause accessor.
type causer interface{ Cause() error }

// children returns the immediate causes of err. Unwrap takes precedence over
// Cause, so errors that implement both are not walked twice.
func children(err error) []error {
	switch e := err.(type) {
	case multiUnwrapper:
		return e.Unwrap()
	case singleUnwrapper:
		if u := e.Unwrap(); u != nil {
			return []error{u}
		}
	case causer:
		if c := e.Cause(); c != nil {
			return []error{c}
		}
	}
	return nil
}

// causes returns the display text of every error below err in pre-order,
// depth first: the immediate cause first and the root cause last. err itself
// is not included.
func causes(err error) []string {
	var out []string
	seen := map[error]struct{}{}
	mark := func(e error) bool {
		// A cycle must pass through a pointer. Value types may hold
		// unhashable fields and are never tracked.
		if reflect.TypeOf(e).Kind() != reflect.Pointer {
			return true
		}
		if _, dup := seen[e]; dup {
			return false
		}
		seen[e] = struct{}{}
		return true
	}
	mark(err)

	stack := pushChildren(nil, err, mark)
	for len(stack) > 0 && len(out) < maxChainLength {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, cur.Error())
		stack = pushChildren(stack, cur, mark)
	}
	return out
}

// pushChildren pushes err's unseen children in reverse so they pop left to
// right.
func pushChildren(stack []error, err error, mark func(error) bool) []error {
	kids := children(err)
	for i := len(kids) - 1; i >= 0; i-- {
		if k := kids[i]; k != nil && mark(k) {
			stack = append(stack, k)
		}
	}
	return stack
}
