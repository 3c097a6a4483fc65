package action

// Simple implements the Action interface for a plain func().
// The explanation is static, unless a dynamic explainer is given via
// NewDynamic.
type Simple struct {
	do      func()
	explain func() string
}

// Do calls the wrapped function.
func (a *Simple) Do() {
	a.do()
}

// Explain returns the explanation for this action.
func (a *Simple) Explain() string {
	return a.explain()
}

// NewSimple returns a new simple action calling do, explained by explanation.
func NewSimple(explanation string, do func()) *Simple {
	return &Simple{
		do:      do,
		explain: func() string { return explanation },
	}
}

// NewDynamic returns a new simple action calling do, whose explanation is
// computed on every call to Explain, e.g. to reflect a toggle state.
func NewDynamic(explainer func() string, do func()) *Simple {
	return &Simple{
		do:      do,
		explain: explainer,
	}
}
