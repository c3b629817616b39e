package checkers

import "context"

// readier is satisfied by keywords.UseCase.
type readier interface {
	Ready() error
}

// NLPChecker reports whether the language pipeline and phrase matcher loaded.
type NLPChecker struct {
	r readier
}

func NewNLPChecker(r readier) *NLPChecker {
	return &NLPChecker{r: r}
}

func (c *NLPChecker) Name() string { return "nlp" }

func (c *NLPChecker) Check(context.Context) error { return c.r.Ready() }
