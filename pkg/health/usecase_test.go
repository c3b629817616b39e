package health

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubChecker struct {
	name string
	err  error
}

func (s stubChecker) Name() string                { return s.name }
func (s stubChecker) Check(context.Context) error { return s.err }

func TestReadyAllHealthy(t *testing.T) {
	svc := NewService(stubChecker{name: "nlp"}, nil, stubChecker{name: "redis"})
	assert.NoError(t, svc.Ready(context.Background()))
}

func TestReadyReportsFailingChecker(t *testing.T) {
	down := errors.New("connection refused")
	svc := NewService(stubChecker{name: "nlp"}, stubChecker{name: "postgres", err: down})

	err := svc.Ready(context.Background())
	assert.ErrorIs(t, err, down)
	assert.EqualError(t, err, "postgres: connection refused")
}
