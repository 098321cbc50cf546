package analyzing

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrUnknownOwner = errors.New("proprietário não identificado")
	ErrNonFinite    = errors.New("valor não finito no cálculo")
)

// AggregationError identifica a visão em que o cálculo falhou
type AggregationError struct {
	View string
	Err  error
}

func (e *AggregationError) Error() string {
	return fmt.Sprintf("analytics %s: %v", e.View, e.Err)
}

func (e *AggregationError) Unwrap() error {
	return e.Err
}

// Cause permite que errors.Cause chegue ao erro original
func (e *AggregationError) Cause() error {
	return e.Err
}
