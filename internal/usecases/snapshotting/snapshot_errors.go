package snapshotting

import (
	"errors"
	"fmt"
)

var (
	ErrSnapshotNotAvailable = errors.New("snapshot não disponível")
	ErrIDGeneration         = errors.New("falha ao gerar id do snapshot")
)

type SnapshotError struct {
	Err     error
	Code    string
	Details string
}

func (e *SnapshotError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *SnapshotError) Unwrap() error {
	return e.Err
}

func NewSnapshotError(baseErr error, code string, details string) *SnapshotError {
	return &SnapshotError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
