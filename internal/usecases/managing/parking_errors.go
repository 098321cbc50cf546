package managing

import (
	"errors"
	"fmt"
)

var (
	ErrParkingNotFound = errors.New("parking não encontrado")
	ErrParkingNotOwned = errors.New("parking pertence a outro proprietário")
	ErrInvalidRequest  = errors.New("requisição inválida")
	ErrInvalidRating   = errors.New("avaliação fora do intervalo")
	ErrUnknownOwner    = errors.New("proprietário não identificado")
	ErrSpotNotFound    = errors.New("vaga não encontrada")
)

// ParkingError carrega o código de API junto do erro base
type ParkingError struct {
	Err     error
	Code    string
	Details string
}

func (e *ParkingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ParkingError) Unwrap() error {
	return e.Err
}

func NewParkingError(baseErr error, code string, details string) *ParkingError {
	return &ParkingError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
