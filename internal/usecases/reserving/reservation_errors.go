package reserving

import (
	"errors"
	"fmt"
)

var (
	ErrParkingNotFound     = errors.New("parking não encontrado")
	ErrSpotNotFound        = errors.New("vaga não registrada no parking")
	ErrReservationNotFound = errors.New("reserva não encontrada")
	ErrNotAllowed          = errors.New("reserva pertence a outro usuário")
	ErrInvalidStatus       = errors.New("status de reserva inválido")
	ErrInvalidSchedule     = errors.New("horário de reserva inválido")
	ErrInvalidRequest      = errors.New("requisição inválida")
)

// ReservationError carrega o código de API junto do erro base
type ReservationError struct {
	Err     error
	Code    string
	Details string
}

func (e *ReservationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ReservationError) Unwrap() error {
	return e.Err
}

func NewReservationError(baseErr error, code string, details string) *ReservationError {
	return &ReservationError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
