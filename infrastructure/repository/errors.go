package repository

import "errors"

// ErrNotFound indica que nenhuma linha foi afetada pela atualização
var ErrNotFound = errors.New("registro não encontrado")
