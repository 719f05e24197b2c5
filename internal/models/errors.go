package models

import "errors"

var (
	ErrInvalidWindow     = errors.New("janela inválida (use: day, week, month)")
	ErrInvalidAnchorDate = errors.New("anchorDate inválida (use: YYYY-MM-DD)")
	ErrSectorsRequired   = errors.New("lista de setores é obrigatória")
	ErrTooManySectors    = errors.New("quantidade de setores acima do limite")
	ErrQueryRequired     = errors.New("termo de busca é obrigatório")
)
