package loader

import (
	"errors"
	"fmt"
)

var (
	// Erros de acesso ao arquivo
	ErrOpenFile = errors.New("error opening downloads file")
	ErrReadFile = errors.New("error reading downloads file")

	// Erros por linha
	ErrDecodeLine    = errors.New("malformed download line")
	ErrMissingShowID = errors.New("download without showId")
	ErrLineTooLong   = errors.New("download line too long")
)

// LineError descreve uma linha rejeitada durante a carga
type LineError struct {
	Err     error  // Erro base
	Line    int    // Número da linha (a partir de 1)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *LineError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("line %d: %s: %s", e.Line, e.Err.Error(), e.Details)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Err.Error())
}

// Unwrap retorna o erro subjacente
func (e *LineError) Unwrap() error {
	return e.Err
}

// NewLineError cria um novo LineError
func NewLineError(err error, line int, details string) *LineError {
	return &LineError{
		Err:     err,
		Line:    line,
		Details: details,
	}
}
