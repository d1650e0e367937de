package authenticating

import "errors"

var (
	ErrInvalidToken      = errors.New("token inválido")
	ErrExpiredToken      = errors.New("token expirado")
	ErrUnexpectedIssuer  = errors.New("emissor do token não reconhecido")
	ErrUnexpectedSigning = errors.New("algoritmo de assinatura inesperado")
	ErrMissingSubject    = errors.New("token sem identificação do usuário")
)
