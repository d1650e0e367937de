package authenticating

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	pkgerrors "github.com/pkg/errors"
	"github.com/vfg2006/postwise-api/internal/config"
	"github.com/vfg2006/postwise-api/internal/domain"
)

// Authenticator valida a sessão emitida pelo provedor de identidade.
// A API não gerencia usuários nem senhas.
type Authenticator interface {
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	secret []byte
	issuer string
}

func NewService(cfg config.Auth) Authenticator {
	return &Service{
		secret: []byte(cfg.Secret),
		issuer: cfg.Issuer,
	}
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	options := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if s.issuer != "" {
		options = append(options, jwt.WithIssuer(s.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, pkgerrors.Wrapf(ErrUnexpectedSigning, "alg %v", token.Header["alg"])
		}
		return s.secret, nil
	}, options...)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpiredToken
		case errors.Is(err, jwt.ErrTokenInvalidIssuer):
			return nil, ErrUnexpectedIssuer
		default:
			return nil, pkgerrors.Wrap(ErrInvalidToken, err.Error())
		}
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Subject == "" {
		return nil, ErrMissingSubject
	}

	return claims, nil
}
