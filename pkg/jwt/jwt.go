package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Motivos de rechazo de un token. Verify siempre envuelve el fallo en uno de
// estos tres para que el middleware pueda clasificarlo sin conocer la
// librería subyacente.
var (
	ErrMalformed    = errors.New("jwt: token malformado")
	ErrBadSignature = errors.New("jwt: firma inválida")
	ErrExpired      = errors.New("jwt: token expirado")
)

// Claims incluye los claims estándar JWT más la identidad resuelta y el set
// de permisos materializado en el login. Los permisos NO se re-resuelven por
// request: un cambio de rol recién aplica cuando el token expira.
type Claims struct {
	jwt.RegisteredClaims
	UserID      string   `json:"user_id"`
	Name        string   `json:"name"`
	DNI         string   `json:"dni"`
	RoleID      string   `json:"role_id"`
	Permissions []string `json:"permissions"`
}

// HasPermission informa si el set de permisos del token contiene el token
// canónico "action:resource". Ausencia = denegar.
func (c *Claims) HasPermission(perm string) bool {
	for _, p := range c.Permissions {
		if p == perm {
			return true
		}
	}
	return false
}

// Issue firma un token HS256 con la identidad y permisos de la sesión.
func Issue(secret, userID, name, dni, roleID string, permissions []string, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:      userID,
		Name:        name,
		DNI:         dni,
		RoleID:      roleID,
		Permissions: permissions,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Verify valida firma y expiración y devuelve los claims. El error retornado
// envuelve ErrMalformed, ErrBadSignature o ErrExpired según el caso; un token
// verificado en o después de su instante de expiración se rechaza como
// expirado.
func Verify(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, classify(err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%w: claims inválidos", ErrMalformed)
	}
	return claims, nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %v", ErrExpired, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return fmt.Errorf("%w: %v", ErrBadSignature, err)
	case errors.Is(err, jwt.ErrTokenMalformed):
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	default:
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
}
