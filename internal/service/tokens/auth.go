package tokens

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// MerchantClaims - полезная нагрузка токена сотрудника мерчанта. TenantID
// зашивается в токен, чтобы каждый авторизованный запрос был заранее привязан
// к своему тенанту.
type MerchantClaims struct {
	jwt.RegisteredClaims
	UserID   string
	TenantID string
	StoreID  string
	Role     string
}

func GenerateMerchantJWT(claims MerchantClaims, expire time.Duration, key []byte) (string, error) {
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expire)),
	}
	token, err := generateJWT(claims, key)
	if err != nil {
		return "", fmt.Errorf("generating merchant jwt token: %s", err.Error())
	}
	return token, nil
}

func ValidateMerchantJWT(tokenString string, key []byte) (*MerchantClaims, error) {
	token, err := validateJWT(tokenString, new(MerchantClaims), key)
	if err != nil {
		return nil, fmt.Errorf("validating merchant jwt token: %w", err)
	}

	claims, ok := token.Claims.(*MerchantClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	return claims, nil
}

func generateJWT(claims jwt.Claims, key []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("generating jwt token: %s", err.Error())
	}

	return tokenString, nil
}

func validateJWT(tokenString string, claims jwt.Claims, key []byte) (*jwt.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{"HS256"}))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("parsing jwt token: %w", err)
	}

	return token, nil
}
