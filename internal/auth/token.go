package auth

import (
	"fmt"
	"strconv"
	"time"

	"eventhub/internal/model"
	apperrors "eventhub/pkg/app_errors"

	"github.com/golang-jwt/jwt/v5"
)

// Claims token 內容；伺服器可能用 sub 或 user_id 放使用者 id
type Claims struct {
	UserID any    `json:"user_id,omitempty"`
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// UserFromToken 從已儲存的 token 推導目前使用者。
// 客戶端沒有簽章金鑰，因此不驗證簽章，只讀取 claims。
func UserFromToken(token string) (*model.User, error) {
	var claims Claims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidToken, err)
	}
	return claims.user()
}

func (c *Claims) user() (*model.User, error) {
	id, err := c.userID()
	if err != nil {
		return nil, err
	}
	return &model.User{ID: id, Name: c.Name, Email: c.Email}, nil
}

func (c *Claims) userID() (int, error) {
	if c.Subject != "" {
		id, err := strconv.Atoi(c.Subject)
		if err != nil {
			return 0, fmt.Errorf("%w: subject %q is not a user id", apperrors.ErrInvalidToken, c.Subject)
		}
		return id, nil
	}
	switch v := c.UserID.(type) {
	case float64:
		return int(v), nil
	case string:
		id, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("%w: user_id %q is not a user id", apperrors.ErrInvalidToken, v)
		}
		return id, nil
	}
	return 0, fmt.Errorf("%w: missing user id claim", apperrors.ErrInvalidToken)
}

// Issuer 簽發與驗證 HS256 token（本機開發 API 使用）
type Issuer struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

func NewIssuer(secret string, expiry time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), expiry: expiry, now: time.Now}
}

func (i *Issuer) Issue(user *model.User) (string, error) {
	now := i.now()
	claims := Claims{
		Name:  user.Name,
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.expiry)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

func (i *Issuer) Verify(token string) (*model.User, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(i.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidToken, err)
	}
	return claims.user()
}
