package utils

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token types carried in the token_type claim
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

var (
	ErrInvalidToken        = errors.New("invalid token")
	ErrUnexpectedTokenType = errors.New("unexpected token type")
)

// JWTClaims claims embedded in access and refresh tokens. Role and username are
// included so clients can render their UI without a follow-up request.
type JWTClaims struct {
	UserID    uint   `json:"user_id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenPair access/refresh tokens issued on login
type TokenPair struct {
	Access        string
	Refresh       string
	RefreshClaims *JWTClaims
}

// JWTManager signs and validates tokens
type JWTManager struct {
	secretKey     []byte
	algorithm     jwt.SigningMethod
	accessExpire  time.Duration
	refreshExpire time.Duration
}

// NewJWTManager creates a JWT manager
func NewJWTManager(secretKey string, algorithm string, accessExpire, refreshExpire time.Duration) *JWTManager {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		method = jwt.SigningMethodHS256
	}
	return &JWTManager{
		secretKey:     []byte(secretKey),
		algorithm:     method,
		accessExpire:  accessExpire,
		refreshExpire: refreshExpire,
	}
}

// GenerateTokenPair issues a refresh token and an access token for the user
func (j *JWTManager) GenerateTokenPair(userID uint, username, role string) (*TokenPair, error) {
	refreshClaims := j.newClaims(userID, username, role, TokenTypeRefresh, j.refreshExpire)
	refresh, err := j.sign(refreshClaims)
	if err != nil {
		return nil, err
	}

	access, err := j.GenerateAccessToken(userID, username, role)
	if err != nil {
		return nil, err
	}

	return &TokenPair{Access: access, Refresh: refresh, RefreshClaims: refreshClaims}, nil
}

// GenerateAccessToken issues a short lived access token
func (j *JWTManager) GenerateAccessToken(userID uint, username, role string) (string, error) {
	return j.sign(j.newClaims(userID, username, role, TokenTypeAccess, j.accessExpire))
}

func (j *JWTManager) newClaims(userID uint, username, role, tokenType string, ttl time.Duration) *JWTClaims {
	now := time.Now()
	return &JWTClaims{
		UserID:    userID,
		Username:  username,
		Role:      role,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
}

func (j *JWTManager) sign(claims *JWTClaims) (string, error) {
	token := jwt.NewWithClaims(j.algorithm, claims)
	return token.SignedString(j.secretKey)
}

// ValidateToken parses and verifies a token of any type
func (j *JWTManager) ValidateToken(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != j.algorithm.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return j.secretKey, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}

// ValidateTokenType verifies a token and checks its token_type claim
func (j *JWTManager) ValidateTokenType(tokenString, tokenType string) (*JWTClaims, error) {
	claims, err := j.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != tokenType {
		return nil, ErrUnexpectedTokenType
	}
	return claims, nil
}
