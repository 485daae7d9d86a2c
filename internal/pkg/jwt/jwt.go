package jwt

import (
	"errors"
	"sync"
	"time"

	"github.com/absensi-dosen/absensi-backend-go/internal/domain/lecturer"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

var ErrMissingClaim = errors.New("token is missing a required claim")

// Claims is the identity carried by an access token.
type Claims struct {
	NIP        string
	FullName   string
	Role       lecturer.Role
	Department string
}

type Service interface {
	GenerateAccessToken(c Claims) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
	RevokeToken(token string)
	IsTokenRevoked(token string) bool
}

type JWTService struct {
	secretKey                 string
	accessTokenExpirationTime string
	tokenAuth                 *jwtauth.JWTAuth
	revokedTokens             map[string]int64
	mu                        sync.RWMutex
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string) Service {
	return &JWTService{
		secretKey:                 secretKey,
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revokedTokens:             make(map[string]int64),
	}
}

func (j *JWTService) GenerateAccessToken(c Claims) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"nip":        c.NIP,
		"name":       c.FullName,
		"role":       string(c.Role),
		"department": c.Department,
		"type":       "access",
		"exp":        expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

func (j *JWTService) RevokeToken(token string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.revokedTokens[token] = time.Now().Unix()
}

func (j *JWTService) IsTokenRevoked(token string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	_, revoked := j.revokedTokens[token]
	return revoked
}

// ClaimsFromMap reads the identity claims decoded by jwtauth.
func ClaimsFromMap(m map[string]interface{}) (Claims, error) {
	nip, _ := m["nip"].(string)
	if nip == "" {
		return Claims{}, ErrMissingClaim
	}
	roleStr, _ := m["role"].(string)
	role, err := lecturer.ParseRole(roleStr)
	if err != nil {
		return Claims{}, err
	}
	name, _ := m["name"].(string)
	department, _ := m["department"].(string)

	return Claims{NIP: nip, FullName: name, Role: role, Department: department}, nil
}
