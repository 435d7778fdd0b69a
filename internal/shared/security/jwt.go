package security

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrJWTSecretMissing = errors.New("JWT_SECRET is not set")
	ErrTokenSubject     = errors.New("token is bound to another session")
)

// DefaultTokenTTL 对局 token 的默认有效期。
const DefaultTokenTTL = 24 * time.Hour

// Claims 绑定一个对局和发起它的玩家。
type Claims struct {
	SessionID int64  `json:"sid,string"`
	Player    string `json:"player"`
	jwt.RegisteredClaims
}

// Signer 用 HS256 签发/校验对局 token。
type Signer struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

// NewSigner 优先使用环境变量 JWT_SECRET，其次使用配置里的 secret。
func NewSigner(secret string, ttl time.Duration) (*Signer, error) {
	if env := os.Getenv("JWT_SECRET"); env != "" {
		secret = env
	}
	if secret == "" {
		return nil, ErrJWTSecretMissing
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &Signer{key: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Award 生成绑定 sessionID 的 token。
func (s *Signer) Award(sessionID int64, player string) (string, error) {
	now := s.now()
	claims := &Claims{
		SessionID: sessionID,
		Player:    player,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(sessionID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.key)
}

// ParseToken 解析并验证 token。
func (s *Signer) ParseToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.key, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, err
	}
	if token == nil || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// Verify 校验 token 且必须属于 sessionID。
func (s *Signer) Verify(tokenStr string, sessionID int64) error {
	claims, err := s.ParseToken(tokenStr)
	if err != nil {
		return err
	}
	if claims.SessionID != sessionID {
		return ErrTokenSubject
	}
	return nil
}
