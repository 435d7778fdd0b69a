package security

import (
	"errors"
	"testing"
	"time"
)

func TestNewSigner_缺少密钥应失败(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	if _, err := NewSigner("", 0); !errors.Is(err, ErrJWTSecretMissing) {
		t.Fatalf("期望 ErrJWTSecretMissing, got=%v", err)
	}
}

func TestNewSigner_环境变量优先(t *testing.T) {
	t.Setenv("JWT_SECRET", "from-env")
	s, err := NewSigner("from-config", 0)
	if err != nil {
		t.Fatalf("NewSigner err=%v", err)
	}
	if string(s.key) != "from-env" {
		t.Fatalf("期望使用环境变量密钥, got=%s", s.key)
	}
}

func TestAwardVerify_正常签发并解析(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	s, err := NewSigner("test-secret-123", time.Hour)
	if err != nil {
		t.Fatalf("NewSigner err=%v", err)
	}

	token, err := s.Award(42, "alice")
	if err != nil {
		t.Fatalf("Award err=%v", err)
	}
	if err := s.Verify(token, 42); err != nil {
		t.Fatalf("Verify err=%v", err)
	}
	claims, err := s.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken err=%v", err)
	}
	if claims.SessionID != 42 || claims.Player != "alice" {
		t.Fatalf("claims=%+v", claims)
	}
	if err := s.Verify(token, 43); !errors.Is(err, ErrTokenSubject) {
		t.Fatalf("期望 ErrTokenSubject, got=%v", err)
	}
}

func TestVerify_过期与错误密钥(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	s, _ := NewSigner("k1", time.Minute)
	token, err := s.Award(1, "p")
	if err != nil {
		t.Fatal(err)
	}

	other, _ := NewSigner("k2", time.Minute)
	if err := other.Verify(token, 1); err == nil {
		t.Fatalf("错误密钥应校验失败")
	}

	s.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	if err := s.Verify(token, 1); err == nil {
		t.Fatalf("过期 token 应校验失败")
	}
}
