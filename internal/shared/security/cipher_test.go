package security

import (
	"bytes"
	"errors"
	"testing"

	"github.com/go-think/openssl"
)

func TestZip_压缩后可还原(t *testing.T) {
	src := []byte(`{"seq":1,"name":"game.move","msg":{"direction":"left"}}`)
	z, err := Zip(src)
	if err != nil {
		t.Fatalf("Zip err=%v", err)
	}
	out, err := UnZip(z)
	if err != nil {
		t.Fatalf("UnZip err=%v", err)
	}
	if !bytes.Equal(out, src) {
		t.Fatalf("got=%s", out)
	}
}

func TestUnZip_非法数据(t *testing.T) {
	if _, err := UnZip([]byte("not zlib")); err == nil {
		t.Fatalf("期望非法数据报错")
	}
}

func TestAesCBC_加解密(t *testing.T) {
	key := []byte("0123456789abcdef")
	src := []byte(`{"name":"game.state"}`)
	enc, err := AesCBCEncrypt(src, key, key, openssl.ZEROS_PADDING)
	if err != nil {
		t.Fatalf("encrypt err=%v", err)
	}
	if bytes.Equal(enc, src) {
		t.Fatalf("密文不应等于明文")
	}
	dec, err := AesCBCDecrypt(enc, key, key, openssl.ZEROS_PADDING)
	if err != nil {
		t.Fatalf("decrypt err=%v", err)
	}
	if !bytes.Equal(dec, src) {
		t.Fatalf("got=%q", dec)
	}
}

func TestAesCBC_密钥长度(t *testing.T) {
	if _, err := AesCBCEncrypt([]byte("x"), []byte("short"), []byte("short"), openssl.ZEROS_PADDING); !errors.Is(err, ErrKeyLength) {
		t.Fatalf("期望 ErrKeyLength, got=%v", err)
	}
}
