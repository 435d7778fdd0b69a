package security

import (
	"bytes"
	"crypto/aes"
	"errors"
	"io"

	"github.com/go-think/openssl"
	"github.com/klauspost/compress/zlib"
)

// ErrKeyLength AES 密钥必须是 16/24/32 字节，iv 至少一个分组。
var ErrKeyLength = errors.New("aes key must be 16, 24 or 32 bytes")

// AesCBCEncrypt 对 WS 帧做 AES-CBC 加密，连接上的 key 同时用作 iv。
func AesCBCEncrypt(src, key, iv []byte, padding string) ([]byte, error) {
	if !validKey(key) || len(iv) < aes.BlockSize {
		return nil, ErrKeyLength
	}
	return openssl.AesCBCEncrypt(src, key, iv[:aes.BlockSize], padding)
}

func AesCBCDecrypt(src, key, iv []byte, padding string) ([]byte, error) {
	if !validKey(key) || len(iv) < aes.BlockSize {
		return nil, ErrKeyLength
	}
	out, err := openssl.AesCBCDecrypt(src, key, iv[:aes.BlockSize], padding)
	if err != nil {
		return nil, err
	}
	if padding == openssl.ZEROS_PADDING {
		// 零填充解不掉尾部的 0，JSON 帧末尾不会是 0 字节。
		out = bytes.TrimRight(out, "\x00")
	}
	return out, nil
}

func validKey(key []byte) bool {
	switch len(key) {
	case 16, 24, 32:
		return true
	}
	return false
}

// Zip 使用 zlib 压缩。
func Zip(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func UnZip(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}
