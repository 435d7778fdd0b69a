package dto

import "Game2048/internal/shared/transport"

func Success(code int, data any) transport.Response {
	return transport.Response{Code: code, Msg: data}
}

func Error(code int, msg string) transport.Response {
	return transport.Response{Code: code, Err: msg}
}
