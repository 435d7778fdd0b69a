package domain

import "Game2048/modules/kit/errx"

// Code 领域错误码。
type Code = errx.Code

const (
	CodeInvalidBoard     Code = "GAME_INVALID_BOARD"
	CodeInvalidDirection Code = "GAME_INVALID_DIRECTION"
	// CodeNoEmptyCell 属于调用方编程错误：满盘时不应再 spawn。
	CodeNoEmptyCell Code = "GAME_NO_EMPTY_CELL"
)

type Error = errx.Error

var (
	ErrInvalidBoard     = errx.NewBiz(CodeInvalidBoard, "棋盘不合法")
	ErrInvalidDirection = errx.NewBiz(CodeInvalidDirection, "方向不合法")
	ErrNoEmptyCell      = errx.NewSys(CodeNoEmptyCell, "棋盘已满，无法生成新方块")
)
