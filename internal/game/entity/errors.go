package entity

import "Game2048/modules/kit/errx"

const (
	CodeNotPlaying Code = "GAME_NOT_PLAYING"
	CodeBadScene   Code = "GAME_BAD_SCENE"
)

type Code = errx.Code

var (
	// ErrNotPlaying 只有 Playing 场景才接受移动。
	ErrNotPlaying = errx.NewBiz(CodeNotPlaying, "对局未在进行中")
	// ErrBadScene 场景切换不合法（例如 Playing 中再次 Start）。
	ErrBadScene = errx.NewBiz(CodeBadScene, "场景切换不合法")
)
