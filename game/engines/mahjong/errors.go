package mahjong

import "errors"

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotWinning      = errors.New("hand is not a winning shape")
	ErrNoYaku          = errors.New("no yaku")

	// 牌型表相关错误
	ErrTableNotFound  = errors.New("pattern table not found")
	ErrTableMalformed = errors.New("pattern table malformed")
	ErrTableNotLoaded = errors.New("pattern table not loaded")
)
