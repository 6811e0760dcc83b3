package repository

import "errors"

var (
	ErrScoreRecordNotFound = errors.New("score record not found")
	ErrMongodb             = errors.New("mongodb error")
)
