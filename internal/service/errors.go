package service

import "errors"

var (
	ErrNoSession       = errors.New("no active session")
	ErrEmptyMessage    = errors.New("message content is empty")
	ErrMatchNotFound   = errors.New("match not found")
	ErrSubjectNotFound = errors.New("subject not found")
	ErrInvalidIndex    = errors.New("feed index must not be negative")

	// 註冊表單驗證錯誤，訊息直接顯示給使用者
	ErrUnknownUniversity = errors.New("email domain does not belong to a registered university")
	ErrPasswordMismatch  = errors.New("passwords do not match")
	ErrPasswordTooShort  = errors.New("password must be at least 8 characters")

	// errCorrupt 表示 key 存在但內容無法解析
	errCorrupt = errors.New("corrupt stored value")
)
