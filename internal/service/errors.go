package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid      = errors.New("잘못된 요청입니다")
	ErrUserNotFound      = errors.New("유저 정보를 찾을 수 없습니다")
	ErrNicknameExist     = errors.New("이미 사용중인 닉네임입니다")
	ErrEmailExist        = errors.New("이미 사용중인 이메일입니다")
	ErrPasswordIncorrect = errors.New("비밀번호가 일치하지 않습니다")
	ErrPostNotFound      = errors.New("게시물을 찾을 수 없습니다")
	ErrCommentNotFound   = errors.New("댓글을 찾을 수 없습니다")
	ErrParentMismatch    = errors.New("댓글과 게시물이 일치하지 않습니다")
	ErrFileNotExist      = errors.New("파일을 찾을 수 없습니다")
	ErrFileNotSupported  = errors.New("지원하지 않는 파일 형식입니다")
	ErrFileConflict      = errors.New("파일이 이미 다른 게시물에 등록되어 있습니다")
	ErrTransaction       = errors.New("요청 처리 중 오류가 발생했습니다")
	UnauthorizedError    = errors.New("권한이 없습니다")
	UnExpectedError      = errors.New("알 수 없는 오류가 발생했습니다")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:      BadRequest,
	ErrUserNotFound:      NotFound,
	ErrNicknameExist:     BadRequest,
	ErrEmailExist:        BadRequest,
	ErrPasswordIncorrect: Unauthorized,
	ErrPostNotFound:      NotFound,
	ErrCommentNotFound:   NotFound,
	ErrParentMismatch:    BadRequest,
	ErrFileNotExist:      NotFound,
	ErrFileNotSupported:  BadRequest,
	ErrFileConflict:      InternalServerError,
	ErrTransaction:       InternalServerError,
	UnauthorizedError:    Forbidden,
	UnExpectedError:      InternalServerError,
}
