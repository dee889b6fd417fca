// Package gameerr 定义了游戏服务的错误分类，
// 每个错误都带有机器可读的 Kind，在传输层统一映射为 HTTP 状态码。
package gameerr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind 是机器可读的错误类别。
type Kind string

const (
	// KindUnknown 表示未分类的内部错误。
	KindUnknown Kind = "UNKNOWN"

	// KindNotFound 房间、玩家或目标不存在。
	KindNotFound Kind = "NOT_FOUND"
	// KindForbidden 主持人口令错误，或者访问者没有查看权限。
	KindForbidden Kind = "FORBIDDEN"
	// KindInvalidPhase 操作与当前阶段不符（例如白天结算夜晚）。
	KindInvalidPhase Kind = "INVALID_PHASE"
	// KindGameEnded 游戏已分出胜负，拒绝一切继续改动状态的操作。
	KindGameEnded Kind = "GAME_ENDED"
	// KindDeadPlayer 已出局玩家提交行动。
	KindDeadPlayer Kind = "DEAD_PLAYER"
	// KindInvalidRole 进度查询使用了不在可唤醒集合里的身份。
	KindInvalidRole Kind = "INVALID_ROLE"
	// KindValidation 请求参数不合法（缺目标、人数不足、未知行动类型等）。
	KindValidation Kind = "VALIDATION_ERROR"
)

// Error 是携带 Kind 的领域错误。
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func NotFound(message string) *Error     { return New(KindNotFound, message) }
func Forbidden(message string) *Error    { return New(KindForbidden, message) }
func InvalidPhase(message string) *Error { return New(KindInvalidPhase, message) }
func GameEnded(message string) *Error    { return New(KindGameEnded, message) }
func DeadPlayer(message string) *Error   { return New(KindDeadPlayer, message) }
func InvalidRole(message string) *Error  { return New(KindInvalidRole, message) }
func Validation(message string) *Error   { return New(KindValidation, message) }

// KindOf 从任意 error 中提取 Kind，非领域错误返回 KindUnknown。
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return KindUnknown
}

// IsKind 判断错误是否属于指定类别。
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// HTTPStatus 把错误类别映射为 HTTP 状态码，仅在传输层使用。
func (k Kind) HTTPStatus() int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound

	case KindForbidden:
		return http.StatusForbidden

	// 状态冲突：阶段不符、游戏结束、死亡玩家
	case KindInvalidPhase, KindGameEnded, KindDeadPlayer:
		return http.StatusConflict

	case KindInvalidRole, KindValidation:
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}
