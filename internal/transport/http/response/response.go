package response

import (
	"errors"

	"voucher-management/internal/domain"
)

type Resp struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data"`
}

// New never leaves data as null.
func New(code int, msg string, data any) Resp {
	if data == nil {
		data = struct{}{}
	}
	return Resp{Code: code, Msg: msg, Data: data}
}

func OK(data any) Resp {
	return New(CodeOK, CodeMsgMap[CodeOK], data)
}

// Error uses the default message for code unless customMsg is set.
func Error(code int, customMsg string) Resp {
	msg := CodeMsgMap[code]
	if customMsg != "" {
		msg = customMsg
	}
	return New(code, msg, struct{}{})
}

// FromError maps repository and domain errors onto business codes.
func FromError(err error) Resp {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return Error(CodeNotFound, err.Error())
	case errors.Is(err, domain.ErrDuplicateKey):
		return Error(CodeConflict, err.Error())
	case errors.Is(err, domain.ErrInvalidVoucherType):
		return Error(CodeBadRequest, err.Error())
	default:
		return Error(CodeServerError, "")
	}
}
