package util

import "errors"

var (
	ErrEmailRegistered    = errors.New("该邮箱已被注册")
	ErrModuleNotFound     = errors.New("unknown module id")
	ErrSessionNotFound    = errors.New("no active session for module")
	ErrSessionNotDone     = errors.New("quiz session not finished")
	ErrNoSelection        = errors.New("no option selected for current question")
	ErrNotCurrentState    = errors.New("operation not legal in current session state")
	ErrInstrumentUnknown  = errors.New("unknown instrument")
	ErrEventUnknown       = errors.New("unknown market event")
	ErrInsufficientCash   = errors.New("insufficient cash for purchase")
	ErrInsufficientShares = errors.New("sell quantity exceeds held shares")
)
