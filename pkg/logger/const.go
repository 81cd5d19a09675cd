package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Field = zapcore.Field

var (
	Int     = zap.Int
	Int64   = zap.Int64
	Bool    = zap.Bool
	String  = zap.String
	Float64 = zap.Float64
	Error   = zap.Error
	Any     = zap.Any
)
