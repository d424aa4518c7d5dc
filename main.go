package main

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Run with
//		go run .
// or serve generation over http:
//		go run . serve
//		curl -F 'size=4' "localhost:8080/generate"

var logger = zap.NewNop().Sugar()

func InitLogger(debug bool) {
	cfg := zap.NewDevelopmentConfig()
	if !debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
	log, err := cfg.Build()
	if err != nil {
		return // keep the no-op logger
	}
	logger = log.Sugar()
}

func main() {
	Execute()
}
