package logger

import "go.uber.org/zap"

// NOOPLogger discards everything. It is the default for servers built
// without a logger.
var NOOPLogger = zap.NewNop().Sugar()

// New returns a console logger for local development and a JSON logger
// everywhere else.
func New(appEnv string) (*zap.SugaredLogger, error) {
	var (
		l   *zap.Logger
		err error
	)
	if appEnv == "local" {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}
