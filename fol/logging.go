package fol

import "github.com/proofkit/logicore/core"

type fcLogger struct{ *core.Logger }

func newFcLogger() fcLogger {
	return fcLogger{core.NewLogger("fol.forwardchain")}
}

type bcLogger struct{ *core.Logger }

func newBcLogger() bcLogger {
	return bcLogger{core.NewLogger("fol.backwardchain")}
}
