package prop

import "github.com/proofkit/logicore/core"

type resolutionLogger struct{ *core.Logger }

func newResolutionLogger() resolutionLogger {
	return resolutionLogger{core.NewLogger("prop.resolution")}
}

type dpllLogger struct{ *core.Logger }

func newDpllLogger() dpllLogger {
	return dpllLogger{core.NewLogger("prop.dpll")}
}
