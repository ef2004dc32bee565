package logging

import (
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/sirupsen/logrus"
)

// Middleware gives every huma operation its own LogData and writes the
// Start and Complete (or Error) lines around it. Responses of 500 and above
// are logged as errors.
func Middleware(log *logrus.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		loggingName := operationName(ctx.Operation())
		logData := NewLogData(log)

		log.Infof("Handler.%v.Start", loggingName)
		logData.AddData("method", ctx.Method())
		logData.AddData("path", ctx.URL().Path)

		endTimer := logData.AddTiming("duration")
		next(huma.WithValue(ctx, logDataKey{}, logData))
		endTimer()

		status := ctx.Status()
		logData.AddData("status", status)
		if status >= http.StatusInternalServerError {
			if logData.Err() == nil {
				logData.SetError(fmt.Errorf("status %d", status))
			}
			logData.Log().Errorf("Handler.%v.Error", loggingName)
			return
		}

		logData.Log().Infof("Handler.%v.Complete", loggingName)
	}
}

func operationName(op *huma.Operation) string {
	if op == nil || op.OperationID == "" {
		return "Unknown"
	}
	return op.OperationID
}
