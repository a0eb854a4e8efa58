package logger

import (
	flag "github.com/spf13/pflag"
)

const (
	// CfgLevel is the minimum enabled logging level.
	CfgLevel = "logger.level"
	// CfgEncoding is the encoding of log entries (console or json).
	CfgEncoding = "logger.encoding"
	// CfgOutputPaths is a list of URLs or file paths to write logging output to.
	CfgOutputPaths = "logger.outputPaths"
	// CfgDisableCaller stops annotating logs with the calling function's file name and line number.
	CfgDisableCaller = "logger.disableCaller"
	// CfgDisableStacktrace disables automatic stacktrace capturing.
	CfgDisableStacktrace = "logger.disableStacktrace"
)

const (
	defaultLevel    = "info"
	defaultEncoding = "console"
)

var defaultOutputPaths = []string{"stderr"}

func init() {
	flag.String(CfgLevel, defaultLevel, "the minimum enabled logging level")
	flag.String(CfgEncoding, defaultEncoding, "the encoding of log entries (console or json)")
	flag.StringSlice(CfgOutputPaths, defaultOutputPaths, "a list of URLs or file paths to write logging output to")
	flag.Bool(CfgDisableCaller, true, "stop annotating logs with the calling function's file name and line number")
	flag.Bool(CfgDisableStacktrace, false, "disable automatic stacktrace capturing")
}
