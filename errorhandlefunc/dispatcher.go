package errorhandlefunc

import "textscrub/logfunc"

const (
	ErrorTypeIO = iota
	ErrorTypeData
)

// ThrowError logs msg and shows it to the user in a modal.
func ThrowError(msg string, errorType int) {
	logfunc.Component("error").Error().Int("type", errorType).Msg(msg)
	switch errorType {
	case ErrorTypeIO:
		ShowIOError(msg)
	case ErrorTypeData:
		ShowDataError(msg)
	}
}
