package errorhandlefunc

import "textscrub/pagesfunc"

func ShowDataError(msg string) {
	pagesfunc.ErrorMessage(msg)
}
