package errorhandlefunc

import (
	"textscrub/i18nfunc"
	"textscrub/pagesfunc"
)

// ShowIOError reports a failed read or write of a file the editor owns.
func ShowIOError(msg string) {
	pagesfunc.ErrorMessage(i18nfunc.T("error.io", map[string]interface{}{"Message": msg}))
}
