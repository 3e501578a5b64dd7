package timefunc

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DefaultDateTimeFormat is used when a template cannot be converted.
const DefaultDateTimeFormat = "yyyy-mm-dd hh:ii:ss"

const dtAllowedSymbRegexp = `^[ymdhis./: -]+$`

var dtPattern = regexp.MustCompile(dtAllowedSymbRegexp)

var ErrBadTemplate = errors.New("invalid date time template")

// templateToLayout converts a user template such as "dd.mm.yyyy hh:ii:ss"
// to a Go time layout. Every part must appear exactly once.
func templateToLayout(tpl string) (string, error) {
	if !dtPattern.MatchString(tpl) {
		return "", fmt.Errorf("%q: only %s allowed: %w", tpl, "ymdhis./: -", ErrBadTemplate)
	}
	layout := tpl
	var errs []error
	replace := func(part, goPart string) bool {
		if strings.Count(layout, part) != 1 {
			return false
		}
		layout = strings.Replace(layout, part, goPart, 1)
		return true
	}
	if !replace("yyyy", "2006") && !replace("yy", "06") {
		errs = append(errs, fmt.Errorf("%q: year missing: %w", tpl, ErrBadTemplate))
	}
	for _, p := range []struct{ part, goPart, name string }{
		{"mm", "01", "month"},
		{"dd", "02", "day"},
		{"hh", "15", "hour"},
		{"ii", "04", "minutes"},
		{"ss", "05", "seconds"},
	} {
		if !replace(p.part, p.goPart) {
			errs = append(errs, fmt.Errorf("%q: %s missing: %w", tpl, p.name, ErrBadTemplate))
		}
	}
	if len(errs) > 0 {
		return "", errors.Join(errs...)
	}
	return layout, nil
}

// FormatDateTime formats t in local time with a user template, falling
// back to DefaultDateTimeFormat when the template is invalid.
func FormatDateTime(t time.Time, tpl string) string {
	layout, err := templateToLayout(tpl)
	if err != nil {
		layout, _ = templateToLayout(DefaultDateTimeFormat)
	}
	return t.Local().Format(layout)
}

// CheckTemplate reports whether tpl can be used with FormatDateTime.
func CheckTemplate(tpl string) error {
	_, err := templateToLayout(tpl)
	return err
}
