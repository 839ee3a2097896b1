package app

import (
	"io"
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/halftone"
)

// languageTag picks the summary language from -lang, then the POSIX locale
// variables. Anything unparsable, and the C locale, fall back to English.
func languageTag(lang string) language.Tag {
	for _, s := range []string{lang, os.Getenv("LC_ALL"), os.Getenv("LC_MESSAGES"), os.Getenv("LANG")} {
		s, _, _ = strings.Cut(s, ".")
		s, _, _ = strings.Cut(s, "@")
		if s == "" {
			continue
		}
		if s == "C" || s == "POSIX" {
			return language.English
		}
		if tag, err := language.Parse(strings.ReplaceAll(s, "_", "-")); err == nil {
			return tag
		}
	}
	return language.English
}

// writeSummary prints the result figures the way the wizard's status panel
// shows them.
func writeSummary(w io.Writer, tag language.Tag, src string, width, height int, p halftone.Params, res *halftone.Result) error {
	pr := message.NewPrinter(tag)
	ow, oh := p.OutputSize(width, height)
	minutes := res.Duration(halftone.SecondPerCut).Minutes()

	if _, err := pr.Fprintf(w, "%s: %d x %d pixels, %d dots\n", src, width, height, res.Points); err != nil {
		return err
	}
	if _, err := pr.Fprintf(w, "Output size: %.4g x %.4g\n", ow, oh); err != nil {
		return err
	}
	_, err := pr.Fprintf(w, "Cuts: %d, requiring %.1f minutes at 1 second/cut\n", res.CutCount, minutes)
	return err
}
