package output

import "strconv"

// TextFormatter formats results the way head(1) does: the raw bytes of each
// file, preceded by a "==> path <==" header when several files are shown.
type TextFormatter struct {
	styles  *Styles // nil disables color
	headers headerMode
	text    bool
	started bool
}

type headerMode int

const (
	headersAuto   headerMode = iota // headers only for multiple files
	headersNever                    // -q
	headersAlways                   // -v
)

// NewTextFormatter creates a TextFormatter.
// quiet suppresses headers, verbose forces them even for a single file.
// When text is false, binary data is summarized instead of printed.
func NewTextFormatter(styles *Styles, quiet, verbose, text bool) *TextFormatter {
	mode := headersAuto
	switch {
	case quiet:
		mode = headersNever
	case verbose:
		mode = headersAlways
	}
	return &TextFormatter{
		styles:  styles,
		headers: mode,
		text:    text,
	}
}

func (f *TextFormatter) Format(buf []byte, result Result, multiFile bool) []byte {
	if result.Err != nil {
		return buf
	}

	if f.showHeader(multiFile) {
		if f.started {
			buf = append(buf, '\n')
		}
		buf = f.appendHeader(buf, result.Path)
	}
	f.started = true

	if result.Binary && !f.text {
		return f.appendBinary(buf, result)
	}
	return append(buf, result.Data...)
}

func (f *TextFormatter) showHeader(multiFile bool) bool {
	switch f.headers {
	case headersNever:
		return false
	case headersAlways:
		return true
	}
	return multiFile
}

func (f *TextFormatter) appendHeader(buf []byte, path string) []byte {
	if path == "-" {
		path = "standard input"
	}
	if f.styles == nil {
		buf = append(buf, "==> "...)
		buf = append(buf, path...)
		buf = append(buf, " <==\n"...)
		return buf
	}
	buf = append(buf, f.styles.Header.Render("==> ")...)
	buf = append(buf, f.styles.Path.Render(path)...)
	buf = append(buf, f.styles.Header.Render(" <==")...)
	return append(buf, '\n')
}

func (f *TextFormatter) appendBinary(buf []byte, result Result) []byte {
	line := make([]byte, 0, 64)
	line = append(line, "Binary file "...)
	line = append(line, result.Path...)
	line = append(line, " ("...)
	line = strconv.AppendInt(line, int64(len(result.Data)), 10)
	line = append(line, " bytes)"...)
	if f.styles != nil {
		buf = append(buf, f.styles.Binary.Render(string(line))...)
	} else {
		buf = append(buf, line...)
	}
	return append(buf, '\n')
}

// Ensure TextFormatter implements Formatter.
var _ Formatter = (*TextFormatter)(nil)
