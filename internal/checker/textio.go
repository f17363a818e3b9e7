package checker

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"go.uber.org/multierr"
)

// ErrInvalidUTF8 is returned when the input is not UTF-8 text.
var ErrInvalidUTF8 = errors.New("input is not valid UTF-8")

var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// ReadText reads r to EOF as UTF-8 text. Line endings are kept as they are;
// a "\r" occupies a digit position like any other character.
func ReadText(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", ErrInvalidUTF8
	}
	return string(data), nil
}

// ReadFile opens path and reads it with ReadText, then translates "\r\n"
// and lone "\r" to "\n". Only file input gets this translation.
func ReadFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	text, err := ReadText(f)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return newlines.Replace(text), nil
}

// WriteVerdict writes the result symbol followed by a newline.
func WriteVerdict(w io.Writer, res Result) error {
	_, err := io.WriteString(w, res.Symbol()+"\n")
	return err
}

// WriteFile creates or truncates path and writes the verdict line to it.
func WriteFile(path string, res Result) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))

	return WriteVerdict(f, res)
}
