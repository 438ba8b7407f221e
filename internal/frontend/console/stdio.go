package console

import (
	"bufio"
	"fmt"
	"io"
)

// Stdio is a Terminal over a reader and a writer, typically os.Stdin and
// os.Stdout.
type Stdio struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewStdio wraps in and out.
func NewStdio(in io.Reader, out io.Writer) *Stdio {
	return &Stdio{scanner: bufio.NewScanner(in), out: out}
}

// ReadLine returns the next line, or io.EOF when input is exhausted.
func (s *Stdio) ReadLine() (string, error) {
	if s.scanner.Scan() {
		return s.scanner.Text(), nil
	}
	if err := s.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// WriteLine writes text and a newline.
func (s *Stdio) WriteLine(text string) error {
	_, err := fmt.Fprintln(s.out, text)
	return err
}

// WritePrompt writes text with no newline.
func (s *Stdio) WritePrompt(prompt string) error {
	_, err := fmt.Fprint(s.out, prompt)
	return err
}
