package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter reads answers from a line-oriented input and writes prompts and
// messages to an output. Every read method returns io.EOF once the input is
// exhausted.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter returns a Prompter reading from in and writing to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Out returns the writer prompts are printed to.
func (p *Prompter) Out() io.Writer {
	return p.out
}

// Printf writes formatted text to the output.
func (p *Prompter) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// Println writes a line to the output.
func (p *Prompter) Println(args ...any) {
	fmt.Fprintln(p.out, args...)
}

// Line prints msg and returns the next input line without its line ending.
// A final line with no newline is still returned; io.EOF is returned only
// when nothing is left to read.
func (p *Prompter) Line(msg string) (string, error) {
	fmt.Fprint(p.out, msg)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Number prompts until the answer is a non-empty run of digits, printing
// missing after each blank answer.
func (p *Prompter) Number(msg, missing string) (int, error) {
	for {
		n, ok, err := p.OptionalNumber(msg)
		if err != nil {
			return 0, err
		}
		if ok {
			return n, nil
		}
		p.Println(Red(missing))
	}
}

// OptionalNumber prompts until the answer is blank or a run of digits.
// ok is false when the answer was blank.
func (p *Prompter) OptionalNumber(msg string) (int, bool, error) {
	for {
		answer, err := p.Line(msg)
		if err != nil {
			return 0, false, err
		}
		if answer == "" {
			return 0, false, nil
		}
		if !IsDigits(answer) {
			p.Println(Red("Please enter digits only."))
			continue
		}
		n, convErr := strconv.Atoi(answer)
		if convErr != nil {
			p.Println(Red("That number is too large."))
			continue
		}
		return n, true, nil
	}
}

// Amount prompts until the answer is a decimal amount such as "20000" or
// "19999.99".
func (p *Prompter) Amount(msg string) (float64, error) {
	for {
		answer, err := p.Line(msg)
		if err != nil {
			return 0, err
		}
		if !IsAmount(answer) {
			p.Println(Red("Invalid amount format."))
			continue
		}
		v, err := strconv.ParseFloat(answer, 64)
		if err != nil {
			p.Println(Red("Invalid amount format."))
			continue
		}
		return v, nil
	}
}

// Confirm prompts for a yes/no answer. Anything starting with y or Y is yes.
func (p *Prompter) Confirm(msg string) (bool, error) {
	answer, err := p.Line(msg)
	if err != nil {
		return false, err
	}
	return answer != "" && (answer[0] == 'y' || answer[0] == 'Y'), nil
}

// Pause waits for the user to press Enter.
func (p *Prompter) Pause() error {
	_, err := p.Line("Press Enter to continue...\n")
	return err
}

// IsDigits reports whether s is non-empty and made only of ASCII digits.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// IsAmount reports whether s is made of ASCII digits with at most one
// decimal point and at least one digit.
func IsAmount(s string) bool {
	digits := 0
	dotSeen := false
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '.':
			if dotSeen {
				return false
			}
			dotSeen = true
		case s[i] >= '0' && s[i] <= '9':
			digits++
		default:
			return false
		}
	}
	return digits > 0
}
