package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/notargets/advect1d/utils"
)

// ErrNoInput is returned when the input ends before a valid value was read.
var ErrNoInput = errors.New("console: no more input")

const retryPrompt = "Invalid input. Try again: "

// Reader prompts on Out and reads one whitespace separated token at a time
// from In, skipping the rest of a line after a rejected token.
type Reader struct {
	in  *bufio.Reader
	Out io.Writer
}

func NewReader(in io.Reader, out io.Writer) *Reader {
	return &Reader{in: bufio.NewReader(in), Out: out}
}

// GetInt prompts for name until a positive integer is entered.
func (r *Reader) GetInt(name string) (num int, err error) {
	fmt.Fprintf(r.Out, "Please enter a positive integer value for %s: ", name)
	err = r.retry(func(tok string) bool {
		var perr error
		num, perr = strconv.Atoi(tok)
		return perr == nil && num > 0
	})
	return
}

// GetFloat prompts for name until a positive number is entered.
func (r *Reader) GetFloat(name string) (num float64, err error) {
	fmt.Fprintf(r.Out, "Please enter a positive double value for %s: ", name)
	err = r.retry(func(tok string) bool {
		var perr error
		num, perr = strconv.ParseFloat(tok, 64)
		return perr == nil && num > 0 && utils.IsFinite(num)
	})
	return
}

func (r *Reader) retry(accept func(tok string) bool) error {
	for {
		tok, eol, err := r.token()
		if err != nil {
			return err
		}
		if accept(tok) {
			return nil
		}
		if !eol {
			if err = r.discardLine(); err != nil && !errors.Is(err, ErrNoInput) {
				return err
			}
		}
		fmt.Fprint(r.Out, retryPrompt)
	}
}

// token skips leading whitespace including newlines and returns the next
// token, reporting whether it ended at a line break.
func (r *Reader) token() (tok string, eol bool, err error) {
	var sb strings.Builder
	for {
		var c byte
		if c, err = r.in.ReadByte(); err != nil {
			if errors.Is(err, io.EOF) {
				if sb.Len() > 0 {
					return sb.String(), true, nil
				}
				return "", false, ErrNoInput
			}
			return
		}
		switch c {
		case ' ', '\t', '\r', '\n':
			if sb.Len() > 0 {
				return sb.String(), c == '\n', nil
			}
		default:
			sb.WriteByte(c)
		}
	}
}

func (r *Reader) discardLine() error {
	if _, err := r.in.ReadString('\n'); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrNoInput
		}
		return err
	}
	return nil
}
