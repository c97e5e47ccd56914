package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

// StdinPrompter asks for a responder nickname on the terminal. The read runs
// off the board loop; the completion callback re-enters it.
type StdinPrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewStdinPrompter(in io.Reader, out io.Writer) *StdinPrompter {
	return &StdinPrompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (p *StdinPrompter) RequestNickname(postID uuid.UUID, done func(nickname string, ok bool)) {
	go func() {
		fmt.Fprint(p.out, "Enter your nickname to respond: ")
		line, err := p.in.ReadString('\n')
		if err != nil {
			done("", false)
			return
		}
		done(strings.TrimSpace(line), true)
	}()
}
