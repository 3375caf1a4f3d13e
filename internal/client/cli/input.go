package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/dmitrijs2005/saludconecta/internal/common"
	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The trailing newline is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword prints a prompt to w and reads a password from fd without
// echo. A newline is printed after the read to keep the UI tidy.
//
// The returned byte slice should be wiped by the caller when no longer needed.
func GetPassword(w io.Writer, fd int, prompt string) ([]byte, error) {
	if _, err := fmt.Fprint(w, prompt+": "); err != nil {
		return nil, err
	}
	pw, err := readPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

type inputRequest struct {
	prompt string
	secret bool
}

type inputLine struct {
	text string
	err  error
}

// lineReader reads one line each time the event loop asks for one, so the
// loop decides when the terminal is waiting for the user and whether the
// next line is a secret.
type lineReader struct {
	reader   *bufio.Reader
	out      io.Writer
	fd       int
	terminal bool

	requests chan inputRequest
	lines    chan inputLine
}

func newLineReader(in io.Reader, out io.Writer) *lineReader {
	r := &lineReader{
		reader:   bufio.NewReader(in),
		out:      out,
		fd:       -1,
		requests: make(chan inputRequest, 1),
		lines:    make(chan inputLine, 1),
	}
	if f, ok := in.(*os.File); ok {
		r.fd = int(f.Fd())
		r.terminal = isTerminal(r.fd)
	}
	return r
}

// request asks for the next line. At most one request is outstanding.
func (r *lineReader) request(prompt string, secret bool) {
	r.requests <- inputRequest{prompt: prompt, secret: secret}
}

// run serves requests until ctx is done. A read blocked on the terminal
// is abandoned, not interrupted.
func (r *lineReader) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case req := <-r.requests:
			text, err := r.read(req)
			select {
			case r.lines <- inputLine{text: text, err: err}:
			case <-ctx.Done():
				return
			}
		}
	}
}

func (r *lineReader) read(req inputRequest) (string, error) {
	if req.secret && r.terminal {
		pw, err := GetPassword(r.out, r.fd, req.prompt)
		if err != nil {
			return "", err
		}
		defer common.WipeByteArray(pw)
		return string(pw), nil
	}
	return GetSimpleText(r.reader, req.prompt, r.out)
}

// syncWriter serializes writes from the event loop, the line reader and
// the notifier.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func newSyncWriter(w io.Writer) *syncWriter {
	if sw, ok := w.(*syncWriter); ok {
		return sw
	}
	return &syncWriter{w: w}
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}
