package iocli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

type Stdio struct {
	in  *bufio.Reader
	out io.Writer
	// дескрипторы ввода и вывода для проверки терминала
	inFd  int
	outFd int
}

func NewStdio() IO {
	return &Stdio{
		in:    bufio.NewReader(os.Stdin),
		out:   os.Stdout,
		inFd:  int(os.Stdin.Fd()),
		outFd: int(os.Stdout.Fd()),
	}
}

func (s *Stdio) Println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

func (s *Stdio) Printf(format string, a ...any) {
	fmt.Fprintf(s.out, format, a...)
}

// ReadInput печатает приглашение и читает строку ввода.
// io.EOF возвращается только когда ввод исчерпан полностью.
func (s *Stdio) ReadInput(prompt string) (string, error) {
	s.Printf("%s", prompt)
	input, err := s.in.ReadString('\n')
	if err != nil && (err != io.EOF || input == "") {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

func (s *Stdio) Write(p []byte) (n int, err error) {
	return s.out.Write(p)
}

// IsTerminal сообщает, что и ввод, и вывод подключены к терминалу.
// Иначе команды переходят в режим для скриптов: без приглашений
// и выравнивания таблиц.
func (s *Stdio) IsTerminal() bool {
	return term.IsTerminal(s.inFd) && term.IsTerminal(s.outFd)
}
