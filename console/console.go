package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"simpledb/internal/commands"
	"simpledb/internal/config"
	"simpledb/internal/dbmanager"
	"simpledb/internal/logger"
	"simpledb/internal/parser"

	"github.com/google/uuid"
)

const (
	welcomeLine = "Welcome to SimpleDatabase"
	goodbyeLine = "Goodbye!"
)

// Init runs one session on stdin/stdout with the loaded configuration until
// END, end of input, or SIGINT/SIGTERM.
func Init() error {
	slog.SetDefault(logger.New())

	cfg := config.Config
	if cfg == nil {
		cfg = config.Default()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go handleShutdown(ctx, cancel)

	dm := dbmanager.NewDBManager(dbmanager.WithStrictCommit(cfg.StrictCommit))
	session := NewSession(dm, os.Stdin, os.Stdout, WithPrompt(cfg.Prompt), WithBanner(cfg.Banner))

	err := session.Run(ctx)
	slog.Info("Session stopped", "sessionId", session.Id())
	return err
}

func handleShutdown(ctx context.Context, contextCancel context.CancelFunc) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sig)

	select {
	case <-sig:
		slog.Info("Received shutdown signal")
		contextCancel()
	case <-ctx.Done():
	}
}

// Session reads commands line by line and writes each reply on its own line.
type Session struct {
	id     string
	dm     *dbmanager.DBManager
	parser parser.Parser
	in     io.Reader
	out    io.Writer
	prompt string
	banner bool
}

type SessionOption func(*Session)

func WithPrompt(prompt string) SessionOption {
	return func(s *Session) {
		s.prompt = prompt
	}
}

func WithBanner(banner bool) SessionOption {
	return func(s *Session) {
		s.banner = banner
	}
}

func NewSession(dm *dbmanager.DBManager, in io.Reader, out io.Writer, opts ...SessionOption) *Session {
	s := &Session{
		id:     uuid.NewString(),
		dm:     dm,
		parser: parser.NewStringParser(),
		in:     in,
		out:    out,
		banner: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) Id() string {
	return s.id
}

// Run processes input until END, end of input, or ctx is cancelled.
// Only a failure to read input is returned as an error.
func (s *Session) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go s.readLines(ctx, lines, readErr)

	slog.Info("Session started", "sessionId", s.id)
	if s.banner {
		s.writeLine(welcomeLine)
	}
	defer func() {
		if s.banner {
			s.writeLine(goodbyeLine)
		}
	}()

	for !s.dm.Ended() {
		if s.prompt != "" {
			s.write(s.prompt)
		}

		select {
		case <-ctx.Done():
			slog.Info("Session interrupted", "sessionId", s.id)
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					slog.Error("Failed to read input", "sessionId", s.id, "error", err)
					return fmt.Errorf("read input: %w", err)
				default:
					slog.Debug("End of input", "sessionId", s.id)
					return nil
				}
			}
			s.execute(line)
		}
	}

	return nil
}

func (s *Session) readLines(ctx context.Context, lines chan<- string, readErr chan<- error) {
	defer close(lines)

	reader := bufio.NewReader(s.in)
	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			readErr <- err
			return
		}
		if err != nil && line == "" {
			return
		}

		select {
		case lines <- strings.TrimRight(line, "\r\n"):
		case <-ctx.Done():
			return
		}

		if err != nil {
			return
		}
	}
}

func (s *Session) execute(line string) {
	cmd, err := s.parser.Parse([]byte(line))
	if err != nil {
		s.writeLine(err.Error())
		return
	}
	cmd.SessionId = s.id

	res, err := commands.Dispatch(s.dm, cmd)
	if err != nil {
		s.writeLine(err.Error())
		return
	}
	if res != nil {
		s.writeLine(string(res))
	}
}

func (s *Session) write(text string) {
	if _, err := io.WriteString(s.out, text); err != nil {
		slog.Error("Failed to write to output", "sessionId", s.id, "error", err)
	}
}

func (s *Session) writeLine(text string) {
	s.write(text + "\n")
}
