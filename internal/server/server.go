package server

import (
	"bufio"
	"errors"
	"fmt"
	"net"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/gg582/hanjamo/internal/common"
	"github.com/gg582/hanjamo/internal/logging"
)

const (
	statusOK  = "ok"
	statusErr = "err"

	maxLine = 1024 * 1024
)

// Server answers one request per line: "op<TAB>text" is answered with
// "ok<TAB>result" or "err<TAB>message".
type Server struct {
	listener net.Listener
	socket   string
	logger   *log.Logger
	errCh    chan error
}

// Start listens on the unix socket at path, replacing a stale socket file.
func Start(path string, logger *log.Logger) (*Server, error) {
	if path == "" {
		return nil, errors.New("server: empty socket path")
	}
	if logger == nil {
		logger = logging.Default()
	}
	if err := common.EnsureSocketDir(path); err != nil {
		return nil, fmt.Errorf("create socket dir: %w", err)
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	listener, err := net.Listen("unix", path)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", path, err)
	}
	if err := os.Chmod(path, 0o660); err != nil && !errors.Is(err, os.ErrNotExist) {
		listener.Close()
		_ = os.Remove(path)
		return nil, fmt.Errorf("chmod socket: %w", err)
	}

	srv := &Server{
		listener: listener,
		socket:   path,
		logger:   logger.With(logging.FieldSocket, path),
		errCh:    make(chan error, 1),
	}
	go func() {
		srv.errCh <- srv.serve()
		close(srv.errCh)
	}()
	srv.logger.Info("listening")
	return srv, nil
}

func (s *Server) Socket() string { return s.socket }

// Close stops accepting, waits for the accept loop and removes the socket.
func (s *Server) Close() {
	if s == nil {
		return
	}
	s.listener.Close()
	for range s.errCh {
	}
	_ = os.Remove(s.socket)
}

// Err delivers the accept loop's result once it stops.
func (s *Server) Err() <-chan error {
	if s == nil {
		return nil
	}
	return s.errCh
}

func (s *Server) serve() error {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			return err
		}
		go func(c net.Conn) {
			defer c.Close()
			if err := s.handle(c); err != nil {
				s.logger.Error("connection failed", logging.FieldError, err)
			}
		}(conn)
	}
}

func (s *Server) handle(conn net.Conn) error {
	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 0, 4096), maxLine)
	writer := bufio.NewWriter(conn)
	for scanner.Scan() {
		op, text, found := strings.Cut(scanner.Text(), "\t")
		var response string
		if !found {
			response = statusErr + "\tmissing tab between op and text"
		} else if result, err := Transcode(op, text); err != nil {
			s.logger.Debug("request rejected", logging.FieldOp, op, logging.FieldError, err)
			response = statusErr + "\t" + oneLine(err.Error())
		} else {
			s.logger.Debug("request", logging.FieldOp, op, logging.FieldInput, text, logging.FieldOutput, result)
			response = statusOK + "\t" + result
		}
		if _, err := writer.WriteString(response); err != nil {
			return err
		}
		if err := writer.WriteByte('\n'); err != nil {
			return err
		}
		if err := writer.Flush(); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, net.ErrClosed) {
			return nil
		}
		return err
	}
	return nil
}

func oneLine(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}
