package cli

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"

	"github.com/gg582/hanjamo/internal/config"
	"github.com/gg582/hanjamo/internal/logging"
	"github.com/gg582/hanjamo/internal/server"
)

const dialTimeout = 500 * time.Millisecond

// app is the state shared by every subcommand of one invocation.
type app struct {
	debug      bool
	configPath string
	encoding   string
	color      string
	remote     bool
	socket     string

	cfg    config.Config
	logger *log.Logger

	client   *server.Client
	fallback bool
}

func (a *app) teardown() {
	if a.client != nil {
		_ = a.client.Close()
		a.client = nil
	}
}

// transcode runs op locally, or through the server when --remote is set.
// A server that cannot be reached is reported once, then bypassed.
func (a *app) transcode(op, text string) (string, error) {
	if a.remote && !a.fallback {
		if a.client == nil {
			client, err := server.Dial(a.socket, dialTimeout)
			if err != nil {
				a.useLocal(err)
				return server.Transcode(op, text)
			}
			a.client = client
		}
		result, err := a.client.Transcode(op, text)
		var remote *server.RemoteError
		switch {
		case err == nil:
			return result, nil
		case errors.As(err, &remote):
			return "", err
		default:
			a.useLocal(err)
		}
	}
	return server.Transcode(op, text)
}

func (a *app) useLocal(err error) {
	a.fallback = true
	a.logger.Warn("falling back to local conversion", logging.FieldSocket, a.socket, logging.FieldError, err)
	a.teardown()
}

// input wraps r with the decoder for --encoding.
func (a *app) input(r io.Reader) io.Reader {
	if a.encoding == config.EncodingEUCKR {
		return transform.NewReader(r, korean.EUCKR.NewDecoder())
	}
	return r
}

// output wraps w with the encoder for --encoding. Runes EUC-KR cannot
// represent, positional jamo among them, are substituted. The returned
// closer flushes the encoder.
func (a *app) output(w io.Writer) (io.Writer, func() error) {
	if a.encoding == config.EncodingEUCKR {
		tw := transform.NewWriter(w, encoding.ReplaceUnsupported(korean.EUCKR.NewEncoder()))
		return tw, tw.Close
	}
	return w, func() error { return nil }
}

// lines yields the text to convert: the joined arguments, or stdin line by
// line.
func (a *app) lines(cmd *cobra.Command, args []string, fn func(string) error) error {
	if len(args) > 0 {
		return fn(strings.Join(args, " "))
	}
	scanner := bufio.NewScanner(a.input(cmd.InOrStdin()))
	scanner.Buffer(make([]byte, 0, 4096), 1024*1024)
	for scanner.Scan() {
		if err := fn(scanner.Text()); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// withOutput runs fn against the encoded form of w and flushes it.
func (a *app) withOutput(w io.Writer, fn func(io.Writer) error) error {
	out, closeOut := a.output(w)
	err := fn(out)
	if closeErr := closeOut(); err == nil {
		err = closeErr
	}
	return err
}

// runOp converts every input line with op and writes one line per result.
func (a *app) runOp(cmd *cobra.Command, args []string, op string) error {
	return a.withOutput(cmd.OutOrStdout(), func(out io.Writer) error {
		writer := bufio.NewWriter(out)
		err := a.lines(cmd, args, func(line string) error {
			converted, err := a.transcode(op, line)
			if err != nil {
				return err
			}
			a.logger.Debug("converted", logging.FieldOp, op, logging.FieldInput, line, logging.FieldOutput, converted)
			if _, err := writer.WriteString(converted); err != nil {
				return err
			}
			return writer.WriteByte('\n')
		})
		if flushErr := writer.Flush(); err == nil {
			err = flushErr
		}
		return err
	})
}
