package server

import (
	"bufio"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"
)

// RemoteError is an "err" response from the server.
type RemoteError struct {
	Op      string
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote %s: %s", e.Op, e.Message)
}

// Client talks to a Server over one connection.
type Client struct {
	conn   net.Conn
	reader *bufio.Reader
}

func Dial(socketPath string, timeout time.Duration) (*Client, error) {
	conn, err := net.DialTimeout("unix", socketPath, timeout)
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn, reader: bufio.NewReader(conn)}, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}

// Transcode sends one request and waits for its answer. Text must fit on
// one line.
func (c *Client) Transcode(op, text string) (string, error) {
	if strings.ContainsAny(op, "\t\n") || strings.Contains(text, "\n") {
		return "", errors.New("server: op and text must be single-line")
	}
	if _, err := fmt.Fprintf(c.conn, "%s\t%s\n", op, text); err != nil {
		return "", err
	}
	response, err := c.reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	status, body, _ := strings.Cut(strings.TrimSuffix(response, "\n"), "\t")
	switch status {
	case statusOK:
		return body, nil
	case statusErr:
		return "", &RemoteError{Op: op, Message: body}
	default:
		return "", fmt.Errorf("server: malformed response %q", response)
	}
}
