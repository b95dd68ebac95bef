package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// DefaultFarewell is printed when the user interrupts a running session.
const DefaultFarewell = "Goodbye! Thanks for your time."

// errorColor styles DisplayError output on terminals that support it.
const errorColor = "#f87171"

// Console implements ports.Console for standard terminal IO. A pump
// goroutine owns the blocking reads so a pending prompt can be preempted by
// signals and context cancellation.
type Console struct {
	source   io.Reader
	reader   *bufio.Reader
	writer   io.Writer
	renderer func(string) (string, error)
	profile  termenv.Profile
	farewell string
	exit     func(int)

	inputChan chan inputResult
	sigChan   chan os.Signal
	startOnce sync.Once
	closeOnce sync.Once
}

type inputResult struct {
	text string
	err  error
}

// Option defines configuration for Console.
type Option func(*Console)

// WithInput overrides the input stream (stdin by default).
func WithInput(r io.Reader) Option {
	return func(c *Console) {
		c.source = r
	}
}

// WithOutput overrides the output stream (stdout by default).
func WithOutput(w io.Writer) Option {
	return func(c *Console) {
		c.writer = w
	}
}

// WithRenderer configures a content renderer applied to displayed messages.
func WithRenderer(renderer func(string) (string, error)) Option {
	return func(c *Console) {
		c.renderer = renderer
	}
}

// WithFarewell overrides the message printed on interrupt.
func WithFarewell(message string) Option {
	return func(c *Console) {
		c.farewell = message
	}
}

// WithExitFunc overrides os.Exit, for tests.
func WithExitFunc(exit func(int)) Option {
	return func(c *Console) {
		c.exit = exit
	}
}

// New creates a Console for standard terminal IO.
func New(opts ...Option) *Console {
	c := &Console{
		farewell: DefaultFarewell,
		exit:     os.Exit,
		sigChan:  make(chan os.Signal, 1),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.source == nil {
		c.source = os.Stdin
	}
	if c.writer == nil {
		c.writer = os.Stdout
	}
	c.reader = bufio.NewReader(c.source)
	c.profile = outputProfile(c.writer)

	return c
}

// outputProfile picks the color profile for the writer. Anything that is not
// a real terminal gets plain ASCII so piped output stays clean.
func outputProfile(w io.Writer) termenv.Profile {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return termenv.ColorProfile()
	}
	return termenv.Ascii
}

func (c *Console) initPump() {
	c.startOnce.Do(func() {
		c.inputChan = make(chan inputResult)
		signal.Notify(c.sigChan, os.Interrupt, syscall.SIGTERM)
		go c.pump()
	})
}

func (c *Console) pump() {
	for {
		text, err := c.reader.ReadString('\n')

		// If we got text (even with EOF), send it
		if text != "" {
			c.inputChan <- inputResult{text: text}
		}

		if err != nil {
			if err == io.EOF {
				close(c.inputChan)
				return
			}
			c.inputChan <- inputResult{err: err}
			// Backoff for non-fatal errors to prevent CPU spikes on persistent failure
			time.Sleep(50 * time.Millisecond)
		}
	}
}

// Prompt displays the question and blocks until a full line arrives, the
// context is cancelled, or the user interrupts the process. The returned line
// has its trailing newline removed but is otherwise untouched.
func (c *Console) Prompt(ctx context.Context, message string) (string, error) {
	c.initPump()
	c.Display(message)

	for {
		fmt.Fprint(c.writer, "> ")

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case sig := <-c.sigChan:
			// With the default exit func nothing past this call runs; the
			// return below exists for tests that inject a recorder.
			c.handleInterrupt(sig)
			return "", context.Canceled
		case res, ok := <-c.inputChan:
			if !ok {
				return "", io.EOF
			}
			if res.err != nil {
				return "", res.err
			}
			line := strings.TrimRight(res.text, "\r\n")

			// Sanitize Input (Limit + Control Chars)
			clean, err := SanitizeInput(line)
			if err != nil {
				c.DisplayError(fmt.Sprintf("%v. Please try again.", err))
				continue
			}
			return clean, nil
		}
	}
}

// handleInterrupt runs the farewell sequence and terminates the process with
// exit code 0.
func (c *Console) handleInterrupt(sig os.Signal) {
	if sig == os.Interrupt {
		// Aesthetic: complete the pending prompt line the way the shell would.
		fmt.Fprintln(c.writer, "[CTRL+C]")
	} else {
		fmt.Fprintln(c.writer)
	}
	c.Display(c.farewell)
	_ = c.Close()
	c.exit(0)
}

// Display writes a message on its own line, passing it through the content
// renderer when one is configured.
func (c *Console) Display(message string) {
	output := message
	if c.renderer != nil {
		if rendered, err := c.renderer(message); err == nil {
			output = rendered
		}
	}
	fmt.Fprintln(c.writer, strings.TrimSpace(output))
}

// DisplayError writes a validation or system message, styled when the
// terminal supports color. Errors never pass through the renderer: they must
// come out exactly as given.
func (c *Console) DisplayError(message string) {
	styled := termenv.String(message).Foreground(c.profile.Color(errorColor))
	fmt.Fprintln(c.writer, styled)
}

// Close stops signal delivery. The pump goroutine cannot be unblocked from a
// pending stdin read portably; it exits with the process.
func (c *Console) Close() error {
	c.closeOnce.Do(func() {
		signal.Stop(c.sigChan)
	})
	return nil
}
