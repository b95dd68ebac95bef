package ports

import "context"

// Console is the interaction capability a session runs against.
// Implementations own all presentation concerns (styling, rendering, signal
// handling); the engine only sequences calls against this interface.
type Console interface {
	// Prompt presents a message and blocks until a full line of input is
	// available. The returned line has its trailing newline removed and is
	// otherwise untrimmed; whitespace handling is the caller's decision.
	Prompt(ctx context.Context, message string) (string, error)

	// Display prints an informational message.
	Display(message string)

	// DisplayError prints a validation or failure message in an
	// attention-drawing form.
	DisplayError(message string)

	// Close releases any resources held by the console. A closed console
	// rejects further prompts.
	Close() error
}
