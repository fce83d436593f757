// Package cli is the driving terminal adapter: a blocking, line-based menu
// that routes choices to the application services.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"weightlog/internal/app"
)

// ErrTooManyAttempts ends the program after repeated invalid weight entries.
var ErrTooManyAttempts = errors.New("too many attempts")

// DefaultMaxAttempts is the recorder's retry budget.
const DefaultMaxAttempts = 3

const menuText = `
What would you like to do?
1. Record your weight
2. View weight history
3. Set Weight Goal
4. View Goal/Target weight
5. End program
`

// Menu is the interactive loop for one user.
type Menu struct {
	user   string
	weight *app.WeightService
	goals  *app.GoalService
	charts *app.ChartsService

	in          *bufio.Reader
	out         io.Writer
	logger      *zap.Logger
	maxAttempts int
}

// Options tunes a Menu. Zero values select defaults.
type Options struct {
	MaxAttempts int
	Logger      *zap.Logger
}

// New creates a Menu reading choices from in and writing to out.
func New(user string, ws *app.WeightService, gs *app.GoalService, cs *app.ChartsService, in io.Reader, out io.Writer, opts Options) *Menu {
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = DefaultMaxAttempts
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Menu{
		user:        user,
		weight:      ws,
		goals:       gs,
		charts:      cs,
		in:          bufio.NewReader(in),
		out:         out,
		logger:      opts.Logger,
		maxAttempts: opts.MaxAttempts,
	}
}

// Run shows the menu until the user ends the program or input runs out.
// It returns ErrTooManyAttempts or domain.ErrLogNotFound on the abort paths.
func (m *Menu) Run(ctx context.Context) error {
	for {
		fmt.Fprint(m.out, menuText)
		action, err := m.readLine()
		if err != nil {
			return endOfInput(err)
		}
		m.logger.Debug("menu choice", zap.String("user", m.user), zap.String("action", action))

		switch action {
		case "1":
			err = m.recordWeight(ctx)
		case "2":
			err = m.viewHistory(ctx)
		case "3":
			err = m.setGoal(ctx)
		case "4":
			err = m.viewGoal(ctx)
		case "5":
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice. Please select from 1 to 5.")
		}
		if err != nil {
			return endOfInput(err)
		}
	}
}

// endOfInput turns a closed stdin into a normal exit.
func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// readLine returns the next trimmed line of any length, or io.EOF once
// input is exhausted. A final line without a newline is still returned.
func (m *Menu) readLine() (string, error) {
	line, err := m.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return trim(line), nil
}
