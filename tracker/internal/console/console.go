package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bloomnest/bloom/tracker/internal/session"
)

const prompt = "bloom> "

// Console reads commands from in and writes responses to out.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
	s   *session.Session
}

// New returns a Console over in and out.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewScanner(in), out: out}
}

// PromptLogin asks for the user's name and role.
// It returns io.ErrUnexpectedEOF if the input ends first.
func (c *Console) PromptLogin() (session.LoginRequest, error) {
	c.printf("Bloom - clinical pregnancy companion\n")
	name, err := c.ask("Full name: ")
	if err != nil {
		return session.LoginRequest{}, err
	}
	role, err := c.ask("I am a (patient/doctor): ")
	if err != nil {
		return session.LoginRequest{}, err
	}
	return session.LoginRequest{Name: name, Role: role}, nil
}

func (c *Console) ask(q string) (string, error) {
	c.printf("%s", q)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// Run serves commands for s until logout, end of input or ctx is cancelled.
// It does not close s.
func (c *Console) Run(ctx context.Context, s *session.Session) error {
	c.s = s
	c.printf("Welcome, %s (%s). Type help for commands.\n", s.User, s.Role)
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		c.printf("%s", prompt)
		if !c.in.Scan() {
			c.printf("\n")
			return c.in.Err()
		}
		quit, err := c.Exec(c.in.Text())
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// errOutput wraps failures to write to the console output.
var errOutput = errors.New("console: write output")

// Exec runs one command line. quit is true for logout.
func (c *Console) Exec(line string) (quit bool, err error) {
	cmd, args, _ := strings.Cut(strings.TrimSpace(line), " ")
	args = strings.TrimSpace(args)

	switch strings.ToLower(cmd) {
	case "":
		return false, nil
	case "help", "?":
		c.help()
	case "lmp":
		c.setLMP(args)
	case "add":
		c.add(args)
	case "dashboard", "dash":
		c.dashboard()
	case "history":
		err = c.history()
	case "export":
		err = c.export()
	case "review":
		c.review()
	case "logout", "quit", "exit":
		c.printf("Goodbye, %s.\n", c.s.User)
		return true, nil
	default:
		c.printf("Unknown command %q. Type help for commands.\n", cmd)
	}
	if err != nil {
		return false, fmt.Errorf("%w: %v", errOutput, err)
	}
	return false, nil
}

func (c *Console) help() {
	c.printf(`Commands:
  lmp YYYY-MM-DD                  set the last menstrual period
  add <weight>, <bp>, <glucose>   record a reading, e.g. add 65.5, 120/80, 95
  dashboard                       week, milestone, latest reading and alerts
  history                         all readings as a table
  export                          all readings as CSV
  review                          readings needing clinical review (doctors)
  logout                          end the session
`)
}

func (c *Console) printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}
