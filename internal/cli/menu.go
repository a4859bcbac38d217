package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"hotel_desk/internal/app"
	"hotel_desk/internal/domain"
)

const dateLayout = "02/01/2006"

// errQuit means stdin was closed; the menu treats it as a normal exit.
var errQuit = errors.New("input closed")

// Menu is the interactive front desk. It only talks to the directories and
// the FrontDesk, never to the engine directly.
type Menu struct {
	in      *bufio.Scanner
	out     io.Writer
	rooms   *app.RoomDirectory
	clients *app.ClientDirectory
	desk    *app.FrontDesk
}

func New(in io.Reader, out io.Writer, rooms *app.RoomDirectory, clients *app.ClientDirectory, desk *app.FrontDesk) *Menu {
	return &Menu{in: bufio.NewScanner(in), out: out, rooms: rooms, clients: clients, desk: desk}
}

// Run drives the main menu until the user exits, input ends or ctx is done.
func (m *Menu) Run(ctx context.Context) error {
	m.println("HOTEL FRONT DESK")
	m.println("================")

	for ctx.Err() == nil {
		opt, err := m.choose("MAIN MENU", "Rooms", "Clients", "Reservations", "Exit")
		if err != nil {
			return quiet(err)
		}
		switch opt {
		case 1:
			err = m.roomMenu()
		case 2:
			err = m.clientMenu()
		case 3:
			err = m.reservationMenu(ctx)
		case 4:
			m.println("Goodbye.")
			return nil
		default:
			m.println("Invalid option, try again.")
		}
		if err != nil {
			return quiet(err)
		}
	}
	return nil
}

func quiet(err error) error {
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}

// choose prints a numbered list and reads the selection.
func (m *Menu) choose(title string, options ...string) (int, error) {
	m.println()
	m.println(title)
	for i, o := range options {
		m.printf("%d. %s\n", i+1, o)
	}
	return m.number("Select an option: ")
}

func (m *Menu) line(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(m.out, prompt)
	}
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", errQuit
	}
	return strings.TrimSpace(m.in.Text()), nil
}

func (m *Menu) number(prompt string) (int, error) {
	for {
		s, err := m.line(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(s)
		if err == nil {
			return n, nil
		}
		m.println("Please enter a valid number.")
	}
}

func (m *Menu) date(prompt string) (time.Time, error) {
	for {
		s, err := m.line(prompt)
		if err != nil {
			return time.Time{}, err
		}
		d, err := time.Parse(dateLayout, s)
		if err == nil {
			return d, nil
		}
		m.println("Wrong date format, use dd/mm/yyyy.")
	}
}

var kindLabels = map[string]string{
	"invalid_argument": "invalid input",
	"not_found":        "not found",
	"unavailable":      "unavailable",
	"invalid_state":    "not allowed now",
}

func (m *Menu) fail(action string, err error) {
	label, ok := kindLabels[domain.KindOf(err)]
	if !ok {
		label = "internal"
	}
	m.printf("Could not %s (%s): %v\n", action, label, err)
}

func (m *Menu) println(a ...any) { fmt.Fprintln(m.out, a...) }
func (m *Menu) printf(format string, a ...any) { fmt.Fprintf(m.out, format, a...) }
