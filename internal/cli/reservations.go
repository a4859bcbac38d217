package cli

import (
	"context"

	"hotel_desk/internal/domain"
)

func (m *Menu) reservationMenu(ctx context.Context) error {
	for {
		opt, err := m.choose("RESERVATIONS",
			"All reservations", "New reservation", "Cancel reservation", "Find reservation by ID",
			"Check in", "Check out", "Back")
		if err != nil {
			return err
		}
		switch opt {
		case 1:
			m.listReservations()
		case 2:
			err = m.newReservation(ctx)
		case 3:
			err = m.transition(ctx, "cancel reservation", "Reservation cancelled.", m.desk.Cancel)
		case 4:
			err = m.findReservation()
		case 5:
			err = m.transition(ctx, "check in", "Check-in done.", m.desk.CheckIn)
		case 6:
			err = m.transition(ctx, "check out", "Check-out done.", m.desk.CheckOut)
		case 7:
			return nil
		default:
			m.println("Invalid option, try again.")
		}
		if err != nil {
			return err
		}
	}
}

func (m *Menu) listReservations() {
	m.println("\nALL RESERVATIONS")
	rs := m.desk.All()
	if len(rs) == 0 {
		m.println("No reservations.")
		return
	}
	for _, r := range rs {
		m.println("-------------------------------")
		m.println(formatReservation(r, m.clientName(r.ClientID)))
	}
}

func (m *Menu) newReservation(ctx context.Context) error {
	m.println("\nNEW RESERVATION")
	m.println("Clients:")
	if !m.listClients() {
		m.println("Register a client first.")
		return nil
	}
	clientID, err := m.line("Client ID: ")
	if err != nil {
		return err
	}

	m.println("\nAvailable rooms:")
	available := m.rooms.ByStatus(domain.RoomAvailable)
	if len(available) == 0 {
		m.println("No rooms available.")
		return nil
	}
	m.listRooms(available, "")

	room, err := m.number("Room number: ")
	if err != nil {
		return err
	}
	in, err := m.date("Check-in date (dd/mm/yyyy): ")
	if err != nil {
		return err
	}
	out, err := m.date("Check-out date (dd/mm/yyyy): ")
	if err != nil {
		return err
	}

	r, err := m.desk.Reserve(ctx, clientID, room, in, out)
	if err != nil {
		m.fail("create reservation", err)
		return nil
	}
	m.println("Reservation created:")
	m.println(formatReservation(r, m.clientName(r.ClientID)))
	return nil
}

func (m *Menu) findReservation() error {
	id, err := m.line("Reservation ID: ")
	if err != nil {
		return err
	}
	r, ok := m.desk.Reservation(id)
	if !ok {
		m.println("Reservation not found.")
		return nil
	}
	m.println(formatReservation(r, m.clientName(r.ClientID)))
	return nil
}

// transition asks for a reservation id and applies one lifecycle step to it.
func (m *Menu) transition(ctx context.Context, action, done string, step func(context.Context, string) (domain.Reservation, error)) error {
	id, err := m.line("Reservation ID: ")
	if err != nil {
		return err
	}
	if _, err := step(ctx, id); err != nil {
		m.fail(action, err)
		return nil
	}
	m.println(done)
	return nil
}
