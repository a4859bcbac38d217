package cli

import (
	"fmt"

	"hotel_desk/internal/domain"
)

func (m *Menu) clientMenu() error {
	for {
		opt, err := m.choose("CLIENTS",
			"All clients", "Register client", "Find client by ID", "Find client by name",
			"Active reservations", "Reservation history", "Summary", "Back")
		if err != nil {
			return err
		}
		switch opt {
		case 1:
			m.println("\nALL CLIENTS")
			m.listClients()
		case 2:
			err = m.registerClient()
		case 3:
			err = m.findClient("Client ID: ", m.clients.ByID)
		case 4:
			err = m.findClient("Client name: ", m.clients.ByName)
		case 5:
			err = m.clientReservations("active", m.clients.ActiveReservations)
		case 6:
			err = m.clientReservations("past or cancelled", m.clients.ReservationHistory)
		case 7:
			m.clientSummary()
		case 8:
			return nil
		default:
			m.println("Invalid option, try again.")
		}
		if err != nil {
			return err
		}
	}
}

func (m *Menu) listClients() bool {
	cs := m.clients.All()
	if len(cs) == 0 {
		m.println("No clients registered.")
		return false
	}
	for _, c := range cs {
		m.println(formatClient(c))
	}
	return true
}

func (m *Menu) registerClient() error {
	name, err := m.line("Full name: ")
	if err != nil {
		return err
	}
	c, err := m.clients.Create(name)
	if err != nil {
		m.fail("register client", err)
		return nil
	}
	m.printf("Client registered. ID: %s\n", c.ID)
	return nil
}

func (m *Menu) findClient(prompt string, lookup func(string) (domain.Client, bool)) error {
	q, err := m.line(prompt)
	if err != nil {
		return err
	}
	c, ok := lookup(q)
	if !ok {
		m.println("Client not found.")
		return nil
	}
	m.println(formatClient(c))
	return nil
}

func (m *Menu) clientReservations(what string, list func(string) []domain.Reservation) error {
	id, err := m.line("Client ID: ")
	if err != nil {
		return err
	}
	rs := list(id)
	if len(rs) == 0 {
		m.printf("No %s reservations for this client.\n", what)
		return nil
	}
	name := m.clientName(id)
	for _, r := range rs {
		m.println("-------------------------------")
		m.println(formatReservation(r, name))
	}
	return nil
}

func (m *Menu) clientSummary() {
	m.println("\nCLIENT SUMMARY")
	m.println("==============")
	cs := m.clients.All()
	if len(cs) == 0 {
		m.println("No clients registered.")
		return
	}
	for _, c := range cs {
		m.println(formatClient(c))
		active := m.clients.ActiveReservations(c.ID)
		if len(active) == 0 {
			m.println("  No active reservations.")
			continue
		}
		for _, r := range active {
			m.printf("  - room %d, %s to %s\n", r.RoomNumber, r.CheckIn.Format(dateLayout), r.CheckOut.Format(dateLayout))
		}
	}
}

func (m *Menu) clientName(id string) string {
	if c, ok := m.clients.ByID(id); ok {
		return c.FullName
	}
	return fmt.Sprintf("unknown client %s", id)
}
