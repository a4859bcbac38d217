package cli

import "hotel_desk/internal/domain"

func (m *Menu) roomMenu() error {
	for {
		opt, err := m.choose("ROOMS",
			"All rooms", "Find room by number", "Rooms by type", "Rooms by status", "Summary", "Back")
		if err != nil {
			return err
		}
		switch opt {
		case 1:
			m.println("\nALL ROOMS")
			m.listRooms(m.rooms.All(), "No rooms.")
		case 2:
			err = m.roomByNumber()
		case 3:
			err = m.roomsByType()
		case 4:
			err = m.roomsByStatus()
		case 5:
			m.roomSummary()
		case 6:
			return nil
		default:
			m.println("Invalid option, try again.")
		}
		if err != nil {
			return err
		}
	}
}

func (m *Menu) listRooms(rs []domain.Room, empty string) {
	if len(rs) == 0 {
		m.println(empty)
		return
	}
	for _, r := range rs {
		m.println(formatRoom(r))
	}
}

func (m *Menu) roomByNumber() error {
	n, err := m.number("Room number: ")
	if err != nil {
		return err
	}
	room, ok := m.rooms.ByNumber(n)
	if !ok {
		m.println("Room not found.")
		return nil
	}
	m.println(formatRoom(room))
	for _, r := range m.desk.ByRoom(n) {
		m.println(formatReservation(r, m.clientName(r.ClientID)))
	}
	return nil
}

func (m *Menu) roomsByType() error {
	opts := make([]string, len(domain.RoomTypes))
	for i, t := range domain.RoomTypes {
		opts[i] = t.String()
	}
	opt, err := m.choose("ROOM TYPES", opts...)
	if err != nil {
		return err
	}
	if opt < 1 || opt > len(domain.RoomTypes) {
		m.println("Invalid option.")
		return nil
	}
	t := domain.RoomTypes[opt-1]
	m.printf("\nROOMS OF TYPE %s\n", t)
	m.listRooms(m.rooms.ByType(t), "No rooms of this type.")
	return nil
}

func (m *Menu) roomsByStatus() error {
	opts := make([]string, len(domain.RoomStatuses))
	for i, s := range domain.RoomStatuses {
		opts[i] = s.String()
	}
	opt, err := m.choose("ROOM STATUSES", opts...)
	if err != nil {
		return err
	}
	if opt < 1 || opt > len(domain.RoomStatuses) {
		m.println("Invalid option.")
		return nil
	}
	s := domain.RoomStatuses[opt-1]
	m.printf("\nROOMS %s\n", s)
	m.listRooms(m.rooms.ByStatus(s), "No rooms in this status.")
	return nil
}

func (m *Menu) roomSummary() {
	m.println("\nROOM SUMMARY")
	m.println("============")
	for _, floor := range m.rooms.Floors() {
		if len(floor) == 0 {
			continue
		}
		m.printf("\nFloor %d:\n", floor[0].Floor())
		for _, r := range floor {
			m.println(formatRoom(r))
		}
	}
	counts := m.rooms.Counts()
	m.println("\nTotals:")
	for _, s := range domain.RoomStatuses {
		m.printf("- %s: %d\n", s, counts[s])
	}
}
