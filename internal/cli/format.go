package cli

import (
	"fmt"
	"strings"

	"hotel_desk/internal/domain"
)

func formatRoom(r domain.Room) string {
	return fmt.Sprintf("Room %d | %-10s | %3d EUR/night | %-9s | %s",
		r.Number, r.Type, r.NightlyRate(), r.Status, r.Description)
}

func formatClient(c domain.Client) string {
	return fmt.Sprintf("Client %s | %s | reservations: %d", c.ID, c.FullName, len(c.ReservationIDs))
}

func formatReservation(r domain.Reservation, clientName string) string {
	status := "confirmed"
	if r.Cancelled {
		status = "cancelled"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Reservation %s\n", r.ID)
	fmt.Fprintf(&b, "  Client:    %s (%s)\n", clientName, r.ClientID)
	fmt.Fprintf(&b, "  Room:      %d\n", r.RoomNumber)
	fmt.Fprintf(&b, "  Check-in:  %s\n", r.CheckIn.Format(dateLayout))
	fmt.Fprintf(&b, "  Check-out: %s (%d nights)\n", r.CheckOut.Format(dateLayout), r.Nights())
	fmt.Fprintf(&b, "  Total:     %d EUR\n", r.TotalPrice)
	fmt.Fprintf(&b, "  Status:    %s", status)
	return b.String()
}
