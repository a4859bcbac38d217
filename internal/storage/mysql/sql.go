package mysql

const insertEventSQL = `
INSERT INTO reservation_events
  (kind, reservation_id, client_id, room_number, check_in, check_out, total_price, occurred_at)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?)
`

// Oldest first; id breaks ties between events recorded in the same second.
const listEventsSQL = `
SELECT kind, reservation_id, client_id, room_number, check_in, check_out, total_price, occurred_at
FROM reservation_events
WHERE reservation_id = ?
ORDER BY occurred_at, id
`
