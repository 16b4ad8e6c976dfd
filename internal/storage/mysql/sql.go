package mysql

const upsertGuestSQL = `
INSERT INTO guests
  (id, name, room_number, profile_tags, check_in, check_out, active)
VALUES
  (?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  name         = VALUES(name),
  room_number  = VALUES(room_number),
  profile_tags = VALUES(profile_tags),
  check_in     = VALUES(check_in),
  check_out    = VALUES(check_out),
  active       = VALUES(active),
  updated_at   = CURRENT_TIMESTAMP
`

// A room can host only one active guest; check-in evicts the previous one.
const deactivateRoomSQL = `
UPDATE guests SET active = 0, updated_at = CURRENT_TIMESTAMP
WHERE room_number = ? AND id <> ? AND active = 1
`

const getGuestSQL = `
SELECT id, name, room_number, profile_tags, check_in, check_out, active
FROM guests
WHERE id = ?
`

const insertOrderSQL = `
INSERT INTO room_service_orders
  (flow_id, guest_id, room_number, items, notes, total, status, created_at)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?)
`

const orderExistsSQL = `SELECT 1 FROM room_service_orders WHERE flow_id = ?`

const getOrderByFlowSQL = `
SELECT id, flow_id, guest_id, room_number, items, notes, total, status, created_at
FROM room_service_orders
WHERE flow_id = ?
`

const insertTransportSQL = `
INSERT INTO transport_requests
  (flow_id, guest_id, pickup_at, destination, vehicle_type, passengers, status, created_at)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?)
`

const transportExistsSQL = `SELECT 1 FROM transport_requests WHERE flow_id = ?`
