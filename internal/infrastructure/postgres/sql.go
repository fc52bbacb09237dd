package postgres

const eventColumns = `
id, title, annotation, description, category_id, event_date, location_id,
paid, participant_limit, request_moderation, initiator_id, status,
created_on, published_on, views`

const insertEventSQL = `
INSERT INTO events (
  title, annotation, description, category_id, event_date, location_id,
  paid, participant_limit, request_moderation, initiator_id, status,
  created_on, published_on, views
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
RETURNING id
`

const getEventSQL = `
SELECT ` + eventColumns + `
FROM events WHERE id = $1
`

const getPublishedEventSQL = `
SELECT ` + eventColumns + `
FROM events WHERE id = $1 AND status = 'PUBLISHED'
`

const updateEventSQL = `
UPDATE events SET
  title=$2, annotation=$3, description=$4, category_id=$5, event_date=$6,
  location_id=$7, paid=$8, participant_limit=$9, request_moderation=$10,
  status=$11, published_on=$12
WHERE id=$1
`

const listEventsByInitiatorSQL = `
SELECT ` + eventColumns + `
FROM events
WHERE initiator_id = $1
ORDER BY id
LIMIT $2 OFFSET $3
`

const incrementViewsSQL = `
UPDATE events SET views = views + 1 WHERE id = $1
`

const lockEventSQL = `
SELECT id FROM events WHERE id = $1 FOR UPDATE
`

const requestColumns = `id, event_id, requester_id, status, created`

const insertRequestSQL = `
INSERT INTO requests (event_id, requester_id, status, created)
VALUES ($1,$2,$3,$4)
RETURNING id
`

const getRequestSQL = `
SELECT ` + requestColumns + `
FROM requests WHERE id = $1
`

const listRequestsByRequesterSQL = `
SELECT ` + requestColumns + `
FROM requests WHERE requester_id = $1
ORDER BY id
`

const listRequestsByEventSQL = `
SELECT ` + requestColumns + `
FROM requests WHERE event_id = $1
ORDER BY id
`

const updateRequestStatusSQL = `
UPDATE requests SET status=$2 WHERE id=$1
`

const hasActiveRequestSQL = `
SELECT EXISTS (
  SELECT 1 FROM requests
  WHERE event_id = $1 AND requester_id = $2 AND status <> 'CANCELED'
)
`

const countRequestsByStatusSQL = `
SELECT COUNT(*) FROM requests WHERE event_id = $1 AND status = $2
`

const findRequestsBatchSQL = `
SELECT ` + requestColumns + `
FROM requests WHERE id = ANY($1)
`

const rejectPendingByEventSQL = `
UPDATE requests SET status='REJECTED' WHERE event_id = $1 AND status='PENDING'
`

const getUserSQL = `
SELECT id, name, email FROM users WHERE id = $1
`

const userExistsSQL = `
SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)
`

const getCategorySQL = `
SELECT id, name FROM categories WHERE id = $1
`

const insertLocationSQL = `
INSERT INTO locations (lat, lon) VALUES ($1,$2) RETURNING id
`

const updateLocationSQL = `
UPDATE locations SET lat=$2, lon=$3 WHERE id=$1
`
