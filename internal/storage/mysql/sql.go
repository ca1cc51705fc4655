package mysql

const insertUserSQL = `
INSERT INTO users (id, name, email, password_hash, role, created_at)
VALUES (?, ?, ?, ?, ?, ?)
`

const insertPartnerSQL = `
INSERT INTO partners
  (id, user_id, business_name, type, city, whatsapp, instagram, website, description, status)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

// One subscription per user; a plan change rewrites it in place.
const upsertSubscriptionSQL = `
INSERT INTO subscriptions (id, user_id, plan, status, start_date, end_date)
VALUES (?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  plan       = VALUES(plan),
  status     = VALUES(status),
  start_date = VALUES(start_date),
  end_date   = VALUES(end_date)
`

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

const userColumns = `id, name, email, password_hash, role, created_at`

const userByEmailSQL = `SELECT ` + userColumns + ` FROM users WHERE email = ?`

const userByIDSQL = `SELECT ` + userColumns + ` FROM users WHERE id = ?`

const partnerByUserSQL = `
SELECT id, user_id, business_name, type, city, whatsapp, instagram, website, description, status
FROM partners
WHERE user_id = ?
`

const subscriptionByUserSQL = `
SELECT id, user_id, plan, status, start_date, end_date
FROM subscriptions
WHERE user_id = ?
`
