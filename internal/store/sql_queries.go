package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (username, password, first_name, last_name, phone)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING username, first_name, last_name, phone, join_at, last_login_at;`

	findUserByUsername = `SELECT username, password, first_name, last_name, phone, join_at, last_login_at
    FROM users
    WHERE username = $1;`

	updateLastLogin = `UPDATE users
    SET last_login_at = NOW()
    WHERE username = $1
    RETURNING last_login_at;`

	userExists = `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1);`

	createMessage = `INSERT INTO messages (from_username, to_username, body)
    VALUES ($1, $2, $3)
    RETURNING id, from_username, to_username, body, sent_at, read_at;`

	// markMessageRead reports the target row and, if this call changed it,
	// the new read_at. The UPDATE re-checks read_at IS NULL under the row
	// lock, so only one concurrent caller can set it.
	markMessageRead = `WITH target AS (
        SELECT id, to_username FROM messages WHERE id = $1
    ), updated AS (
        UPDATE messages SET read_at = NOW()
        WHERE id = $1 AND to_username = $2 AND read_at IS NULL
        RETURNING id, read_at
    )
    SELECT t.to_username, u.read_at
    FROM target t LEFT JOIN updated u ON u.id = t.id;`
)

const (
	messageRecipientFK = "messages_to_username_fkey"
	messageSenderFK    = "messages_from_username_fkey"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var userSummaryColumns = []string{"username", "first_name", "last_name", "phone"}

func buildListUsersQuery() (string, []any, error) {
	return psql.
		Select(userSummaryColumns...).
		From("users").
		OrderBy("seq").
		ToSql()
}

// buildMessagesFromQuery selects messages sent by username joined with the
// recipient's summary.
func buildMessagesFromQuery(username string) (string, []any, error) {
	return psql.
		Select("m.id", "u.username", "u.first_name", "u.last_name", "u.phone", "m.body", "m.sent_at", "m.read_at").
		From("messages AS m").
		Join("users AS u ON u.username = m.to_username").
		Where(sq.Eq{"m.from_username": username}).
		OrderBy("m.sent_at", "m.id").
		ToSql()
}

// buildMessagesToQuery selects messages received by username joined with
// the sender's summary.
func buildMessagesToQuery(username string) (string, []any, error) {
	return psql.
		Select("m.id", "u.username", "u.first_name", "u.last_name", "u.phone", "m.body", "m.sent_at", "m.read_at").
		From("messages AS m").
		Join("users AS u ON u.username = m.from_username").
		Where(sq.Eq{"m.to_username": username}).
		OrderBy("m.sent_at", "m.id").
		ToSql()
}

func buildGetMessageQuery(id int64) (string, []any, error) {
	return psql.
		Select(
			"m.id",
			"f.username", "f.first_name", "f.last_name", "f.phone",
			"t.username", "t.first_name", "t.last_name", "t.phone",
			"m.body", "m.sent_at", "m.read_at",
		).
		From("messages AS m").
		Join("users AS f ON f.username = m.from_username").
		Join("users AS t ON t.username = m.to_username").
		Where(sq.Eq{"m.id": id}).
		ToSql()
}
