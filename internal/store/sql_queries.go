package store

const (
	createUser = `INSERT INTO users (user_id, secret_digest, created_at, last_active_at)
    VALUES ($1, $2, NOW(), NOW())
    RETURNING user_id, secret_digest, encryption_salt, plan, created_at, last_active_at;`

	findUserBySecretDigest = `SELECT user_id, secret_digest, encryption_salt, plan, created_at, last_active_at
    FROM users
    WHERE secret_digest = $1;`

	updateLastActive = `UPDATE users SET last_active_at = NOW() WHERE user_id = $1;`

	getUserSalt = `SELECT encryption_salt FROM users WHERE user_id = $1;`

	// Guarded by "encryption_salt = ''": the salt is written at most once.
	// Regenerating it would orphan every record encrypted under the old one.
	setUserSalt = `UPDATE users SET encryption_salt = $2
    WHERE user_id = $1 AND encryption_salt = '';`

	deleteUser = `DELETE FROM users WHERE user_id = $1;`

	// checkAndIncrementRateLimit is the single atomic round trip behind the
	// per-IP account-creation limit. The upsert either starts a fresh
	// counter, restarts a stale window in place, or increments the live
	// one — and RETURNING hands back the post-increment count under the
	// row lock, so concurrent callers serialize instead of all observing
	// "under limit".
	checkAndIncrementRateLimit = `INSERT INTO ip_rate_limits (ip_digest, count, window_started_at)
    VALUES ($1, 1, NOW())
    ON CONFLICT (ip_digest) DO UPDATE SET
        count = CASE
            WHEN ip_rate_limits.window_started_at < NOW() - make_interval(secs => $2)
            THEN 1
            ELSE ip_rate_limits.count + 1
        END,
        window_started_at = CASE
            WHEN ip_rate_limits.window_started_at < NOW() - make_interval(secs => $2)
            THEN NOW()
            ELSE ip_rate_limits.window_started_at
        END
    RETURNING count;`

	createChat = `INSERT INTO chats (chat_id, user_id, title, created_at, expires_at)
    VALUES ($1, $2, $3, NOW(), $4)
    RETURNING chat_id, user_id, title, created_at, expires_at;`

	listChats = `SELECT chat_id, user_id, title, created_at, expires_at
    FROM chats
    WHERE user_id = $1
    ORDER BY created_at DESC;`

	findChat = `SELECT chat_id, user_id, title, created_at, expires_at
    FROM chats
    WHERE chat_id = $1 AND user_id = $2;`

	appendMessage = `INSERT INTO messages (message_id, chat_id, role, parts, created_at)
    VALUES ($1, $2, $3, $4, NOW())
    RETURNING message_id, chat_id, role, parts, created_at;`

	deleteExpiredChats = `DELETE FROM chats
    WHERE expires_at IS NOT NULL AND expires_at < NOW();`

	saveMemory = `INSERT INTO memories (memory_id, user_id, chat_id, content, content_type, created_at, expires_at)
    VALUES ($1, $2, NULLIF($3, ''), $4, $5, NOW(), $6)
    RETURNING memory_id, user_id, content, content_type, created_at, expires_at;`

	listMemories = `SELECT memory_id, user_id, chat_id, content, content_type, created_at, expires_at
    FROM memories
    WHERE user_id = $1
    ORDER BY created_at DESC
    LIMIT NULLIF($2, 0);`

	deleteUserMemories = `DELETE FROM memories WHERE user_id = $1;`

	deleteExpiredMemories = `DELETE FROM memories
    WHERE expires_at IS NOT NULL AND expires_at < NOW();`
)
