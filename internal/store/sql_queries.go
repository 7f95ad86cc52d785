package store

const (
	userColumns = `u.id, u.type, u.status, u.address, u.public_key, u.encrypted_private_key, u.balance, u.admin,
		u.ip_addresses, u.country, u.region, u.city, u.zip, u.original_referrer, u.original_landing_page,
		u.added, u.last_contact`

	findUserByID = `SELECT ` + userColumns + `
		FROM users u
		WHERE u.id = $1;`

	findUserByAddress = `SELECT ` + userColumns + `
		FROM users u
		WHERE u.address = $1;`

	findUserByHistoricalAddress = `SELECT ` + userColumns + `
		FROM users u
		JOIN user_address_history h ON h.user_id = u.id
		WHERE h.address = $1;`

	findUserAddressHistory = `SELECT address, public_key, added
		FROM user_address_history
		WHERE user_id = $1
		ORDER BY added, address;`

	insertUser = `INSERT INTO users (
			id, type, status, address, public_key, encrypted_private_key, balance, admin,
			ip_addresses, country, region, city, zip, original_referrer, original_landing_page,
			added, last_contact
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);`

	insertUserAddressHistory = `INSERT INTO user_address_history (user_id, address, public_key, added)
		VALUES ($1, $2, $3, $4);`

	// appendCappedIPAddress appends an ip and keeps only the newest
	// MaxUserIPAddresses entries, in the same statement.
	appendCappedIPAddress = `(array_append(ip_addresses, ?::text))[greatest(cardinality(ip_addresses) - ?, 1):]`

	updateUserGeo = `UPDATE users
		SET country = $2, region = $3, city = $4, zip = $5
		WHERE id = $1;`

	updateLastUserContact = `UPDATE users
		SET last_contact = $2
		WHERE id = $1;`

	deleteUserRegistrations  = `DELETE FROM user_registrations WHERE user_id = $1;`
	deleteUserAddressHistory = `DELETE FROM user_address_history WHERE user_id = $1;`
	deleteUser               = `DELETE FROM users WHERE id = $1;`
)

const (
	ipAddressColumns = `ip_address, status, country, country_code, region, region_name, city, zip,
		lat, lon, timezone, isp, org, as_number, query, message, created, last_updated`

	findIPAddress = `SELECT ` + ipAddressColumns + `
		FROM ip_addresses
		WHERE ip_address = $1;`

	insertIPAddress = `INSERT INTO ip_addresses (` + ipAddressColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		ON CONFLICT (ip_address) DO NOTHING
		RETURNING ` + ipAddressColumns + `;`
)

const (
	registrationColumns = `session_id, user_id, at, ip_address, fingerprint, is_mobile, address,
		referrer, landing_page, user_agent, referring_user_id`

	insertUserRegistration = `INSERT INTO user_registrations (` + registrationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`

	findUserRegistrationBySessionID = `SELECT ` + registrationColumns + `
		FROM user_registrations
		WHERE session_id = $1;`

	findUserRegistrationDistinctFingerprints = `SELECT DISTINCT fingerprint
		FROM user_registrations
		WHERE user_id = $1 AND is_mobile = FALSE AND fingerprint <> ''
		ORDER BY fingerprint;`
)
