package storage

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS experience (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		company TEXT NOT NULL,
		position TEXT NOT NULL,
		location TEXT NOT NULL DEFAULT '',
		start_date TEXT,
		end_date TEXT,
		current_job INTEGER NOT NULL DEFAULT 0,
		description TEXT NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS experience_user_id_idx ON experience (user_id)`,
	`CREATE TABLE IF NOT EXISTS education (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		institution TEXT NOT NULL,
		degree TEXT NOT NULL,
		start_date TEXT,
		end_date TEXT,
		description TEXT NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS education_user_id_idx ON education (user_id)`,
	`CREATE TABLE IF NOT EXISTS visitors (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		hashed_ip TEXT NOT NULL,
		user_agent TEXT NOT NULL DEFAULT '',
		path TEXT NOT NULL DEFAULT '',
		timestamp DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS visitors_timestamp_idx ON visitors (timestamp)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS experience (
		id uuid PRIMARY KEY,
		user_id text NOT NULL,
		company text NOT NULL,
		position text NOT NULL,
		location text NOT NULL DEFAULT '',
		start_date date,
		end_date date,
		current_job boolean NOT NULL DEFAULT false,
		description text NOT NULL DEFAULT '',
		created_at timestamptz NOT NULL DEFAULT now(),
		CONSTRAINT experience_current_job_no_end CHECK (NOT current_job OR end_date IS NULL)
	)`,
	`CREATE INDEX IF NOT EXISTS experience_user_id_idx ON experience (user_id)`,
	`CREATE TABLE IF NOT EXISTS education (
		id uuid PRIMARY KEY,
		user_id text NOT NULL,
		institution text NOT NULL,
		degree text NOT NULL,
		start_date date,
		end_date date,
		description text NOT NULL DEFAULT '',
		created_at timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS education_user_id_idx ON education (user_id)`,
	`CREATE TABLE IF NOT EXISTS visitors (
		id bigserial PRIMARY KEY,
		hashed_ip text NOT NULL,
		user_agent text NOT NULL DEFAULT '',
		path text NOT NULL DEFAULT '',
		timestamp timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS visitors_timestamp_idx ON visitors (timestamp)`,
}
