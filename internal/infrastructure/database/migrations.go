package database

// Migrations returns the full, statically ordered migration sequence.
// Ordering is significant: 004 rebuilds tables created by 001 and copies their
// rows, so it assumes the earlier schema shape already exists. Never edit a
// shipped migration; add a new version instead.
func Migrations() []Migration {
	return []Migration{
		{
			Version:     "001_initial_schema",
			Description: "Create initial tables",
			Statements: []string{
				`CREATE TABLE IF NOT EXISTS youtubers (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					name TEXT NOT NULL,
					channel_link TEXT,
					niche TEXT,
					contact TEXT,
					notes TEXT,
					created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
					updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE TABLE IF NOT EXISTS videos (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					title TEXT NOT NULL,
					youtuber_id INTEGER,
					date_uploaded DATE,
					payment_status TEXT DEFAULT 'pending',
					amount DECIMAL(10,2) DEFAULT 0.00,
					video_link TEXT,
					description TEXT,
					created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
					updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
					FOREIGN KEY (youtuber_id) REFERENCES youtubers (id) ON DELETE CASCADE
				)`,
			},
		},
		{
			Version:     "002_add_indexes",
			Description: "Add database indexes for performance",
			Statements: []string{
				`CREATE INDEX IF NOT EXISTS idx_videos_youtuber_id ON videos(youtuber_id)`,
				`CREATE INDEX IF NOT EXISTS idx_videos_payment_status ON videos(payment_status)`,
				`CREATE INDEX IF NOT EXISTS idx_videos_date_uploaded ON videos(date_uploaded)`,
				`CREATE INDEX IF NOT EXISTS idx_youtubers_name ON youtubers(name)`,
				`CREATE INDEX IF NOT EXISTS idx_youtubers_niche ON youtubers(niche)`,
			},
		},
		{
			Version:     "003_add_updated_at_triggers",
			Description: "Add triggers to update updated_at timestamps",
			Statements: []string{
				`CREATE TRIGGER IF NOT EXISTS update_youtubers_updated_at
					AFTER UPDATE ON youtubers
					BEGIN
						UPDATE youtubers SET updated_at = CURRENT_TIMESTAMP WHERE id = NEW.id;
					END`,
				`CREATE TRIGGER IF NOT EXISTS update_videos_updated_at
					AFTER UPDATE ON videos
					BEGIN
						UPDATE videos SET updated_at = CURRENT_TIMESTAMP WHERE id = NEW.id;
					END`,
			},
		},
		{
			Version:     "004_add_constraints",
			Description: "Add data validation constraints",
			Statements: []string{
				`CREATE TABLE IF NOT EXISTS youtubers_new (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					name TEXT NOT NULL CHECK(length(name) > 0 AND length(name) <= 100),
					channel_link TEXT CHECK(channel_link IS NULL OR length(channel_link) <= 500),
					niche TEXT CHECK(niche IS NULL OR length(niche) <= 50),
					contact TEXT CHECK(contact IS NULL OR length(contact) <= 100),
					notes TEXT CHECK(notes IS NULL OR length(notes) <= 1000),
					created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
					updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
				)`,
				`INSERT INTO youtubers_new SELECT * FROM youtubers`,
				`DROP TABLE youtubers`,
				`ALTER TABLE youtubers_new RENAME TO youtubers`,
				`CREATE TABLE IF NOT EXISTS videos_new (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					title TEXT NOT NULL CHECK(length(title) > 0 AND length(title) <= 200),
					youtuber_id INTEGER NOT NULL,
					date_uploaded DATE,
					payment_status TEXT DEFAULT 'pending' CHECK(payment_status IN ('pending', 'paid', 'cancelled')),
					amount DECIMAL(10,2) DEFAULT 0.00 CHECK(amount >= 0 AND amount <= 999999.99),
					video_link TEXT CHECK(video_link IS NULL OR length(video_link) <= 500),
					description TEXT CHECK(description IS NULL OR length(description) <= 1000),
					created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
					updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
					FOREIGN KEY (youtuber_id) REFERENCES youtubers (id) ON DELETE CASCADE
				)`,
				`INSERT INTO videos_new SELECT * FROM videos`,
				`DROP TABLE videos`,
				`ALTER TABLE videos_new RENAME TO videos`,
			},
		},
	}
}
