package config

// Default database settings
const (
	// DefaultDatabasePath keeps the original database name, qualification_plan
	DefaultDatabasePath = "./qualification_plan.db"

	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)
