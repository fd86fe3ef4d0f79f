package config

const (
	DriverMySQL     = "mysql"
	DriverSQLServer = "sqlserver"

	DefaultPort     = "3000"
	DefaultPoolSize = 10
)
