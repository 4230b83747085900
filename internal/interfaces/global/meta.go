// Package global
package global

import (
	"flag"
)

var (
	DebugMode      = flag.Bool("debug", false, "Enable debug mode")
	ConfigFilePath = flag.String("config", "./config.json", "Path to configuration file")
	EnvFilePath    = flag.String("env", ".env", "Path to optional .env file")
	LogFilePath    = flag.String("log_file", "", "Also write logs to this file")
	HashPassword   = flag.String("hash_password", "", "Print the bcrypt hash of the given password and exit")
)

const (
	AppVersion    = "1.2.0"
	ConfigVersion = "1.2.0"

	DefaultFilePermissions = 0644

	EnvPrefix = "STAFF_PORTAL_"

	SessionCookieName = "staff_session"
	SessionIssuer     = "StaffPortal"
)
