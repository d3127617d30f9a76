package config

import "os"

func IsDebug() bool {
	return os.Getenv("TERMFOLIO_DEBUG") == "1"
}
