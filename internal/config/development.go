package config

import "os"

// Development reports whether the server runs in development mode,
// enabled by setting DEVELOPMENT to anything but "0".
func Development() bool {
	v, ok := os.LookupEnv("DEVELOPMENT")
	return ok && v != "0"
}
