package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// parseEnv overlays Config fields from environment variables. Environment
// wins over flags so that deployment secrets never have to appear on a
// command line.
//
//	ADDRESS          HTTP bind address
//	DATABASE_DSN     PostgreSQL DSN
//	JWT_SECRET       HMAC signing secret
//	TOKEN_TTL_MIN    session token validity, minutes
//	S3_ROOT_USER / S3_ROOT_PASSWORD / S3_BUCKET / S3_REGION / S3_ENDPOINT
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("ADDRESS"); ok {
		config.EndpointAddr = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("JWT_SECRET"); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("TOKEN_TTL_MIN"); ok {
		minutes, err := strconv.Atoi(v)
		if err != nil {
			// a misconfigured deployment should fail loudly at startup,
			// not run with the default lifetime
			panic(fmt.Sprintf("invalid TOKEN_TTL_MIN %q: %v", v, err))
		}
		config.TokenValidityDuration = time.Duration(minutes) * time.Minute
	}
	if v, ok := os.LookupEnv("S3_ROOT_USER"); ok {
		config.S3RootUser = v
	}
	if v, ok := os.LookupEnv("S3_ROOT_PASSWORD"); ok {
		config.S3RootPassword = v
	}
	if v, ok := os.LookupEnv("S3_BUCKET"); ok {
		config.S3Bucket = v
	}
	if v, ok := os.LookupEnv("S3_REGION"); ok {
		config.S3Region = v
	}
	if v, ok := os.LookupEnv("S3_ENDPOINT"); ok {
		config.S3BaseEndpoint = v
	}
}
