package config

// EnvPrefix is passed to envconfig; explicit tags carry the full names.
const EnvPrefix = "itemstore"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	EnvAppEnv      = "ITEMSTORE_APP_ENV"
	EnvPort        = "ITEMSTORE_APP_PORT"
	EnvLogLevel    = "ITEMSTORE_LOG_LEVEL"
	EnvCORSOrigins = "ITEMSTORE_CORS_ALLOWED_ORIGINS"
)
