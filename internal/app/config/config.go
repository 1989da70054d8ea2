package config

import (
	"carelink-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                       utils.GetEnvString("APP_ENV", "development"),
			Port:                      utils.GetEnvString("APP_PORT", ":8080"),
			Version:                   utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                  utils.GetEnvString("APP_TIMEZONE", "Asia/Taipei"),
			EndpointPrefix:            utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:               utils.GetEnvInt("APP_MAX_REQUEST", 30),
			ShutdownTimeout:           utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			ViewStateTTLInMinute:      utils.GetEnvInt("APP_VIEW_STATE_TTL_IN_MINUTE", 30),
			UpstreamTimeoutInSecond:   utils.GetEnvInt("APP_UPSTREAM_TIMEOUT_IN_SECOND", 15),
			UpstreamRequestsPerSecond: utils.GetEnvInt("APP_UPSTREAM_REQUESTS_PER_SECOND", 20),
		},
		FHIR: FHIR{
			// MOHW THAS sandbox, the direct-connect fallback when no SMART
			// launch token is present.
			BaseUrl: utils.GetEnvString("FHIR_BASE_URL", "https://thas.mohw.gov.tw/v/r4/fhir"),
		},
	}
}
