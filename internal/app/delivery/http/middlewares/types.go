package middlewares

import (
	"carelink-service/internal/app/config"
	"carelink-service/internal/app/services/shared/launchcontext"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	LaunchParser   *launchcontext.Parser
	InternalConfig *config.InternalConfig
}
