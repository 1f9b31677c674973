package usecase

import (
	"isp-dashboard/internal/alert"
	"isp-dashboard/pkg/discord"
	"isp-dashboard/pkg/log"
)

type implUseCase struct {
	logger  log.Logger
	discord discord.IDiscord
}

// New returns the alert usecase. A nil discord client drops every alert.
func New(logger log.Logger, discord discord.IDiscord) alert.UseCase {
	return &implUseCase{
		logger:  logger,
		discord: discord,
	}
}
