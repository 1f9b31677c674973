package usecase

import (
	"isp-dashboard/internal/payment"
	"isp-dashboard/internal/payment/repository"
	"isp-dashboard/pkg/form"
	pkgLog "isp-dashboard/pkg/log"
)

type usecase struct {
	l         pkgLog.Logger
	repo      repository.Repository
	validator *form.Validator
}

func New(l pkgLog.Logger, repo repository.Repository, validator *form.Validator) payment.UseCase {
	return &usecase{
		l:         l,
		repo:      repo,
		validator: validator,
	}
}
