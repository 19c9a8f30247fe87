package usecase

import (
	"go.uber.org/zap"

	"github.com/BerrybeansTech/shopo-ecom-client-sub001/internal/data/repository"
	"github.com/BerrybeansTech/shopo-ecom-client-sub001/internal/gateway"
	"github.com/BerrybeansTech/shopo-ecom-client-sub001/pkg/utils"
)

type Service struct {
	Auth    AuthFlowService
	Profile ProfileService
}

func NewService(
	repo *repository.Repository,
	creds gateway.CredentialGateway,
	otp gateway.OTPGateway,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	// One guard shared by both services: a challenge stays single-flight no
	// matter which flow touches it.
	guard := newInflightGuard()

	return &Service{
		Auth:    NewAuthFlowService(repo, creds, otp, guard, config, log),
		Profile: NewProfileService(repo, creds, log),
	}
}
