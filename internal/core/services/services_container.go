package services

import (
	"github.com/SscSPs/customer_ledger_app/internal/core/ports"
	portsrepo "github.com/SscSPs/customer_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/customer_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/customer_ledger_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, publisher ports.EventPublisher) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg, container.User)
	container.Customer = NewCustomerService(repos.CustomerRepo, repos.EntryRepo)
	container.Entry = NewEntryService(
		repos.EntryRepo,
		repos.CustomerRepo,
		WithEventPublisher(publisher),
	)

	return container
}
