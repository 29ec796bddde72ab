package services

import (
	"github.com/SscSPs/usdt_desk/internal/core/ports"
	portsrepo "github.com/SscSPs/usdt_desk/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/usdt_desk/internal/core/ports/services"
)

// Hosts groups the host-side adapters the interactive services talk to.
// Dialog may be nil for headless (HTTP-only) containers.
type Hosts struct {
	Rates     ports.RateProvider
	Opener    ports.URLOpener
	Dialog    ports.Dialog
	Clipboard ports.Clipboard
	XEURL     string
}

// NewServiceContainer creates a new service container with properly initialized dependencies.
// repos.OperationRepo may be nil when no database is configured; Operation stays nil then.
func NewServiceContainer(hosts Hosts, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Quote = NewQuoteService(hosts.Rates)
	container.Launcher = NewLauncherService(hosts.Opener, hosts.XEURL)
	if hosts.Dialog != nil {
		container.Converter = NewConverterService(container.Quote, hosts.Dialog, hosts.Clipboard)
	}
	if repos.OperationRepo != nil {
		container.Operation = NewOperationService(repos.OperationRepo)
	}

	return container
}
