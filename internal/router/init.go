package router

import (
	appuser "github.com/codefold/user-directory/internal/application"
	"github.com/codefold/user-directory/internal/container"
	repouser "github.com/codefold/user-directory/internal/domain/repository"
	"github.com/codefold/user-directory/internal/infrastructure/memstore"
	handlers "github.com/codefold/user-directory/internal/interface/http"
	"github.com/codefold/user-directory/internal/interface/middleware"
	"github.com/codefold/user-directory/internal/router/modules"
)

type UserModuleDeps struct {
	Repo    repouser.UserRepository
	Service *appuser.Service
	Handler *handlers.UserHandler
}

func buildUserDeps() UserModuleDeps {
	repo := memstore.NewUserRepository()
	container.SetUserRepo(repo)

	service := appuser.NewService(repo, container.GetLogger())
	handler := handlers.NewUserHandler(service, container.GetLogger())

	return UserModuleDeps{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	r.Use(middleware.Auth(container.GetTokens()))

	userDeps := buildUserDeps()
	r.Add(modules.NewUserModule(userDeps.Handler))

	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
