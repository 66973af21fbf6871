package container

import (
	"github.com/sirupsen/logrus"

	"github.com/codefold/user-directory/config"
	"github.com/codefold/user-directory/internal/domain/repository"
	"github.com/codefold/user-directory/pkg/helpers"
)

// app-level container to share constructed components across packages
// Router can auto-wire modules from these singletons.

var (
	cfg      *config.Config
	logger   *logrus.Logger
	userRepo repository.UserRepository
	tokens   *helpers.TokenValidator
)

func SetConfig(c *config.Config)              { cfg = c }
func GetConfig() *config.Config               { return cfg }
func SetLogger(l *logrus.Logger)              { logger = l }
func GetLogger() *logrus.Logger               { return logger }
func SetUserRepo(r repository.UserRepository) { userRepo = r }
func GetUserRepo() repository.UserRepository  { return userRepo }
func SetTokens(v *helpers.TokenValidator)     { tokens = v }
func GetTokens() *helpers.TokenValidator      { return tokens }
