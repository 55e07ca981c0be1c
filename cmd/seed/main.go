package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"usermgmt/internal/config"
	"usermgmt/internal/db"
	"usermgmt/internal/logger"
	"usermgmt/internal/model"
	"usermgmt/internal/repository"
	"usermgmt/internal/service"
)

const seedPassword = "password123"

type seedUser struct {
	Name   string
	Email  string
	Role   string
	Claims []string
}

var (
	seedRoles  = []string{"Administrador", "Usuário Padrão"}
	seedClaims = []string{"Visualizar Relatórios", "Editar Dados", "Excluir Registros"}
	seedUsers  = []seedUser{
		{Name: "Carlos Henrique", Email: "carlos@example.com", Role: "Administrador", Claims: []string{"Visualizar Relatórios", "Editar Dados"}},
		{Name: "Gabrielly Nunes", Email: "gabrielly@example.com", Role: "Usuário Padrão", Claims: []string{"Visualizar Relatórios"}},
	}
)

func main() {
	cfg := config.Load()
	logger.New(cfg.LogLevel, cfg.LogFormat)
	log.Info().Msg("starting seed")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN, db.PoolConfig{MaxOpenConns: 1})
	if err != nil {
		log.Fatal().Err(err).Msg("connect to database")
	}
	defer db.Close(gormDB)

	if err := db.Migrate(ctx, gormDB); err != nil {
		log.Fatal().Err(err).Msg("run migrations")
	}

	roles := repository.NewRoleRepository(gormDB)
	claims := repository.NewClaimRepository(gormDB)
	users := repository.NewUserRepository(gormDB)

	seeded, err := seed(ctx, roles, claims, users, time.Now())
	if err != nil {
		log.Fatal().Err(err).Msg("seed reference data")
	}
	if !seeded {
		log.Info().Msg("reference data already present, nothing inserted")
	}

	loaded, err := users.ListWithRoleAndClaims(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("list seeded users")
	}
	for _, u := range loaded {
		role := ""
		if u.Role != nil {
			role = u.Role.Description
		}
		log.Info().
			Uint("id", u.ID).
			Str("email", u.Email).
			Str("role", role).
			Int("claims", len(u.Claims)).
			Msg("user")
	}
}

// seed inserts the reference roles, claims and users when the users table is empty.
// It reports whether anything was written.
func seed(
	ctx context.Context,
	roles repository.RoleRepository,
	claims repository.ClaimRepository,
	users repository.UserRepository,
	now time.Time,
) (bool, error) {
	count, err := users.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	roleIDs := make(map[string]uint, len(seedRoles))
	for _, description := range seedRoles {
		role := &model.Role{Description: description}
		if err := roles.Create(ctx, role); err != nil {
			return false, fmt.Errorf("create role %q: %w", description, err)
		}
		roleIDs[description] = role.ID
	}

	for _, description := range seedClaims {
		if err := claims.Create(ctx, &model.Claim{Description: description, Active: true}); err != nil {
			return false, fmt.Errorf("create claim %q: %w", description, err)
		}
	}

	stored, err := claims.ListAll(ctx)
	if err != nil {
		return false, fmt.Errorf("list claims: %w", err)
	}
	claimsByDescription := make(map[string]model.Claim, len(stored))
	for _, c := range stored {
		claimsByDescription[c.Description] = c
	}

	password, err := service.HashPassword(seedPassword)
	if err != nil {
		return false, err
	}

	for _, su := range seedUsers {
		user := &model.User{
			Name:      su.Name,
			Email:     su.Email,
			Password:  password,
			RoleID:    roleIDs[su.Role],
			CreatedAt: now,
			UpdatedAt: &now,
		}
		if err := users.Create(ctx, user); err != nil {
			return false, fmt.Errorf("create user %s: %w", su.Email, err)
		}

		granted := make([]model.Claim, 0, len(su.Claims))
		for _, name := range su.Claims {
			c, ok := claimsByDescription[name]
			if !ok {
				return false, fmt.Errorf("claim %q missing after insert", name)
			}
			granted = append(granted, c)
		}
		if err := users.AssignClaims(ctx, user, granted); err != nil {
			return false, fmt.Errorf("assign claims to %s: %w", su.Email, err)
		}
	}

	log.Info().
		Int("roles", len(seedRoles)).
		Int("claims", len(seedClaims)).
		Int("users", len(seedUsers)).
		Msg("seed completed")
	return true, nil
}
