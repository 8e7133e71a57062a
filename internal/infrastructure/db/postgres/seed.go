package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/RaafaGarcia/smartadmin-api/internal/core/domain"
	"github.com/RaafaGarcia/smartadmin-api/internal/core/service"
)

type seedUser struct {
	email    string
	username string
	fullName string
	password string
	admin    bool
}

type seedProject struct {
	name        string
	description string
	status      domain.ProjectStatus
	priority    domain.ProjectPriority
}

var seedUsers = []seedUser{
	{"admin@smartadmin.com", "admin", "Administrator", "admin123", true},
	{"rafael.garcia@example.com", "rafael", "Rafael García - Tech Lead Guadalajara", "password123", false},
	{"ana.lopez@example.com", "ana", "Ana López - Frontend Developer", "password123", false},
	{"carlos.ruiz@example.com", "carlos", "Carlos Ruiz - Backend Developer", "password123", false},
	{"maria.gonzalez@example.com", "maria", "María González - UX Designer", "password123", false},
}

var seedProjects = []seedProject{
	{"ERP Gubernamental", "Sistema ERP especializado en contaduría gubernamental", domain.StatusActive, domain.PriorityHigh},
	{"SmartAdmin Dashboard", "Panel de métricas y analytics en tiempo real", domain.StatusActive, domain.PriorityHigh},
	{"Mobile App Flutter", "Aplicación móvil para gestión de tareas administrativas", domain.StatusCompleted, domain.PriorityMedium},
	{"API Gateway Microservice", "Microservicio para gestión centralizada de APIs", domain.StatusActive, domain.PriorityMedium},
	{"Tech Lead Portfolio", "Proyecto showcase de stack moderno", domain.StatusActive, domain.PriorityHigh},
	{"Legacy System Migration", "Migración de sistema legacy a microservicios", domain.StatusPaused, domain.PriorityLow},
}

// Seed populates the store with the demo admin account, sample users, and
// sample projects. It is a no-op when users already exist. Seeding failures
// are reported to the caller, who treats them as non-fatal.
func Seed(ctx context.Context, db *sql.DB, log zerolog.Logger) error {
	var existing int64
	if err := db.QueryRowContext(ctx, "SELECT count(*) FROM users").Scan(&existing); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if existing > 0 {
		log.Info().Int64("users", existing).Msg("database already seeded, skipping")
		return nil
	}

	var adminID int64
	for _, u := range seedUsers {
		hash, err := service.HashPassword(u.password)
		if err != nil {
			return fmt.Errorf("seed: hash password: %w", err)
		}
		var id int64
		err = db.QueryRowContext(ctx,
			`INSERT INTO users (email, username, full_name, hashed_password, is_admin)
			 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
			u.email, u.username, u.fullName, hash, u.admin,
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("seed: insert user %s: %w", u.email, err)
		}
		if u.admin {
			adminID = id
		}
	}

	for _, p := range seedProjects {
		_, err := db.ExecContext(ctx,
			`INSERT INTO projects (name, description, status, priority, owner_id)
			 VALUES ($1, $2, $3, $4, $5)`,
			p.name, p.description, string(p.status), string(p.priority), adminID,
		)
		if err != nil {
			return fmt.Errorf("seed: insert project %s: %w", p.name, err)
		}
	}

	log.Info().
		Int("users", len(seedUsers)).
		Int("projects", len(seedProjects)).
		Msg("sample data seeded")
	return nil
}
