package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/autoapply/unified-service/internal/models"
)

func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE EXTENSION IF NOT EXISTS "uuid-ossp";

	CREATE TABLE IF NOT EXISTS users (
		user_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		email VARCHAR(100) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		first_name VARCHAR(100) NOT NULL DEFAULT '',
		last_name VARCHAR(100) NOT NULL DEFAULT '',
		role VARCHAR(20) NOT NULL DEFAULT 'USER',
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS password_reset_tokens (
		token_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		token VARCHAR(255) NOT NULL UNIQUE,
		user_id UUID NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
		expires_at TIMESTAMP NOT NULL,
		used BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS job_applications (
		job_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		user_id UUID NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
		title VARCHAR(255) NOT NULL,
		company VARCHAR(255) NOT NULL,
		url TEXT,
		description TEXT,
		status VARCHAR(32) NOT NULL DEFAULT 'SAVED',
		source_type VARCHAR(32) NOT NULL DEFAULT 'MANUAL',
		applied_at TIMESTAMP,
		notes TEXT,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS profiles (
		profile_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		user_id UUID NOT NULL UNIQUE REFERENCES users(user_id) ON DELETE CASCADE,
		full_name VARCHAR(255),
		phone VARCHAR(50),
		location VARCHAR(255),
		linkedin_url TEXT,
		portfolio_url TEXT,
		summary TEXT,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS experiences (
		experience_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		profile_id UUID NOT NULL REFERENCES profiles(profile_id) ON DELETE CASCADE,
		company VARCHAR(255) NOT NULL,
		position VARCHAR(255) NOT NULL,
		description TEXT,
		start_date VARCHAR(32),
		end_date VARCHAR(32),
		is_current BOOLEAN NOT NULL DEFAULT FALSE,
		location VARCHAR(255)
	);

	CREATE TABLE IF NOT EXISTS education (
		education_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		profile_id UUID NOT NULL REFERENCES profiles(profile_id) ON DELETE CASCADE,
		institution VARCHAR(255) NOT NULL,
		degree VARCHAR(255),
		field_of_study VARCHAR(255),
		start_date VARCHAR(32),
		end_date VARCHAR(32),
		gpa VARCHAR(16)
	);

	CREATE TABLE IF NOT EXISTS skills (
		skill_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		profile_id UUID NOT NULL REFERENCES profiles(profile_id) ON DELETE CASCADE,
		name VARCHAR(255) NOT NULL,
		category VARCHAR(100),
		proficiency_level VARCHAR(50)
	);

	CREATE TABLE IF NOT EXISTS resume_versions (
		resume_version_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		user_id UUID NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
		job_application_id UUID REFERENCES job_applications(job_id) ON DELETE SET NULL,
		resume_content TEXT NOT NULL,
		ats_score INTEGER,
		ats_feedback TEXT,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func createTestUser(t *testing.T, db *sqlx.DB, email string) *models.UserDB {
	t.Helper()

	repo := NewUserWriteRepository(db)
	user, err := repo.Create(context.Background(), email, "hash", "Test", "User", models.RoleUser)
	assert.NoError(t, err)
	assert.NotNil(t, user)
	return user
}
