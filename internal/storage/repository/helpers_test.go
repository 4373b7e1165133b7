package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/magabrotheeeer/gym-membership/internal/lib/pricing"
	"github.com/magabrotheeeer/gym-membership/internal/migrations"
	"github.com/magabrotheeeer/gym-membership/internal/models"
)

// setupTestDatabase поднимает PostgreSQL в контейнере и применяет миграции.
func setupTestDatabase(t *testing.T) *Storage {
	t.Helper()
	if testing.Short() {
		t.Skip("integration test requires docker")
	}
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		),
	)
	require.NoError(t, err, "failed to start container")
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	storage, err := New(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = storage.Close() })

	root, err := filepath.Abs("../../..")
	require.NoError(t, err)
	require.NoError(t, migrations.Run(storage.DB, filepath.Join(root, "migrations")))

	return storage
}

// testDataFactory создаёт связанные записи для тестов.
type testDataFactory struct {
	t       *testing.T
	storage *Storage
}

func newTestDataFactory(t *testing.T, storage *Storage) *testDataFactory {
	return &testDataFactory{t: t, storage: storage}
}

func (f *testDataFactory) admin(email string) models.Admin {
	a := models.Admin{
		ID:           uuid.New(),
		Name:         "Anna",
		Surname:      "Admin",
		Email:        email,
		Phone:        "+10000000001",
		PasswordHash: "hash",
	}
	require.NoError(f.t, f.storage.CreateAdmin(context.Background(), a))
	return a
}

func (f *testDataFactory) plan(name string, price float64, adminID *uuid.UUID) models.MembershipPlan {
	p := models.MembershipPlan{
		ID:          uuid.New(),
		Name:        name,
		Description: name + " plan",
		Price:       price,
		AdminID:     adminID,
	}
	require.NoError(f.t, f.storage.CreatePlan(context.Background(), p))
	return p
}

func (f *testDataFactory) member(email string, planID uuid.UUID, from, to time.Time) (models.Member, models.Membership) {
	ms := models.Membership{
		ID:       uuid.New(),
		From:     from,
		To:       to,
		Duration: pricing.OneMonth,
		Fee:      30,
		PlanID:   &planID,
	}
	m := models.Member{
		ID:           uuid.New(),
		Name:         "John",
		Surname:      "Doe",
		Email:        email,
		Phone:        "+10000000002",
		PasswordHash: "hash",
		MembershipID: ms.ID,
	}
	require.NoError(f.t, f.storage.RegisterMember(context.Background(), m, ms))
	return m, ms
}
