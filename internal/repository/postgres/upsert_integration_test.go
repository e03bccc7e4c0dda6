package postgres

import (
	"context"
	"os"
	"testing"

	"go-profile-backend/internal/domain"
	"go-profile-backend/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Integration tests for the name-upsert queries. They need a migrated
// database and are skipped unless DATABASE_URL is set.

func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set")
	}
	pool, err := database.NewPostgresConnection(dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func seedTestUser(t *testing.T, ctx context.Context, pool *pgxpool.Pool) *domain.User {
	t.Helper()
	repo := NewUserRepository(pool)
	user := &domain.User{
		Name:  "Integration Tester",
		Email: uuid.NewString() + "@example.test",
	}
	require.NoError(t, repo.Create(ctx, user))
	t.Cleanup(func() {
		_, _ = pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, user.ID)
	})
	return user
}

func TestCreateWithSkillsReusesSkillRow(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := NewProfileRepository(pool)

	userA := seedTestUser(t, ctx, pool)
	userB := seedTestUser(t, ctx, pool)
	skillName := "itest-skill-" + uuid.NewString()

	profileA := &domain.Profile{UserID: userA.ID, ProfileType: "developer"}
	skillsA, err := repo.CreateWithSkills(ctx, profileA, []string{skillName})
	require.NoError(t, err)
	require.Len(t, skillsA, 1)

	profileB := &domain.Profile{UserID: userB.ID, ProfileType: "developer"}
	skillsB, err := repo.CreateWithSkills(ctx, profileB, []string{skillName})
	require.NoError(t, err)
	require.Len(t, skillsB, 1)

	t.Cleanup(func() {
		_, _ = pool.Exec(ctx, `DELETE FROM profile_skills WHERE profile_id = ANY($1)`, []int64{profileA.ID, profileB.ID})
		_, _ = pool.Exec(ctx, `DELETE FROM profiles WHERE id = ANY($1)`, []int64{profileA.ID, profileB.ID})
		_, _ = pool.Exec(ctx, `DELETE FROM skills WHERE id = $1`, skillsA[0].ID)
	})

	// Second insert of the same name must resolve to the existing row.
	assert.Equal(t, skillsA[0].ID, skillsB[0].ID)
	assert.Equal(t, skillName, skillsB[0].Name)

	var count int
	require.NoError(t, pool.QueryRow(ctx, `SELECT COUNT(*) FROM skills WHERE name = $1`, skillName).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestEducationCreateReusesInstitutionRow(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := NewEducationRepository(pool)

	user := seedTestUser(t, ctx, pool)
	institutionName := "itest-institution-" + uuid.NewString()

	endYear := 2019
	first := &domain.Education{UserID: user.ID, Degree: "BSc Computer Science", StartYear: 2015, EndYear: &endYear}
	require.NoError(t, repo.Create(ctx, first, institutionName))

	second := &domain.Education{UserID: user.ID, Degree: "MSc Computer Science", StartYear: 2019}
	require.NoError(t, repo.Create(ctx, second, institutionName))

	t.Cleanup(func() {
		_, _ = pool.Exec(ctx, `DELETE FROM educations WHERE id = ANY($1)`, []int64{first.ID, second.ID})
		_, _ = pool.Exec(ctx, `DELETE FROM institutions WHERE id = $1`, first.InstitutionID)
	})

	assert.Equal(t, first.InstitutionID, second.InstitutionID)
	require.NotNil(t, second.Institution)
	assert.Equal(t, institutionName, second.Institution.Name)

	var count int
	require.NoError(t, pool.QueryRow(ctx, `SELECT COUNT(*) FROM institutions WHERE name = $1`, institutionName).Scan(&count))
	assert.Equal(t, 1, count)
}
