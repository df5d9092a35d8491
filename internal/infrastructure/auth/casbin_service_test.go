package auth

import (
	"testing"

	"github.com/Duggineniakhil/Vectra/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newCasbinTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func TestCasbinService_SeedAndEnforce(t *testing.T) {
	svc, err := NewCasbinService(newCasbinTestDB(t), "")
	require.NoError(t, err)

	added, err := svc.Seed(config.DefaultPolicySeeds())
	require.NoError(t, err)
	assert.Equal(t, len(config.DefaultPolicySeeds()), added)

	tests := []struct {
		sub, obj, act string
		allowed       bool
	}{
		{RoleSubject("ADMIN"), "/api/v1/admin/users/123", "PATCH", true},
		{RoleSubject("ADMIN"), "/api/v1/admin/policies", "GET", true},
		{RoleSubject("RIDER"), "/api/v1/admin/users/123", "GET", false},
		{RoleSubject("RIDER"), "/api/v1/auth/me", "GET", true},
		{RoleSubject("DRIVER"), "/api/v1/auth/me", "POST", false},
		{"role_UNKNOWN", "/api/v1/auth/me", "GET", false},
	}
	for _, tt := range tests {
		ok, err := svc.E.Enforce(tt.sub, tt.obj, tt.act)
		require.NoError(t, err)
		assert.Equal(t, tt.allowed, ok, "%s %s %s", tt.sub, tt.obj, tt.act)
	}
}

func TestCasbinService_SeedSkipsWhenPoliciesExist(t *testing.T) {
	db := newCasbinTestDB(t)
	svc, err := NewCasbinService(db, "")
	require.NoError(t, err)

	_, err = svc.E.AddPolicy("role_ADMIN", "/custom", "GET")
	require.NoError(t, err)

	added, err := svc.Seed(config.DefaultPolicySeeds())
	require.NoError(t, err)
	assert.Zero(t, added)

	// policies survive a reload from the same database
	reloaded, err := NewCasbinService(db, "")
	require.NoError(t, err)
	policies, err := reloaded.E.GetPolicy()
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"role_ADMIN", "/custom", "GET"}}, policies)
}

func TestNewCasbinService_BadModelPath(t *testing.T) {
	_, err := NewCasbinService(newCasbinTestDB(t), "/nonexistent/model.conf")
	assert.Error(t, err)
}
