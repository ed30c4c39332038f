package db

import (
	"testing"

	"moneyflow/internal/domain"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestSeedDefaultCategories(t *testing.T) {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, gdb.AutoMigrate(&domain.Category{}))

	require.NoError(t, SeedDefaultCategories(gdb))
	var count int64
	require.NoError(t, gdb.Model(&domain.Category{}).Count(&count).Error)
	assert.EqualValues(t, len(DefaultCategories), count)

	// Seeding again is a no-op
	require.NoError(t, SeedDefaultCategories(gdb))
	require.NoError(t, gdb.Model(&domain.Category{}).Count(&count).Error)
	assert.EqualValues(t, len(DefaultCategories), count)
}

func TestSeedSkipsNonEmptyTable(t *testing.T) {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, gdb.AutoMigrate(&domain.Category{}))

	require.NoError(t, gdb.Create(&domain.Category{Name: "Custom"}).Error)
	require.NoError(t, SeedDefaultCategories(gdb))

	var count int64
	require.NoError(t, gdb.Model(&domain.Category{}).Count(&count).Error)
	assert.EqualValues(t, 1, count) // user data is never mixed with defaults
}
