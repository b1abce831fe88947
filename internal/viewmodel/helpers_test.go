package viewmodel

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"brewer-backend/internal/model"
	"brewer-backend/internal/modelcontroller"
	"brewer-backend/internal/store"
)

func newTestContext(t *testing.T) *store.Context {
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Coffee{}, &model.CoffeeMachine{}, &model.Brew{}))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return store.NewContext(db, model.InsertOrder...)
}

func ptr(v float64) *float64 { return &v }

func grams(t *testing.T) *modelcontroller.UnitsModelController {
	u, err := modelcontroller.NewUnitsModelController("g", "C")
	require.NoError(t, err)
	return u
}

func newBrewController(t *testing.T) *modelcontroller.BrewModelController {
	m := modelcontroller.NewBrewModelController(newTestContext(t))
	m.CreateNewBrew()
	return m
}
