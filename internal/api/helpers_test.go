package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"brewer-backend/config"
	"brewer-backend/internal/analytics"
	"brewer-backend/internal/db"
	"brewer-backend/internal/model"
	"brewer-backend/internal/modelcontroller"
	"brewer-backend/internal/screen"
	"brewer-backend/internal/session"
	"brewer-backend/internal/store"
	"brewer-backend/internal/theme"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type apiFixture struct {
	t        *testing.T
	db       *gorm.DB
	router   *gin.Engine
	sessions *session.Manager
	recorder *analytics.Recorder
	finished []string
}

type fixtureOption func(*webpush.Options)

func withVAPID(public string) fixtureOption {
	return func(o *webpush.Options) { o.VAPIDPublicKey = public }
}

func newAPIFixture(t *testing.T, opts ...fixtureOption) *apiFixture {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb, zap.NewNop()))
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	units, err := modelcontroller.NewUnitsModelController("g", "C")
	require.NoError(t, err)
	settings, err := modelcontroller.NewSequenceSettingsModelController([]string{"coffeeWeight", "time"})
	require.NoError(t, err)

	f := &apiFixture{t: t, db: gdb, recorder: analytics.NewRecorder(zap.NewNop())}
	f.sessions = session.NewManager(gdb, session.Options{
		TTL:      time.Minute,
		Units:    units,
		Settings: settings,
		KeyValue: modelcontroller.NewCacheKeyValueStore(),
		Theme:    theme.FromConfig(config.ThemeConfig{Name: "main"}),
		Tracker:  f.recorder,
		Finished: screen.BrewFinishedFunc(func(_ context.Context, id string) { f.finished = append(f.finished, id) }),
	}, zap.NewNop())

	push := &webpush.Options{}
	for _, o := range opts {
		o(push)
	}
	handler := NewHandler(gdb, f.sessions, push, f.recorder, zap.NewNop())
	f.router = NewRouter(handler, RouterOptions{RateLimit: 1000, Burst: 1000, CacheTTL: time.Minute})
	return f
}

func (f *apiFixture) do(method, path, body string) *httptest.ResponseRecorder {
	f.t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func (f *apiFixture) seedMachine(name string) string {
	f.t.Helper()
	m := &model.CoffeeMachine{ID: uuid.NewString(), Name: name, CreatedAt: time.Now()}
	require.NoError(f.t, f.db.Create(m).Error)
	return m.ID
}

func (f *apiFixture) seedBrew(notes string) string {
	f.t.Helper()
	m := modelcontroller.NewBrewModelController(store.NewContext(f.db, model.InsertOrder...))
	brew := m.CreateNewBrew()
	require.NoError(f.t, m.SetNotes(notes))
	require.NoError(f.t, m.FinishBrew(context.Background()))
	return brew.ID
}
