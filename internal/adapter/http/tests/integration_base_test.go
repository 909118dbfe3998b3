package tests

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	dbadapter "taskplanner/internal/adapter/db"
	httpadapter "taskplanner/internal/adapter/http"
	"taskplanner/internal/adapter/http/middleware"
	"taskplanner/internal/app"
	"taskplanner/internal/config"
	"taskplanner/pkg/translator"
)

const (
	testAPIPassword   = "integration-secret"
	translationFolder = "../../../../pkg/translator/translation"
)

type settableClock struct {
	now time.Time
}

func (c *settableClock) Now() time.Time {
	return c.now
}

// IntegrationSuiteBase runs the full router against a migrated database: a
// private in-memory SQLite per test by default, or the MySQL server named by
// MYSQL_TEST_HOST.
type IntegrationSuiteBase struct {
	suite.Suite

	adminDB    *sqlx.DB
	DB         *sqlx.DB
	testDBName string
	Clock      *settableClock
	router     *gin.Engine
}

func (s *IntegrationSuiteBase) SetupSuite() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(translator.InitTranslator(translator.Config{
		TranslationFolder:  translationFolder,
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	}))

	host := os.Getenv("MYSQL_TEST_HOST")
	if host == "" {
		return
	}

	port := envOrDefault("MYSQL_PORT", "3306")
	rootUser := envOrDefault("MYSQL_ROOT_USER", "root")
	rootPassword := envOrDefault("MYSQL_ROOT_PASSWORD", "root")
	database := envOrDefault("MYSQL_TEST_DATABASE", "taskplanner_test")
	params := envOrDefault("MYSQL_PARAMS", "parseTime=true&multiStatements=true&loc=UTC")

	adminDB, err := sqlx.Connect(config.DriverMySQL, mysqlDSN(rootUser, rootPassword, host, port, "", params))
	if err != nil {
		s.T().Skipf("skipping integration suite: could not connect to mysql: %v", err)
	}
	s.adminDB = adminDB

	_, err = s.adminDB.Exec(fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s`", database))
	s.Require().NoError(err)

	db, err := sqlx.Connect(config.DriverMySQL, mysqlDSN(rootUser, rootPassword, host, port, database, params))
	s.Require().NoError(err)
	s.DB = db
	s.testDBName = database
	s.Require().NoError(dbadapter.Migrate(context.Background(), s.DB))
}

func (s *IntegrationSuiteBase) TearDownSuite() {
	if s.adminDB == nil {
		return
	}
	if s.DB != nil {
		s.Require().NoError(s.DB.Close())
	}

	// Drop test database to keep local environment clean after integration runs.
	if s.testDBName != "" && strings.HasSuffix(s.testDBName, "_test") {
		_, err := s.adminDB.Exec(fmt.Sprintf("DROP DATABASE IF EXISTS `%s`", s.testDBName))
		s.Require().NoError(err)
	}
	s.Require().NoError(s.adminDB.Close())
}

func (s *IntegrationSuiteBase) SetupTest() {
	s.ResetDatabase()
	s.Clock = &settableClock{now: time.Date(2024, 5, 10, 14, 0, 0, 0, time.UTC)}

	cfg := &config.Config{
		AppName:     "taskplanner",
		AppVersion:  "test",
		APIPassword: testAPIPassword,
	}
	router, err := httpadapter.NewRouter(zap.NewNop(), cfg, s.DB, app.NewServices(s.DB, s.Clock), s.Clock)
	s.Require().NoError(err)
	s.router = router
}

func (s *IntegrationSuiteBase) TearDownTest() {
	if s.adminDB == nil && s.DB != nil {
		s.Require().NoError(s.DB.Close())
		s.DB = nil
	}
}

// ResetDatabase gives each test an empty schema.
func (s *IntegrationSuiteBase) ResetDatabase() {
	if s.adminDB == nil {
		db, err := dbadapter.ConnectSQLite(":memory:")
		s.Require().NoError(err)
		s.Require().NoError(dbadapter.Migrate(context.Background(), db))
		s.DB = db
		return
	}

	for _, table := range []string{"productivity_logs", "subtasks", "time_blocks", "tasks", "categories"} {
		_, err := s.DB.Exec("DELETE FROM " + table)
		s.Require().NoError(err)
	}
}

// Do sends an authenticated request and returns the recorder.
func (s *IntegrationSuiteBase) Do(method, target string, body any) *httptest.ResponseRecorder {
	return s.do(method, target, body, testAPIPassword)
}

func (s *IntegrationSuiteBase) do(method, target string, body any, apiKey string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, target, nil)
	} else {
		payload, err := json.Marshal(body)
		s.Require().NoError(err)
		req = httptest.NewRequest(method, target, strings.NewReader(string(payload)))
		req.Header.Set("Content-Type", "application/json")
	}
	if apiKey != "" {
		req.Header.Set(middleware.APIKeyHeader, apiKey)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *IntegrationSuiteBase) Decode(rec *httptest.ResponseRecorder, out any) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), out), rec.Body.String())
}

func mysqlDSN(user, password, host, port, database, params string) string {
	if database == "" {
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/?%s", user, password, host, port, params)
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, password, host, port, database, params)
}

func envOrDefault(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
