package auditrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/NotMikev/awesome-pizza-manager/internal/adapters/out/postgres/auditrepo"
	"github.com/NotMikev/awesome-pizza-manager/internal/core/domain/model/audit"
	"github.com/NotMikev/awesome-pizza-manager/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// AuditLogRepositoryIntegrationTestSuite provides integration tests for AuditLogRepository
// using PostgreSQL containers to verify the append-only audit log behavior.
type AuditLogRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *auditrepo.GormAuditLogRepository
}

func (suite *AuditLogRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&auditrepo.RecordDTO{}))
}

func (suite *AuditLogRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE api_audit_log").Error)
	suite.repository = auditrepo.NewGormAuditLogRepository(suite.db)
}

func (suite *AuditLogRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *AuditLogRepositoryIntegrationTestSuite) TestAdd_CompleteRecord_RoundTrips() {
	ctx := context.Background()
	requestBody := `{"item":"Margherita"}`
	responseBody := `{"code":"abc","status":"NEW"}`

	record := suite.newRecord(uuid.NewString(), &requestBody, 200, &responseBody, nil)
	suite.Require().NoError(suite.repository.Add(ctx, record))

	loaded, err := suite.repository.GetByCorrelationID(ctx, record.CorrelationID())
	suite.Require().NoError(err)

	suite.Equal(record.CorrelationID(), loaded.CorrelationID())
	suite.Equal(record.Method(), loaded.Method())
	suite.Equal(record.Path(), loaded.Path())
	suite.Equal(record.ResponseStatus(), loaded.ResponseStatus())
	suite.Require().NotNil(loaded.RequestBody())
	suite.Equal(requestBody, *loaded.RequestBody())
	suite.Require().NotNil(loaded.ResponseBody())
	suite.Equal(responseBody, *loaded.ResponseBody())
	suite.Nil(loaded.FailureDetail())
	suite.WithinDuration(record.Timestamp(), loaded.Timestamp(), time.Millisecond)
}

func (suite *AuditLogRepositoryIntegrationTestSuite) TestAdd_FailedCall_KeepsFailureDetail() {
	ctx := context.Background()
	failureDetail := "object not found: unknown-code"

	record := suite.newRecord(uuid.NewString(), nil, 404, nil, &failureDetail)
	suite.Require().NoError(suite.repository.Add(ctx, record))

	loaded, err := suite.repository.GetByCorrelationID(ctx, record.CorrelationID())
	suite.Require().NoError(err)

	suite.Equal(404, loaded.ResponseStatus())
	suite.Nil(loaded.RequestBody())
	suite.Nil(loaded.ResponseBody())
	suite.Require().NotNil(loaded.FailureDetail())
	suite.Equal(failureDetail, *loaded.FailureDetail())
}

func (suite *AuditLogRepositoryIntegrationTestSuite) TestAdd_DuplicateCorrelationID_ReturnsError() {
	ctx := context.Background()
	correlationID := uuid.NewString()

	first := suite.newRecord(correlationID, nil, 200, nil, nil)
	second := suite.newRecord(correlationID, nil, 200, nil, nil)

	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().Error(suite.repository.Add(ctx, second))

	var count int64
	suite.Require().NoError(suite.db.Model(&auditrepo.RecordDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *AuditLogRepositoryIntegrationTestSuite) TestGetByCorrelationID_Unknown_ReturnsNotFoundError() {
	ctx := context.Background()

	_, err := suite.repository.GetByCorrelationID(ctx, uuid.NewString())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *AuditLogRepositoryIntegrationTestSuite) newRecord(
	correlationID string,
	requestBody *string,
	responseStatus int,
	responseBody *string,
	failureDetail *string,
) *audit.Record {
	record, err := audit.NewRecord(
		correlationID,
		time.Now().UTC(),
		"POST",
		"/api/purchase",
		requestBody,
		responseStatus,
		responseBody,
		failureDetail,
	)
	suite.Require().NoError(err)
	return record
}

func TestAuditLogRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(AuditLogRepositoryIntegrationTestSuite))
}
