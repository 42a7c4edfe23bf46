package purchaserepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/NotMikev/awesome-pizza-manager/internal/adapters/out/postgres/purchaserepo"
	"github.com/NotMikev/awesome-pizza-manager/internal/core/domain/model/kernel"
	"github.com/NotMikev/awesome-pizza-manager/internal/core/domain/model/purchase"
	"github.com/NotMikev/awesome-pizza-manager/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(code kernel.Code, aggregate any) {
	m.Called(code, aggregate)
}

// PurchaseRepositoryIntegrationTestSuite provides integration tests for PurchaseRepository
// using PostgreSQL containers to verify database persistence behavior.
type PurchaseRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *purchaserepo.GormPurchaseRepository
	tracker    *MockAggregateTracker
}

func (suite *PurchaseRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&purchaserepo.PurchaseDTO{}))
}

func (suite *PurchaseRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE purchases").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = purchaserepo.NewGormPurchaseRepository(suite.db, suite.tracker)
}

func (suite *PurchaseRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *PurchaseRepositoryIntegrationTestSuite) TestAdd_ValidPurchase_Success() {
	ctx := context.Background()
	p := suite.createPendingPurchase("Margherita")

	suite.tracker.On("TrackAggregate", p.Code(), p).Once()

	err := suite.repository.Add(ctx, p)
	suite.Require().NoError(err)

	suite.assertPurchaseCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PurchaseRepositoryIntegrationTestSuite) TestAdd_DuplicateCode_ReturnsError() {
	ctx := context.Background()
	code := kernel.NewCode()
	now := time.Now().UTC()

	first, err := purchase.NewPurchase(code, "Margherita", now)
	suite.Require().NoError(err)
	second, err := purchase.NewPurchase(code, "Diavola", now)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", code, first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	err = suite.repository.Add(ctx, second)
	suite.Require().Error(err)
	suite.assertPurchaseCount(1)
}

func (suite *PurchaseRepositoryIntegrationTestSuite) TestGetByCode_ExistingPurchase_RoundTrips() {
	ctx := context.Background()
	p := suite.addPendingPurchase("Quattro Stagioni")

	loaded, err := suite.repository.GetByCode(ctx, p.Code())
	suite.Require().NoError(err)

	suite.True(p.IsEqual(loaded))
	suite.Equal(p.Item(), loaded.Item())
	suite.Equal(purchase.New, loaded.Status())
	suite.WithinDuration(p.CreatedAt(), loaded.CreatedAt(), time.Millisecond)
	suite.WithinDuration(p.UpdatedAt(), loaded.UpdatedAt(), time.Millisecond)
}

func (suite *PurchaseRepositoryIntegrationTestSuite) TestGetByCode_UnknownCode_ReturnsNotFoundError() {
	ctx := context.Background()

	_, err := suite.repository.GetByCode(ctx, kernel.NewCode())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *PurchaseRepositoryIntegrationTestSuite) TestGetByCodeInStatus_WrongStatus_ReturnsNotFoundError() {
	ctx := context.Background()
	p := suite.addPendingPurchase("Capricciosa")

	_, err := suite.repository.GetByCodeInStatus(ctx, p.Code(), purchase.InProgress)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	loaded, err := suite.repository.GetByCodeInStatus(ctx, p.Code(), purchase.New)
	suite.Require().NoError(err)
	suite.True(p.IsEqual(loaded))
}

func (suite *PurchaseRepositoryIntegrationTestSuite) TestUpdate_StatusTransition_Persists() {
	ctx := context.Background()
	p := suite.addPendingPurchase("Margherita")

	suite.Require().NoError(p.Take(time.Now().UTC()))
	suite.tracker.On("TrackAggregate", p.Code(), p).Once()

	err := suite.repository.Update(ctx, p, purchase.New)
	suite.Require().NoError(err)

	loaded, err := suite.repository.GetByCode(ctx, p.Code())
	suite.Require().NoError(err)
	suite.Equal(purchase.InProgress, loaded.Status())
	suite.True(loaded.UpdatedAt().After(loaded.CreatedAt()))
}

func (suite *PurchaseRepositoryIntegrationTestSuite) TestUpdate_SourceStatusMoved_ReturnsNotFoundError() {
	ctx := context.Background()
	p := suite.addPendingPurchase("Margherita")

	suite.Require().NoError(p.Take(time.Now().UTC()))
	suite.tracker.On("TrackAggregate", p.Code(), p).Once()
	suite.Require().NoError(suite.repository.Update(ctx, p, purchase.New))

	// The row is no longer NEW, so a second claim must touch zero rows.
	stale, err := purchase.RestorePurchase(
		p.Code(), p.Item(), purchase.InProgress, p.CreatedAt(), time.Now().UTC(),
	)
	suite.Require().NoError(err)

	err = suite.repository.Update(ctx, stale, purchase.New)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *PurchaseRepositoryIntegrationTestSuite) TestUpdate_UnknownCode_ReturnsNotFoundError() {
	ctx := context.Background()

	p, err := purchase.NewPurchase(kernel.NewCode(), "Margherita", time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(p.Take(time.Now().UTC()))

	err = suite.repository.Update(ctx, p, purchase.New)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *PurchaseRepositoryIntegrationTestSuite) TestGetOldestInStatus_ReturnsEarliestCreated() {
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Microsecond)

	newest := suite.addPendingPurchaseAt("Diavola", base.Add(2*time.Second))
	oldest := suite.addPendingPurchaseAt("Margherita", base)
	middle := suite.addPendingPurchaseAt("Capricciosa", base.Add(time.Second))

	loaded, err := suite.repository.GetOldestInStatus(ctx, purchase.New)
	suite.Require().NoError(err)
	suite.True(oldest.IsEqual(loaded))
	suite.False(middle.IsEqual(loaded))
	suite.False(newest.IsEqual(loaded))
}

func (suite *PurchaseRepositoryIntegrationTestSuite) TestGetOldestInStatus_NoMatch_ReturnsNotFoundError() {
	ctx := context.Background()
	suite.addPendingPurchase("Margherita")

	_, err := suite.repository.GetOldestInStatus(ctx, purchase.InProgress)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

// Concurrent claims on one purchase: exactly one conditional write may win.
func (suite *PurchaseRepositoryIntegrationTestSuite) TestUpdate_ConcurrentClaims_OnlyOneWins() {
	ctx := context.Background()
	p := suite.addPendingPurchase("Margherita")

	const claimers = 8
	suite.tracker.On("TrackAggregate", p.Code(), mock.Anything).Maybe()

	var wg sync.WaitGroup
	results := make(chan error, claimers)

	for range claimers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			claimed, err := purchase.RestorePurchase(
				p.Code(), p.Item(), purchase.InProgress, p.CreatedAt(), time.Now().UTC(),
			)
			if err != nil {
				results <- err
				return
			}
			results <- suite.repository.Update(ctx, claimed, purchase.New)
		}()
	}

	wg.Wait()
	close(results)

	wins := 0
	for err := range results {
		if err == nil {
			wins++
		} else {
			suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
		}
	}
	suite.Equal(1, wins)
}

func (suite *PurchaseRepositoryIntegrationTestSuite) createPendingPurchase(item string) *purchase.Purchase {
	p, err := purchase.NewPurchase(kernel.NewCode(), item, time.Now().UTC())
	suite.Require().NoError(err)
	return p
}

func (suite *PurchaseRepositoryIntegrationTestSuite) addPendingPurchase(item string) *purchase.Purchase {
	return suite.addPendingPurchaseAt(item, time.Now().UTC())
}

func (suite *PurchaseRepositoryIntegrationTestSuite) addPendingPurchaseAt(item string, createdAt time.Time) *purchase.Purchase {
	p, err := purchase.NewPurchase(kernel.NewCode(), item, createdAt)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", p.Code(), p).Once()
	suite.Require().NoError(suite.repository.Add(context.Background(), p))
	return p
}

func (suite *PurchaseRepositoryIntegrationTestSuite) assertPurchaseCount(expected int) {
	var count int64
	suite.Require().NoError(suite.db.Model(&purchaserepo.PurchaseDTO{}).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

func TestPurchaseRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(PurchaseRepositoryIntegrationTestSuite))
}
