package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/NotMikev/awesome-pizza-manager/internal/adapters/out/postgres/purchaserepo"
	"github.com/NotMikev/awesome-pizza-manager/internal/core/application/usecases/queries"
	"github.com/NotMikev/awesome-pizza-manager/internal/core/domain/model/kernel"
	"github.com/NotMikev/awesome-pizza-manager/internal/core/domain/model/purchase"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetPendingPurchasesQueryHandlerTestSuite struct {
	suite.Suite
	container    *pgcontainer.PostgresContainer
	db           *gorm.DB
	handler      queries.GetPendingPurchasesQueryHandler
	purchaseRepo *purchaserepo.GormPurchaseRepository
}

func (suite *GetPendingPurchasesQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
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

	suite.handler = queries.NewGetPendingPurchasesQueryHandler(db)
	suite.purchaseRepo = purchaserepo.NewGormPurchaseRepository(db, noopAggregateTracker{})
}

func (suite *GetPendingPurchasesQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE purchases").Error)
}

func (suite *GetPendingPurchasesQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetPendingPurchasesQueryHandlerTestSuite) TestHandle_EmptyQueue_ReturnsEmptySlice() {
	query := queries.NewGetPendingPurchasesQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetPendingPurchasesQueryHandlerTestSuite) TestHandle_MixedStatuses_ReturnsOnlyPending() {
	ctx := context.Background()

	pending := suite.addPurchaseAt("Margherita", time.Now().UTC())
	taken := suite.addPurchaseAt("Diavola", time.Now().UTC())

	suite.Require().NoError(taken.Take(time.Now().UTC()))
	suite.Require().NoError(suite.purchaseRepo.Update(ctx, taken, purchase.New))

	query := queries.NewGetPendingPurchasesQuery()

	result, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(pending.Code().String(), result[0].Code)
	suite.Equal("Margherita", result[0].Item)
}

func (suite *GetPendingPurchasesQueryHandlerTestSuite) TestHandle_QueueIsOrderedOldestFirst() {
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Microsecond)

	third := suite.addPurchaseAt("Capricciosa", base.Add(2*time.Second))
	first := suite.addPurchaseAt("Margherita", base)
	second := suite.addPurchaseAt("Diavola", base.Add(time.Second))

	query := queries.NewGetPendingPurchasesQuery()

	result, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal(first.Code().String(), result[0].Code)
	suite.Equal(second.Code().String(), result[1].Code)
	suite.Equal(third.Code().String(), result[2].Code)
}

func (suite *GetPendingPurchasesQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetPendingPurchasesQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetPendingPurchasesQuery constructor")
}

func (suite *GetPendingPurchasesQueryHandlerTestSuite) addPurchaseAt(item string, createdAt time.Time) *purchase.Purchase {
	p, err := purchase.NewPurchase(kernel.NewCode(), item, createdAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.purchaseRepo.Add(context.Background(), p))
	return p
}

func TestGetPendingPurchasesQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetPendingPurchasesQueryHandlerTestSuite))
}
