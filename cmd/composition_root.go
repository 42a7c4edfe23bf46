package cmd

import (
	"github.com/NotMikev/awesome-pizza-manager/internal/adapters/out/postgres"
	"github.com/NotMikev/awesome-pizza-manager/internal/core/application/usecases/commands"
	"github.com/NotMikev/awesome-pizza-manager/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreatePurchaseCommandHandler() commands.CreatePurchaseCommandHandler {
	var f commands.PurchaseUoWFactory = FuncPurchaseUoWFactory(func() commands.PurchaseUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePurchaseCommandHandler(f)
}

func (c *CompositionRoot) CreateTakeNextPurchaseCommandHandler() commands.TakeNextPurchaseCommandHandler {
	var f commands.PurchaseUoWFactory = FuncPurchaseUoWFactory(func() commands.PurchaseUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTakeNextPurchaseCommandHandler(f)
}

func (c *CompositionRoot) CreateTakePurchaseByCodeCommandHandler() commands.TakePurchaseByCodeCommandHandler {
	var f commands.PurchaseUoWFactory = FuncPurchaseUoWFactory(func() commands.PurchaseUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTakePurchaseByCodeCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkPurchaseReadyCommandHandler() commands.MarkPurchaseReadyCommandHandler {
	var f commands.PurchaseUoWFactory = FuncPurchaseUoWFactory(func() commands.PurchaseUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkPurchaseReadyCommandHandler(f)
}

func (c *CompositionRoot) CreateLogAPICallCommandHandler() commands.LogAPICallCommandHandler {
	var f commands.AuditUoWFactory = FuncAuditUoWFactory(func() commands.AuditUoW {
		return c.uowFactory.Create()
	})
	return commands.NewLogAPICallCommandHandler(f)
}

func (c *CompositionRoot) CreateCheckPurchaseStatusQueryHandler() queries.CheckPurchaseStatusQueryHandler {
	return queries.NewCheckPurchaseStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingPurchasesQueryHandler() queries.GetPendingPurchasesQueryHandler {
	return queries.NewGetPendingPurchasesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAuditRecordQueryHandler() queries.GetAuditRecordQueryHandler {
	return queries.NewGetAuditRecordQueryHandler(c.gormDB)
}

type FuncPurchaseUoWFactory func() commands.PurchaseUoW

func (f FuncPurchaseUoWFactory) Create() commands.PurchaseUoW {
	return f()
}

type FuncAuditUoWFactory func() commands.AuditUoW

func (f FuncAuditUoWFactory) Create() commands.AuditUoW {
	return f()
}
