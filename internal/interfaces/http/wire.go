package http

import (
	"time"

	"gorm.io/gorm"

	appai "hilla/internal/application/ai"
	"hilla/internal/application/ticket/usecases"
	"hilla/internal/domain/ticket"
	infraai "hilla/internal/infrastructure/ai"
	"hilla/internal/infrastructure/cache"
	"hilla/internal/infrastructure/email"
	"hilla/internal/infrastructure/repository"
	aihandlers "hilla/internal/interfaces/http/handlers/ai"
	categoryhandlers "hilla/internal/interfaces/http/handlers/category"
	dashboardhandlers "hilla/internal/interfaces/http/handlers/dashboard"
	tickethandlers "hilla/internal/interfaces/http/handlers/ticket"
	"hilla/internal/shared/db"
	"hilla/internal/shared/services/markdown"
)

type repositories struct {
	ticketRepo   ticket.TicketRepository
	categoryRepo ticket.CategoryRepository
}

func newRepositories(database *gorm.DB) *repositories {
	return &repositories{
		ticketRepo:   repository.NewTicketRepository(database),
		categoryRepo: repository.NewCategoryRepository(database),
	}
}

type useCases struct {
	createTicket   *usecases.CreateTicketUseCase
	getTicket      *usecases.GetTicketUseCase
	listTickets    *usecases.ListTicketsUseCase
	updateTicket   *usecases.UpdateTicketUseCase
	changeStatus   *usecases.ChangeStatusUseCase
	deleteTicket   *usecases.DeleteTicketUseCase
	addComment     *usecases.AddCommentUseCase
	addRating      *usecases.AddRatingUseCase
	createCategory *usecases.CreateCategoryUseCase
	listCategories *usecases.ListCategoriesUseCase
	deleteCategory *usecases.DeleteCategoryUseCase
	dashboardStats *usecases.GetDashboardStatsUseCase
	generate       *appai.GenerateUseCase
}

func newUseCases(c *Container) *useCases {
	var notifier usecases.AnswerNotifier
	if c.cfg.Email.Enabled {
		notifier = email.NewSMTPAnswerNotifier(&c.cfg.Email)
	}

	var statsCache usecases.StatsCache
	if c.redis != nil {
		statsCache = cache.NewRedisDashboardStatsCache(c.redis, c.log)
	}

	renderer := markdown.NewService()
	txManager := db.NewTransactionManager(c.db)
	registry := infraai.BuildRegistry(&c.cfg.AI, c.log)

	return &useCases{
		createTicket:   usecases.NewCreateTicketUseCase(c.repos.ticketRepo, c.repos.categoryRepo, c.log),
		getTicket:      usecases.NewGetTicketUseCase(c.repos.ticketRepo, renderer, c.log),
		listTickets:    usecases.NewListTicketsUseCase(c.repos.ticketRepo, c.log),
		updateTicket:   usecases.NewUpdateTicketUseCase(c.repos.ticketRepo, c.repos.categoryRepo, notifier, c.log),
		changeStatus:   usecases.NewChangeStatusUseCase(c.repos.ticketRepo, c.log),
		deleteTicket:   usecases.NewDeleteTicketUseCase(c.repos.ticketRepo, c.log),
		addComment:     usecases.NewAddCommentUseCase(c.repos.ticketRepo, c.log),
		addRating:      usecases.NewAddRatingUseCase(c.repos.ticketRepo, c.log),
		createCategory: usecases.NewCreateCategoryUseCase(c.repos.categoryRepo, c.log),
		listCategories: usecases.NewListCategoriesUseCase(c.repos.categoryRepo, c.log),
		deleteCategory: usecases.NewDeleteCategoryUseCase(c.repos.categoryRepo, c.repos.ticketRepo, c.log),
		dashboardStats: usecases.NewGetDashboardStatsUseCase(c.repos.ticketRepo, txManager, statsCache, c.log),
		generate:       appai.NewGenerateUseCase(registry, time.Duration(c.cfg.AI.TimeoutSeconds)*time.Second, c.log),
	}
}

type handlers struct {
	ticket    *tickethandlers.TicketHandler
	category  *categoryhandlers.CategoryHandler
	dashboard *dashboardhandlers.DashboardHandler
	ai        *aihandlers.AIHandler
}

func newHandlers(ucs *useCases) *handlers {
	return &handlers{
		ticket: tickethandlers.NewTicketHandler(
			ucs.createTicket,
			ucs.getTicket,
			ucs.listTickets,
			ucs.updateTicket,
			ucs.changeStatus,
			ucs.deleteTicket,
			ucs.addComment,
			ucs.addRating,
		),
		category: categoryhandlers.NewCategoryHandler(
			ucs.createCategory,
			ucs.listCategories,
			ucs.deleteCategory,
		),
		dashboard: dashboardhandlers.NewDashboardHandler(ucs.dashboardStats),
		ai:        aihandlers.NewAIHandler(ucs.generate),
	}
}
