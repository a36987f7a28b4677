package routes

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/mkelley412/youth-group-backend/config"
	"github.com/mkelley412/youth-group-backend/internal/attendance"
	"github.com/mkelley412/youth-group-backend/internal/auditlog"
	"github.com/mkelley412/youth-group-backend/internal/checkin"
	"github.com/mkelley412/youth-group-backend/internal/event"
	"github.com/mkelley412/youth-group-backend/internal/graph"
	"github.com/mkelley412/youth-group-backend/internal/health"
	"github.com/mkelley412/youth-group-backend/internal/notes"
	"github.com/mkelley412/youth-group-backend/internal/person"
	"github.com/mkelley412/youth-group-backend/internal/registration"
	"github.com/mkelley412/youth-group-backend/internal/reports"
	"github.com/mkelley412/youth-group-backend/internal/search"
	"github.com/mkelley412/youth-group-backend/internal/smallgroup"
	"github.com/mkelley412/youth-group-backend/internal/summary"
	"github.com/mkelley412/youth-group-backend/middleware"
	"github.com/mkelley412/youth-group-backend/utils"

	_ "github.com/mkelley412/youth-group-backend/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Services groups everything wired up at startup so main can hand the
// Kafka consumer its dependencies.
type Services struct {
	Attendance *attendance.Service
}

// SetupRoutes wires repositories, services, and handlers, and mounts
// every REST and GraphQL route.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) *Services {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: false,
	}))
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.Metrics())

	// Repositories & services
	auditRepo := auditlog.NewRepository(db)
	auditSvc := auditlog.NewService(auditRepo)
	auditHandler := auditlog.NewHandler(auditSvc)

	personRepo := person.NewRepository(db)
	personSvc := person.NewService(personRepo, auditSvc)
	personHandler := person.NewHandler(personSvc)

	eventRepo := event.NewRepository(db)
	eventSvc := event.NewService(eventRepo, auditSvc)
	eventHandler := event.NewHandler(eventSvc)

	groupRepo := smallgroup.NewRepository(db)
	groupSvc := smallgroup.NewService(groupRepo, auditSvc)
	groupHandler := smallgroup.NewHandler(groupSvc)

	regRepo := registration.NewRepository(db)
	regSvc := registration.NewService(regRepo, auditSvc)
	regHandler := registration.NewHandler(regSvc)

	attendanceRepo := attendance.NewRepository(db)
	attendanceSvc := attendance.NewService(attendanceRepo, auditSvc)
	attendanceHandler := attendance.NewHandler(attendanceSvc)

	checkinStore := checkin.NewRedisStore(utils.RedisClient)
	checkinDir := checkin.NewDirectory(db)
	checkinSvc := checkin.NewService(checkinStore, checkinDir, auditSvc)
	checkinHandler := checkin.NewHandler(checkinSvc)

	notesStore := notes.NewFirestoreStore(utils.FirestoreClient)
	notesSvc := notes.NewService(notesStore, auditSvc)
	notesHandler := notes.NewHandler(notesSvc)

	summarySvc := summary.NewService(eventSvc, regRepo, checkinStore, notesStore)
	summaryHandler := summary.NewHandler(summarySvc)

	searchSvc := search.NewService(db)
	searchHandler := search.NewHandler(searchSvc)

	reportsSvc := reports.NewService(db, reports.NewExporter())
	reportsHandler := reports.NewHandler(reportsSvc)

	healthHandler := health.NewHandler(db, utils.RedisClient)

	// GraphQL
	schema, err := graph.NewSchema(&graph.Resolver{
		People:        personSvc,
		Events:        eventSvc,
		SmallGroups:   groupSvc,
		Registrations: regSvc,
		Notes:         notesSvc,
		Checkins:      checkinSvc,
		Summaries:     summarySvc,
	})
	if err != nil {
		log.Fatalf("❌ Failed to build GraphQL schema: %v", err)
	}
	graphHandler := graph.NewHandler(schema)

	// Operational endpoints
	r.GET("/healthz", healthHandler.Basic)
	r.GET("/health/detailed", healthHandler.Detailed)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.POST("/graphql", middleware.RateLimiter(), graphHandler.Serve)

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimiter())

	// ===========================
	// 👤 People & roles
	api.GET("/people", personHandler.ListPeople)
	api.POST("/people", personHandler.CreatePerson)
	api.GET("/people/:id", personHandler.GetPerson)
	api.PATCH("/people/:id", personHandler.UpdatePerson)
	api.DELETE("/people/:id", personHandler.DeletePerson)
	api.GET("/people/:id/roles", personHandler.GetRoles)
	api.POST("/people/:id/roles/attendee", personHandler.AddAttendeeRole)
	api.POST("/people/:id/roles/leader", personHandler.AddLeaderRole)
	api.POST("/people/:id/roles/volunteer", personHandler.AddVolunteerRole)
	api.DELETE("/attendees/:id", personHandler.RemoveAttendeeRole)
	api.DELETE("/leaders/:id", personHandler.RemoveLeaderRole)
	api.DELETE("/volunteers/:id", personHandler.RemoveVolunteerRole)

	// ===========================
	// 🎪 Events
	api.GET("/events", eventHandler.ListEvents)
	api.POST("/events", eventHandler.CreateEvent)
	api.GET("/events/upcoming", eventHandler.GetUpcomingEvents)
	api.GET("/events/stats", eventHandler.GetEventStats)
	api.GET("/events/:id", eventHandler.GetEvent)
	api.PATCH("/events/:id", eventHandler.UpdateEvent)
	api.GET("/events/:id/summary", summaryHandler.GetComprehensiveEventSummary)

	// ===========================
	// 👥 Small groups
	api.GET("/small-groups", groupHandler.ListGroups)
	api.POST("/small-groups", groupHandler.CreateGroup)
	api.GET("/small-groups/:id", groupHandler.GetGroup)
	api.PUT("/small-groups/:id", groupHandler.UpdateGroup)
	api.DELETE("/small-groups/:id", groupHandler.DeleteGroup)
	api.GET("/small-groups/:id/members", groupHandler.ListMembers)
	api.POST("/small-groups/:id/members", groupHandler.AddMember)
	api.DELETE("/small-groups/:id/members/:membershipId", groupHandler.RemoveMember)
	api.GET("/small-groups/:id/leaders", groupHandler.ListLeaders)
	api.POST("/small-groups/:id/leaders", groupHandler.AddLeader)
	api.DELETE("/small-groups/:id/leaders/:membershipId", groupHandler.RemoveLeader)

	// ===========================
	// 📝 Registrations
	api.POST("/registrations", regHandler.Register)
	api.GET("/registrations/:id", regHandler.GetRegistration)
	api.DELETE("/registrations/:id", regHandler.DeleteRegistration)
	api.GET("/events/:id/registrations", regHandler.ListByEvent)
	api.GET("/events/:id/registrations/counts", regHandler.CountsByEvent)

	// ===========================
	// ✅ Attendance & live check-ins
	api.POST("/attendance", attendanceHandler.RecordAttendance)
	api.DELETE("/attendance/:id", attendanceHandler.DeleteAttendance)
	api.GET("/events/:id/attendance", attendanceHandler.ListByEvent)
	api.GET("/people/:id/attendance", attendanceHandler.ListByPerson)
	api.POST("/events/:id/checkins", checkinHandler.CheckIn)
	api.GET("/events/:id/checkins", checkinHandler.GetLiveCheckIns)
	api.DELETE("/events/:id/checkins", checkinHandler.ResetCheckIns)
	api.DELETE("/events/:id/checkins/:studentId", checkinHandler.CheckOut)

	// ===========================
	// 📒 Document store: event types, notes, parent contacts
	api.GET("/event-types", notesHandler.ListEventTypes)
	api.PUT("/event-types", notesHandler.UpsertEventType)
	api.GET("/event-types/:name", notesHandler.GetEventType)
	api.DELETE("/event-types/:name", notesHandler.DeleteEventType)
	api.GET("/people/:id/notes", notesHandler.ListPersonNotes)
	api.POST("/people/:id/notes", notesHandler.AddPersonNote)
	api.DELETE("/notes/person/:noteId", notesHandler.DeletePersonNote)
	api.GET("/people/:id/parent-contacts", notesHandler.ListParentContacts)
	api.POST("/people/:id/parent-contacts", notesHandler.AddParentContact)
	api.DELETE("/notes/parent-contact/:contactId", notesHandler.DeleteParentContact)
	api.GET("/events/:id/notes", notesHandler.ListEventNotes)
	api.POST("/events/:id/notes", notesHandler.AddEventNote)
	api.DELETE("/notes/event/:noteId", notesHandler.DeleteEventNote)

	// ===========================
	// 🔍 Search, reports, audit
	api.GET("/search", searchHandler.Search)
	api.GET("/reports/events/:id/roster", reportsHandler.ExportEventRoster)
	api.GET("/reports/people/:id/attendance", reportsHandler.ExportAttendanceHistory)
	api.GET("/audit-logs", auditHandler.GetAuditLogs)
	api.GET("/audit-logs/stats", auditHandler.GetAuditLogStats)
	api.GET("/audit-logs/:id", auditHandler.GetAuditLogByID)

	return &Services{Attendance: attendanceSvc}
}
