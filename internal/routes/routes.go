package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VitaplanServices/appointment-scheduler/internal/clock"
	"github.com/VitaplanServices/appointment-scheduler/internal/config"
	"github.com/VitaplanServices/appointment-scheduler/internal/handlers"
	infraRepo "github.com/VitaplanServices/appointment-scheduler/internal/infra/repository"
	"github.com/VitaplanServices/appointment-scheduler/internal/middleware"
	"github.com/VitaplanServices/appointment-scheduler/internal/notify"
	ucAppointment "github.com/VitaplanServices/appointment-scheduler/internal/usecase/appointment"
	ucUser "github.com/VitaplanServices/appointment-scheduler/internal/usecase/user"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, notifier *notify.Dispatcher) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	userRepo := infraRepo.NewUserGormRepository(db)

	clk := clock.System(cfg.Timezone)

	// ======================================================
	// USE CASES - APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		userRepo,
		notifier,
		clk,
	)

	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)
	getAppointmentUC := ucAppointment.NewGetAppointment(appointmentRepo)

	updateAppointmentUC := ucAppointment.NewUpdateAppointment(
		appointmentRepo,
		userRepo,
		clk,
	)

	removeAppointmentUC := ucAppointment.NewRemoveAppointment(appointmentRepo)

	// ======================================================
	// USE CASES - USERS
	// ======================================================
	createUserUC := ucUser.NewCreateUser(userRepo)
	listUsersUC := ucUser.NewListUsers(userRepo)
	getUserUC := ucUser.NewGetUser(userRepo)
	updateUserUC := ucUser.NewUpdateUser(userRepo)
	removeUserUC := ucUser.NewRemoveUser(userRepo, appointmentRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(userRepo, cfg)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		listAppointmentsUC,
		getAppointmentUC,
		updateAppointmentUC,
		removeAppointmentUC,
	)

	userHandler := handlers.NewUserHandler(
		createUserUC,
		listUsersUC,
		getUserUC,
		updateUserUC,
		removeUserUC,
	)

	// ======================================================
	// ROUTES
	// ======================================================
	r.POST("/auth/login", authHandler.Login)

	user := r.Group("/user")
	{
		user.POST("", userHandler.Create)
		user.GET("", userHandler.List)
		user.GET("/:id", userHandler.Get)
		user.PATCH("/:id", userHandler.Update)
		user.DELETE("/:id", userHandler.Remove)
	}

	appointment := r.Group("/appointment")
	appointment.Use(middleware.AuthMiddleware(cfg))
	{
		appointment.POST("", appointmentHandler.Create)
		appointment.GET("", appointmentHandler.List)
		appointment.GET("/:id", appointmentHandler.Get)
		appointment.PATCH("/:id", appointmentHandler.Update)
		appointment.DELETE("/:id", appointmentHandler.Remove)
	}
}
