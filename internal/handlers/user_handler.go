package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	userdomain "github.com/VitaplanServices/appointment-scheduler/internal/domain/user"
	"github.com/VitaplanServices/appointment-scheduler/internal/httperr"
	"github.com/VitaplanServices/appointment-scheduler/internal/models"
	ucUser "github.com/VitaplanServices/appointment-scheduler/internal/usecase/user"
)

type UserHandler struct {
	createUC *ucUser.CreateUser
	listUC   *ucUser.ListUsers
	getUC    *ucUser.GetUser
	updateUC *ucUser.UpdateUser
	removeUC *ucUser.RemoveUser
}

func NewUserHandler(
	createUC *ucUser.CreateUser,
	listUC *ucUser.ListUsers,
	getUC *ucUser.GetUser,
	updateUC *ucUser.UpdateUser,
	removeUC *ucUser.RemoveUser,
) *UserHandler {
	return &UserHandler{
		createUC: createUC,
		listUC:   listUC,
		getUC:    getUC,
		updateUC: updateUC,
		removeUC: removeUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateUserRequest struct {
	Name     string          `json:"name" binding:"required"`
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required,min=6"`
	UserType models.UserType `json:"userType" binding:"omitempty,oneof=user professional"`
	Document string          `json:"document" binding:"required"`
	Phone    string          `json:"phone" binding:"required"`
	CRN      string          `json:"crn"`

	AppointmentTime *time.Time `json:"appointmentTime"`
}

type UpdateUserRequest struct {
	Name     *string          `json:"name"`
	Email    *string          `json:"email" binding:"omitempty,email"`
	UserType *models.UserType `json:"userType" binding:"omitempty,oneof=user professional"`
	Document *string          `json:"document"`
	Phone    *string          `json:"phone"`
	CRN      *string          `json:"crn"`
	Active   *bool            `json:"active"`

	AppointmentTime *time.Time `json:"appointmentTime"`

	// Accepted but ignored: passwords are immutable through this path.
	Password *string `json:"password"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	u, err := h.createUC.Execute(c.Request.Context(), ucUser.CreateUserInput{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		UserType:        req.UserType,
		Document:        req.Document,
		Phone:           req.Phone,
		CRN:             req.CRN,
		AppointmentTime: req.AppointmentTime,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, u)
}

func (h *UserHandler) List(c *gin.Context) {
	search := userdomain.SearchParams{
		Name:   c.Query("name"),
		Email:  c.Query("email"),
		CRN:    c.Query("crn"),
		Active: c.Query("active"),
	}

	envelope, err := h.listUC.Execute(c.Request.Context(), search, paginationFromQuery(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, envelope)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	u, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, u)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	u, err := h.updateUC.Execute(c.Request.Context(), id, ucUser.UpdateUserInput{
		Name:            req.Name,
		Email:           req.Email,
		UserType:        req.UserType,
		Document:        req.Document,
		Phone:           req.Phone,
		CRN:             req.CRN,
		Active:          req.Active,
		AppointmentTime: req.AppointmentTime,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, u)
}

func (h *UserHandler) Remove(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.removeUC.Execute(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
