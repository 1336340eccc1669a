package users

import (
	"errors"
	"mime/multipart"
	"net/http"
	"sort"
	"strconv"

	"userpay-app/internal/api/respond"
	"userpay-app/internal/app/http/middleware"
	"userpay-app/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	svc *service.UserService
	log *zap.Logger
}

func NewHandler(svc *service.UserService, log *zap.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// GET /api/user/:id
func (h *Handler) GetUser(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}

	user, err := h.svc.GetUser(c.Request.Context(), middleware.CapabilityFrom(c), id)
	if errors.Is(err, service.ErrNotFound) {
		c.String(http.StatusNotFound, "User not found.")
		return
	}
	if err != nil {
		respond.Error(c, h.log, err, respond.InternalMessage)
		return
	}

	c.JSON(http.StatusOK, BuildUserDTO(user))
}

// POST /api/user/create
func (h *Handler) CreateUser(c *gin.Context) {
	var input CreateUserRequest
	if err := c.ShouldBind(&input); err != nil {
		c.String(http.StatusBadRequest, "Invalid request body.")
		return
	}

	user, err := h.svc.CreateUser(c.Request.Context(), middleware.CapabilityFrom(c), input.Name, input.Email, input.Password)
	if err != nil {
		respond.Error(c, h.log, err, respond.InternalMessage)
		return
	}

	c.JSON(http.StatusOK, BuildUserDTO(user))
}

// POST /api/user/upload
func (h *Handler) UploadFile(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.String(http.StatusBadRequest, "No file uploaded.")
		return
	}
	fh := firstFile(form)
	if fh == nil {
		c.String(http.StatusBadRequest, "No file uploaded.")
		return
	}

	f, err := fh.Open()
	if err != nil {
		respond.Error(c, h.log, err, respond.InternalMessage)
		return
	}
	defer f.Close()

	if _, err := h.svc.UploadUserFile(c.Request.Context(), middleware.CapabilityFrom(c), fh.Filename, f); err != nil {
		respond.Error(c, h.log, err, respond.InternalMessage)
		return
	}

	c.String(http.StatusOK, "File uploaded successfully!")
}

// POST /api/user/delete/:id
func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}

	if err := h.svc.DeleteUser(c.Request.Context(), middleware.CapabilityFrom(c), id); err != nil {
		respond.Error(c, h.log, err, respond.InternalMessage)
		return
	}

	c.String(http.StatusOK, "User deleted.")
}

func userIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid user id.")
		return 0, false
	}
	return uint(id), true
}

// firstFile prefers the "file" field and otherwise takes the first file of
// the alphabetically first field.
func firstFile(form *multipart.Form) *multipart.FileHeader {
	if files := form.File["file"]; len(files) > 0 {
		return files[0]
	}
	fields := make([]string, 0, len(form.File))
	for name := range form.File {
		fields = append(fields, name)
	}
	sort.Strings(fields)
	for _, name := range fields {
		if files := form.File[name]; len(files) > 0 {
			return files[0]
		}
	}
	return nil
}
