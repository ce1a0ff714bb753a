package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"souqStore/domain"
	"souqStore/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type UserService interface {
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	GetAllUsers(ctx context.Context) ([]domain.User, error)
	GetUserByID(ctx context.Context, id uint64) (domain.User, error)
	UpdateUser(ctx context.Context, user *domain.User) (domain.User, error)
	DeleteUser(ctx context.Context, id uint64) error
}

type UserHandler struct {
	userService UserService
	validator   *validator.Validate
	timeout     time.Duration
}

func NewUserHandler(userService UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
		validator:   validator.New(),
		timeout:     10 * time.Second,
	}
}

type UserRequest struct {
	Name string `json:"name" validate:"required"`
}

func (h *UserHandler) CreateUser(c echo.Context) error {
	var req UserRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "name is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	user, err := h.userService.CreateUser(ctx, &domain.User{Name: req.Name})
	if err != nil {
		logger.Error("Failed to create user", err)
		return c.JSON(http.StatusInternalServerError, newServerError(err))
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(user))
}

func (h *UserHandler) GetAllUsers(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	users, err := h.userService.GetAllUsers(ctx)
	if err != nil {
		logger.Error("Failed to get all users", err)
		return c.JSON(http.StatusInternalServerError, newServerError(err))
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(users))
}

func (h *UserHandler) GetUserByID(c echo.Context) error {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid user id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid user id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	user, err := h.userService.GetUserByID(ctx, userID)
	if err != nil {
		if err.Error() == "user not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to get user by id", err)
		return c.JSON(http.StatusInternalServerError, newServerError(err))
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(user))
}

func (h *UserHandler) UpdateUser(c echo.Context) error {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid user id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid user id"})
	}

	var req UserRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "name is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	user, err := h.userService.UpdateUser(ctx, &domain.User{ID: userID, Name: req.Name})
	if err != nil {
		if err.Error() == "user not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to update user", err)
		return c.JSON(http.StatusInternalServerError, newServerError(err))
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(user))
}

func (h *UserHandler) DeleteUser(c echo.Context) error {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid user id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid user id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.userService.DeleteUser(ctx, userID); err != nil {
		if err.Error() == "user not found" || err.Error() == "invalid user id" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to delete user", err)
		return c.JSON(http.StatusInternalServerError, newServerError(err))
	}

	return c.NoContent(http.StatusNoContent)
}
