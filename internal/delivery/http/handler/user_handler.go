package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"doctors-portal-server/internal/delivery/dto"
	"doctors-portal-server/internal/domain/entity"
	"doctors-portal-server/internal/usecase"
	"doctors-portal-server/pkg/response"

	"github.com/gorilla/mux"
)

type UserHandler struct {
	userUsecase usecase.UserUsecase
}

func NewUserHandler(userUsecase usecase.UserUsecase) *UserHandler {
	return &UserHandler{userUsecase: userUsecase}
}

// Upsert replaces or creates the user record for the path email and
// returns the write result together with a fresh one-hour token bound
// to that email.
func (h *UserHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	var profile map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	result, err := h.userUsecase.UpsertUser(r.Context(), email, profile)
	if err != nil {
		response.InternalServerError(w, "failed to upsert user")
		return
	}

	response.JSON(w, http.StatusOK, result)
}

// PromoteAdmin grants the admin role to the target email. The route is
// admin-gated, so the requester's own role has already been verified.
func (h *UserHandler) PromoteAdmin(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	result, err := h.userUsecase.PromoteAdmin(r.Context(), email)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			response.NotFound(w, "user not found")
			return
		}
		response.InternalServerError(w, "failed to update user role")
		return
	}

	response.JSON(w, http.StatusOK, result)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	deleted, err := h.userUsecase.DeleteUser(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidUserID) {
			response.BadRequest(w, "invalid user id")
			return
		}
		response.InternalServerError(w, "failed to delete user")
		return
	}

	response.JSON(w, http.StatusOK, dto.DeleteResponse{DeletedCount: deleted})
}

// List returns every user record verbatim, stored profile fields included.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userUsecase.ListUsers(r.Context())
	if err != nil {
		response.InternalServerError(w, "failed to fetch users")
		return
	}
	if users == nil {
		users = []entity.User{}
	}
	response.JSON(w, http.StatusOK, users)
}

// AdminStatus reports whether the given email's user holds the admin
// role. An unknown email is a 404.
func (h *UserHandler) AdminStatus(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	isAdmin, err := h.userUsecase.IsAdmin(r.Context(), email)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			response.NotFound(w, "user not found")
			return
		}
		response.InternalServerError(w, "failed to fetch user")
		return
	}

	response.JSON(w, http.StatusOK, dto.AdminStatusResponse{Admin: isAdmin})
}
