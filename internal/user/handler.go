package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"notesapp/internal/user/model"
	"notesapp/internal/user/service"
	"notesapp/middleware"
	"notesapp/pkg/logger"
	"notesapp/pkg/response"
	"notesapp/pkg/validation"
)

type UserHandler struct {
	Service *service.UserService
}

func NewUserHandler(service *service.UserService) *UserHandler {
	return &UserHandler{Service: service}
}

func (h *UserHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req model.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.FullName = strings.TrimSpace(req.FullName)
	req.Email = strings.TrimSpace(req.Email)

	if err := validation.Struct(req); err != nil {
		response.Error(w, r, err)
		return
	}

	user, accessToken, err := h.Service.CreateAccount(r.Context(), req)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	logger.Sugar.Infof("Account created for user %s", user.ID)
	response.OK(w, "Account created successfully", response.Payload{
		"user":        user,
		"accessToken": accessToken,
	})
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.Email = strings.TrimSpace(req.Email)

	if err := validation.Struct(req); err != nil {
		response.Error(w, r, err)
		return
	}

	user, accessToken, err := h.Service.Login(r.Context(), req)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.OK(w, "Login successful", response.Payload{
		"email":       user.Email,
		"accessToken": accessToken,
	})
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	user, err := h.Service.GetUser(r.Context(), userID)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.OK(w, "", response.Payload{"user": user})
}

func (h *UserHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.ListUsers(r.Context())
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.OK(w, "Users fetched successfully", response.Payload{"users": users})
}

// Logout only acknowledges; the client discards its token.
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	response.OK(w, "Logout successful", nil)
}
