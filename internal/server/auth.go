package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Deepak6204/schedular-server/internal/auth"
	"github.com/Deepak6204/schedular-server/internal/mailer"
	"github.com/Deepak6204/schedular-server/internal/storage/sqlite"
	"github.com/Deepak6204/schedular-server/internal/validate"
)

// handleSignup registers a new account and opens a session for it.
func (s *Server) handleSignup(c *gin.Context) {
	var req validate.SignupPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Signup(req); err != nil {
		respondValidation(c, err)
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		s.respondStorageError(c, err)
		return
	}

	user, err := s.store.CreateUser(c.Request.Context(), sqlite.NewUser{
		Name:         req.Name,
		Email:        validate.NormalizeEmail(req.Email),
		PasswordHash: hash,
		Phone:        req.Phone,
		Organization: req.Organization,
		Plan:         req.Plan,
	})
	if errors.Is(err, sqlite.ErrEmailTaken) {
		respondError(c, http.StatusConflict, "email already in use")
		return
	}
	if err != nil {
		s.respondStorageError(c, err)
		return
	}

	token, err := s.tokens.IssueSession(user.ID, user.Email)
	if err != nil {
		s.respondStorageError(c, err)
		return
	}
	s.setTokenCookie(c, token)

	if err := s.mail.Send(user.Email, "Welcome", mailer.WelcomeBody(user.Name)); err != nil {
		s.logger.Warn("welcome mail failed", slog.String("error", err.Error()))
	}

	respondMessage(c, http.StatusCreated, gin.H{"user": user, "token": token}, "user registered successfully")
}

// handleLogin verifies credentials and opens a session.
func (s *Server) handleLogin(c *gin.Context) {
	var req validate.LoginPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Login(req); err != nil {
		respondValidation(c, err)
		return
	}

	user, err := s.store.GetUserByEmail(c.Request.Context(), validate.NormalizeEmail(req.Email))
	if errors.Is(err, sqlite.ErrUserNotFound) {
		respondError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if err != nil {
		s.respondStorageError(c, err)
		return
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		respondError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := s.tokens.IssueSession(user.ID, user.Email)
	if err != nil {
		s.respondStorageError(c, err)
		return
	}
	s.setTokenCookie(c, token)

	respondMessage(c, http.StatusOK, gin.H{"user": user, "token": token}, "login successful")
}

// handleLogout drops the session cookie.
func (s *Server) handleLogout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", !s.cfg.Debug, true)
	respondMessage(c, http.StatusOK, nil, "logout successful")
}

// handleForgotPassword mails a short-lived reset link.
func (s *Server) handleForgotPassword(c *gin.Context) {
	var req validate.ForgotPasswordPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.ForgotPassword(req); err != nil {
		respondValidation(c, err)
		return
	}

	user, err := s.store.GetUserByEmail(c.Request.Context(), validate.NormalizeEmail(req.Email))
	if errors.Is(err, sqlite.ErrUserNotFound) {
		respondError(c, http.StatusNotFound, "user not found")
		return
	}
	if err != nil {
		s.respondStorageError(c, err)
		return
	}

	resetToken, err := s.tokens.IssueReset(user.ID)
	if err != nil {
		s.respondStorageError(c, err)
		return
	}

	link := fmt.Sprintf("%s/reset-password?token=%s", s.cfg.FrontendURL, resetToken)
	if err := s.mail.Send(user.Email, "Password Reset Request", mailer.ResetPasswordBody(user.Name, link)); err != nil {
		s.logger.Error("reset mail failed", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, "failed to send reset email")
		return
	}

	respondMessage(c, http.StatusOK, nil, "password reset link sent to email")
}

// handleResetPassword applies a new password against a valid reset token.
func (s *Server) handleResetPassword(c *gin.Context) {
	var req validate.ResetPasswordPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.ResetPassword(req); err != nil {
		respondValidation(c, err)
		return
	}

	userID, err := s.tokens.VerifyReset(req.Token)
	if errors.Is(err, auth.ErrTokenExpired) {
		respondError(c, http.StatusUnauthorized, "password reset token has expired")
		return
	}
	if err != nil {
		respondError(c, http.StatusUnauthorized, "invalid token")
		return
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		s.respondStorageError(c, err)
		return
	}

	if err := s.store.UpdateUserPassword(c.Request.Context(), userID, hash); err != nil {
		if errors.Is(err, sqlite.ErrUserNotFound) {
			respondError(c, http.StatusNotFound, "user not found")
			return
		}
		s.respondStorageError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, nil, "password reset successful")
}

// handleGetProfile returns the authenticated user's account.
func (s *Server) handleGetProfile(c *gin.Context) {
	user, err := s.store.GetUserByID(c.Request.Context(), c.GetString(userIDKey))
	if errors.Is(err, sqlite.ErrUserNotFound) {
		respondError(c, http.StatusUnauthorized, "user not found")
		return
	}
	if err != nil {
		s.respondStorageError(c, err)
		return
	}
	respondData(c, http.StatusOK, user)
}

// handleUpdateProfile applies a partial update to the authenticated account.
func (s *Server) handleUpdateProfile(c *gin.Context) {
	var req validate.UpdateProfilePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.UpdateProfile(req); err != nil {
		respondValidation(c, err)
		return
	}

	user, err := s.store.UpdateUserProfile(c.Request.Context(), c.GetString(userIDKey), sqlite.ProfileUpdate{
		Name:         req.Name,
		Phone:        req.Phone,
		Organization: req.Organization,
	})
	if errors.Is(err, sqlite.ErrUserNotFound) {
		respondError(c, http.StatusUnauthorized, "user not found")
		return
	}
	if err != nil {
		s.respondStorageError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, gin.H{"user": user}, "profile updated successfully")
}

// setTokenCookie mirrors the token in an http-only cookie for browser clients.
func (s *Server) setTokenCookie(c *gin.Context, token string) {
	c.SetCookie("token", token, s.cfg.CookieMaxAge, "/", "", !s.cfg.Debug, true)
}
