package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/domain"
	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/domain/models"
	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/repositories"
)

var jwtSecret []byte

// ConfigureAuth sets the signing secret; called once from the router.
func ConfigureAuth(secret string) {
	jwtSecret = []byte(secret)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	repo := repositories.UserRepository{}
	user, err := repo.GetByLogin(strings.TrimSpace(req.Email))
	if err != nil {
		if domain.IsNotFound(err) {
			respondError(c, http.StatusUnauthorized, "unauthorized", "wrong email/username or password", nil)
			return
		}
		RespondDomainError(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		respondError(c, http.StatusUnauthorized, "unauthorized", "wrong email/username or password", nil)
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	})

	tokenString, err := token.SignedString(jwtSecret)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "token signing failed", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": tokenString,
		"user":  user,
	})
}

type registerRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// POST /api/auth/register
func Register(c *gin.Context) {
	var req registerRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Username) == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "email and username are required", nil)
		return
	}
	if len(req.Password) < 8 {
		respondError(c, http.StatusBadRequest, "validation_error", "password must be at least 8 characters", nil)
		return
	}

	repo := repositories.UserRepository{}
	exists, err := repo.Exists(req.Email, req.Username)
	if err != nil {
		RespondDomainError(c, domain.InternalError{Msg: "user lookup failed", Err: err})
		return
	}
	if exists {
		respondError(c, http.StatusBadRequest, "conflict", "email or username already registered", nil)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "password hashing failed", nil)
		return
	}

	user := models.User{
		Name:         strings.TrimSpace(req.Name),
		Username:     strings.TrimSpace(req.Username),
		Email:        strings.TrimSpace(req.Email),
		Phone:        strings.TrimSpace(req.Phone),
		PasswordHash: string(hash),
		Role:         "user",
	}
	id, err := repo.Create(user)
	if err != nil {
		RespondDomainError(c, domain.InternalError{Msg: "user insert failed", Err: err})
		return
	}
	user.ID = id
	user.Status = "active"

	c.JSON(http.StatusCreated, gin.H{
		"message": "registered",
		"user":    user,
	})
}
