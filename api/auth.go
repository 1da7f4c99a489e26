package api

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/Dorian509/BackEnd/internal/hydration"
	"github.com/Dorian509/BackEnd/pkg/models"
	"github.com/Dorian509/BackEnd/pkg/repository"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	profileRepo   repository.ProfileRepo
	svc           *hydration.Service
	jwtSecret     string
	tokenDuration time.Duration
}

// NewAuthHandler creates a new AuthHandler with required dependencies.
func NewAuthHandler(pr repository.ProfileRepo, svc *hydration.Service, jwtSecret string, tokenDuration time.Duration) *AuthHandler {
	return &AuthHandler{profileRepo: pr, svc: svc, jwtSecret: jwtSecret, tokenDuration: tokenDuration}
}

type registerRequest struct {
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Password      string  `json:"password"`
	WeightKg      int     `json:"weightKg"`
	ActivityLevel string  `json:"activityLevel,omitempty"`
	Climate       string  `json:"climate,omitempty"`
	Timezone      *string `json:"timezone,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token   string          `json:"token"`
	Profile *models.Profile `json:"profile,omitempty"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if err := validateBody(r.Context(), registerSchema, body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req registerRequest
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	level, climate, err := parseAttributes(req.ActivityLevel, req.Climate)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx := r.Context()

	exists, err := h.profileRepo.EmailExists(ctx, req.Email)
	if err != nil {
		http.Error(w, "Error checking email", http.StatusInternalServerError)
		return
	}
	if exists {
		http.Error(w, "Email already registered", http.StatusConflict)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "Error hashing password", http.StatusInternalServerError)
		return
	}

	profile, err := h.svc.CreateProfile(ctx, req.Name, req.Email, string(hash), hydration.ProfileInput{
		WeightKg:      req.WeightKg,
		ActivityLevel: level,
		Climate:       climate,
		Timezone:      req.Timezone,
	})
	if err != nil {
		http.Error(w, "Error creating profile", http.StatusInternalServerError)
		return
	}

	tokenStr, err := h.signToken(profile)
	if err != nil {
		http.Error(w, "Error signing token", http.StatusInternalServerError)
		return
	}

	writeJSON(w, authResponse{Token: tokenStr, Profile: profile}, http.StatusCreated)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		http.Error(w, "Missing fields", http.StatusBadRequest)
		return
	}

	profile, err := h.profileRepo.GetProfileByEmail(r.Context(), req.Email)
	if err != nil || profile == nil {
		http.Error(w, "Credentials not found", http.StatusUnauthorized)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(req.Password)) != nil {
		http.Error(w, "Credentials not found", http.StatusUnauthorized)
		return
	}

	tokenStr, err := h.signToken(profile)
	if err != nil {
		http.Error(w, "Error signing token", http.StatusInternalServerError)
		return
	}

	writeJSON(w, authResponse{Token: tokenStr}, http.StatusOK)
}

func (h *AuthHandler) signToken(p *models.Profile) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": p.ID,
		"email":   p.Email,
		"exp":     time.Now().Add(h.tokenDuration).Unix(),
	})
	return token.SignedString([]byte(h.jwtSecret))
}

// parseAttributes turns the optional enum strings into model values, leaving
// them empty when omitted so the profile factory applies the defaults.
func parseAttributes(level, climate string) (models.ActivityLevel, models.Climate, error) {
	var l models.ActivityLevel
	var c models.Climate
	var err error
	if level != "" {
		if l, err = models.ParseActivityLevel(level); err != nil {
			return "", "", err
		}
	}
	if climate != "" {
		if c, err = models.ParseClimate(climate); err != nil {
			return "", "", err
		}
	}
	return l, c, nil
}
