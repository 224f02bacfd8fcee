package controllers

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"backoffice-app/config"
	"backoffice-app/database"
	"backoffice-app/models"
	"backoffice-app/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(DB *gorm.DB) *AuthController {
	return &AuthController{DB: DB}
}

func (c *AuthController) Logout(ctx *fiber.Ctx) error {
	sessionID, ok := ctx.Locals("sessionID").(string)
	if !ok || sessionID == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "invalid session",
		})
	}

	now := time.Now()

	result := c.DB.Model(&models.LoginLog{}).
		Where("session_id = ? AND logout_at IS NULL", sessionID).
		Update("logout_at", &now)

	if result.RowsAffected == 0 {
		// double logout or stale token, not fatal
		fmt.Println("Warning: No login log found to update logout_at for session_id:", sessionID)
	}

	var userSession models.UserSession
	if err := c.DB.Where("session_id = ? AND is_active = ? AND expires_at > ?", sessionID, true, time.Now()).First(&userSession).Error; err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "invalid session",
		})
	}

	userSession.IsActive = false
	userSession.LastActivityAt = time.Now()
	c.DB.Save(&userSession)

	ctx.Cookie(config.GetTokenCookie(""))

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Logout successful",
	})
}

func Login(ctx *fiber.Ctx) error {

	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request",
		})
	}

	if input.Email == "" || input.Password == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Missing required fields",
		})
	}

	sessionID := uuid.New().String()
	ip, ua, browser, os, device := getClientInfo(ctx)
	now := time.Now()

	// default log FAILED
	log := models.LoginLog{
		SessionID:   sessionID,
		Username:    input.Email,
		LoginAt:     &now,
		IPAddress:   ip,
		UserAgent:   ua,
		Browser:     browser,
		OS:          os,
		DeviceType:  device,
		LoginStatus: "FAILED",
		CreatedAt:   now,
	}

	db, err := database.GetDBConnection(config.DBName)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to connect to database",
		})
	}

	userRepo := repositories.NewUserRepository(db)
	mUser, lookupErr := userRepo.GetByEmailOrUsername(input.Email)

	if lookupErr != nil {
		reason := "USER_NOT_FOUND"
		log.FailureReason = &reason
		db.Create(&log)

		if errors.Is(lookupErr, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid username or password",
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": lookupErr.Error(),
		})
	}

	if bcrypt.CompareHashAndPassword(
		[]byte(mUser.Password),
		[]byte(input.Password),
	) != nil {
		reason := "WRONG_PASSWORD"
		uid := uint64(mUser.ID)
		log.UserID = &uid
		log.FailureReason = &reason
		db.Create(&log)

		return ctx.Status(401).JSON(fiber.Map{"error": "invalid credentials"})
	}

	// Another device may already hold the active session
	var active models.UserSession
	result := db.Where("user_id = ? AND is_active = ?", mUser.ID, true).First(&active)
	if result.Error == nil {
		var conflict models.LoginConflict
		conflict.ID = uuid.NewString()
		conflict.UserID = uint64(mUser.ID)
		conflict.ExpiresAt = now.Add(time.Hour * 24)
		db.Create(&conflict)

		return ctx.Status(409).JSON(fiber.Map{
			"success": false,
			"device":  device,
			"ip":      ip,
			"ua":      ua,
			"cid":     conflict.ID,
			"message": fmt.Sprintf("User already logged in on another device: %s, last activity at: %s", active.DeviceID, active.LastActivityAt.Format("2006-01-02 15:04:05")),
		})
	}

	active = models.UserSession{
		UserID:         uint64(mUser.ID),
		SessionID:      sessionID,
		DeviceID:       device,
		IPAddress:      ip,
		UserAgent:      ua,
		IsActive:       true,
		LastActivityAt: now,
		ExpiresAt:      now.Add(time.Hour * 24),
	}
	db.Create(&active)

	return LoginSuccess(sessionID, *mUser, ctx)
}

// LoginConfirm deactivates the other device's session after the user
// confirms the 409 conflict, then logs them in.
func LoginConfirm(ctx *fiber.Ctx) error {
	type Req struct {
		ConflictID string `json:"conflict_id"`
	}

	var req Req
	if err := ctx.BodyParser(&req); err != nil || req.ConflictID == "" {
		return ctx.Status(400).JSON(fiber.Map{
			"success": false,
			"message": "conflict_id required",
		})
	}

	db, err := database.GetDBConnection(config.DBName)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to connect to database",
		})
	}

	loginConflict := models.LoginConflict{}
	if err := db.Where("id = ?", req.ConflictID).First(&loginConflict).Error; err != nil {
		return ctx.Status(400).JSON(fiber.Map{
			"success": false,
			"message": "conflict_id not found",
		})
	}

	mUser := models.User{}
	if err := db.Where("id = ?", loginConflict.UserID).First(&mUser).Error; err != nil {
		return ctx.Status(400).JSON(fiber.Map{
			"success": false,
			"message": "user not found",
		})
	}

	db.Model(&models.UserSession{}).
		Where("user_id = ? AND is_active = ?", mUser.ID, true).
		Update("is_active", false)

	sessionID := uuid.New().String()
	ip, ua, _, _, device := getClientInfo(ctx)
	now := time.Now()

	newSession := models.UserSession{
		UserID:         uint64(mUser.ID),
		SessionID:      sessionID,
		IPAddress:      ip,
		UserAgent:      ua,
		IsActive:       true,
		DeviceID:       device,
		LastActivityAt: now,
		ExpiresAt:      now.Add(24 * time.Hour),
	}

	db.Create(&newSession)

	return LoginSuccess(sessionID, mUser, ctx)
}

func LoginSuccess(sessionID string, mUser models.User, ctx *fiber.Ctx) error {

	ip, ua, browser, os, device := getClientInfo(ctx)
	now := time.Now()

	db, err := database.GetDBConnection(config.DBName)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to connect to database",
		})
	}

	uid := uint64(mUser.ID)
	log := models.LoginLog{}
	log.UserID = &uid
	log.Username = mUser.Username
	log.IPAddress = ip
	log.UserAgent = ua
	log.LoginAt = &now
	log.OS = os
	log.DeviceType = device
	log.Browser = browser
	log.LoginStatus = "SUCCESS"
	log.SessionID = sessionID
	log.FailureReason = nil

	db.Create(&log)

	access_token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":    mUser.ID,
		"session_id": sessionID,
		"exp":        time.Now().Add(time.Second * time.Duration(config.JWTExpiration)).Unix(),
		"jti":        uuid.NewString(),
	})

	refresh_token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": mUser.ID,
		"exp":     time.Now().Add(time.Hour * 24).Unix(),
		"jti":     uuid.NewString(),
	})

	accessTokenString, err := access_token.SignedString([]byte(config.JWTSecret))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to generate token",
		})
	}

	refreshTokenString, err := refresh_token.SignedString([]byte(config.JWTSecret))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to generate token",
		})
	}

	ctx.Cookie(config.GetTokenCookie(refreshTokenString))

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Login successfully",
		"x_token": accessTokenString,
		"user": fiber.Map{
			"id":       mUser.ID,
			"email":    mUser.Email,
			"username": mUser.Username,
			"name":     mUser.Name,
			"role":     mUser.Role,
		},
	})
}

func RefreshToken(ctx *fiber.Ctx) error {
	tokenString := ctx.Cookies("refresh_token")
	if tokenString == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized - refresh token not found",
		})
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.JWTSecret), nil
	})

	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized",
		})
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		newToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"user_id": claims["user_id"],
			"exp":     time.Now().Add(time.Second * time.Duration(config.JWTExpiration)).Unix(),
		})
		newTokenString, err := newToken.SignedString([]byte(config.JWTSecret))
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to generate token",
			})
		}

		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"success":      true,
			"message":      "Token refreshed successfully",
			"access_token": newTokenString,
		})
	}

	return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"message": "Unauthorized",
	})
}

func getClientInfo(ctx *fiber.Ctx) (ip, ua, browser, os, device string) {
	ip = ctx.IP()
	ua = ctx.Get("User-Agent")

	uaLower := strings.ToLower(ua)

	switch {
	case strings.Contains(uaLower, "chrome"):
		browser = "Chrome"
	case strings.Contains(uaLower, "firefox"):
		browser = "Firefox"
	case strings.Contains(uaLower, "safari"):
		browser = "Safari"
	default:
		browser = "Unknown"
	}

	switch {
	case strings.Contains(uaLower, "windows"):
		os = "Windows"
	case strings.Contains(uaLower, "android"):
		os = "Android"
	case strings.Contains(uaLower, "iphone"):
		os = "iOS"
	case strings.Contains(uaLower, "linux"):
		os = "Linux"
	default:
		os = "Unknown"
	}

	if strings.Contains(uaLower, "mobile") {
		device = "MOBILE"
	} else {
		device = "DESKTOP"
	}

	return
}

func (c *AuthController) IsLoggedIn(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "User is logged in",
	})
}
