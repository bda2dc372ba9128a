package services

import (
	"errors"
	"strings"
	"time"

	"github.com/ikrashahmed/taazamart/internal/models"
	"github.com/ikrashahmed/taazamart/internal/security"
	"gorm.io/gorm"
)

type AuthUserRepository interface {
	ExistsByNormalizedEmail(email string) (bool, error)
	FindByNormalizedEmail(email string) (models.User, error)
	Create(user *models.User) error
	UpdateByNormalizedEmail(email string, updates map[string]any) error
}

// UserView is what leaves the auth service: the stored user minus the
// password hash, with the admin flag computed from the operator email.
type UserView struct {
	ID             uint   `json:"id"`
	Email          string `json:"email"`
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	City           string `json:"city"`
	GoogleLocation string `json:"google_location"`
	IsAdmin        bool   `json:"is_admin"`
}

type ProfileUpdate struct {
	Name           *string `json:"name"`
	Phone          *string `json:"phone"`
	Address        *string `json:"address"`
	City           *string `json:"city"`
	GoogleLocation *string `json:"google_location"`
}

type AuthService struct {
	users       AuthUserRepository
	limiter     LoginLimiter
	secret      string
	adminEmail  string
	defaultCity string
}

func NewAuthService(users AuthUserRepository, limiter LoginLimiter, secret string, adminEmail string, defaultCity string) *AuthService {
	return &AuthService{
		users:       users,
		limiter:     limiter,
		secret:      secret,
		adminEmail:  strings.ToLower(strings.TrimSpace(adminEmail)),
		defaultCity: defaultCity,
	}
}

func (service *AuthService) Signup(email string, name string, password string) (UserView, error) {
	normalizedEmail := NormalizeEmail(email)
	sanitizedName := SanitizeInput(name)

	if err := validateSignupEmail(normalizedEmail); err != nil {
		return UserView{}, err
	}
	if err := validateSignupName(sanitizedName); err != nil {
		return UserView{}, err
	}
	if err := validateSignupPassword(password); err != nil {
		return UserView{}, err
	}

	exists, err := service.users.ExistsByNormalizedEmail(normalizedEmail)
	if err != nil {
		return UserView{}, &StoreUnavailableError{Err: err}
	}
	if exists {
		return UserView{}, &ConflictError{Message: "an account with this email already exists. please login instead."}
	}

	now := time.Now()
	user := models.User{
		Email:        normalizedEmail,
		Name:         sanitizedName,
		PasswordHash: security.HashPassword(password, service.secret),
		City:         service.defaultCity,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := service.users.Create(&user); err != nil {
		// The unique index makes a racing duplicate surface here.
		return UserView{}, &ConflictError{Message: "an account with this email already exists. please login instead."}
	}

	return service.userView(user), nil
}

func (service *AuthService) Login(email string, password string) (UserView, error) {
	normalizedEmail := NormalizeEmail(email)
	if err := validateLoginEmail(normalizedEmail); err != nil {
		return UserView{}, err
	}

	now := time.Now()
	allowed, retryAfterMinutes := service.limiter.Check(normalizedEmail, now)
	if !allowed {
		return UserView{}, &ThrottledError{RetryAfterMinutes: retryAfterMinutes}
	}

	user, err := service.users.FindByNormalizedEmail(normalizedEmail)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		service.limiter.Record(normalizedEmail, false, now)
		return UserView{}, &NotFoundError{Message: "no account found with this email. please sign up first."}
	}
	if err != nil {
		return UserView{}, &StoreUnavailableError{Err: err}
	}

	// A user without a stored hash passes verification unconditionally;
	// preserved legacy behaviour for rows created without a password.
	if user.PasswordHash != "" && !security.VerifyPassword(password, service.secret, user.PasswordHash) {
		service.limiter.Record(normalizedEmail, false, now)
		return UserView{}, &InvalidCredentialsError{}
	}

	service.limiter.Record(normalizedEmail, true, now)
	return service.userView(user), nil
}

// ResolveUser maps a session email back to a user view. A missing row is a
// NotFoundError so callers can drop the stale session; any other store
// failure is surfaced as unavailable instead of being masked.
func (service *AuthService) ResolveUser(email string) (UserView, error) {
	normalizedEmail := strings.ToLower(strings.TrimSpace(email))
	user, err := service.users.FindByNormalizedEmail(normalizedEmail)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return UserView{}, &NotFoundError{Message: "account no longer exists"}
	}
	if err != nil {
		return UserView{}, &StoreUnavailableError{Err: err}
	}
	return service.userView(user), nil
}

func (service *AuthService) IsAdminEmail(email string) bool {
	return service.adminEmail != "" && strings.EqualFold(strings.TrimSpace(email), service.adminEmail)
}

// UpdateProfile writes only the supplied fields and always refreshes
// updated_at.
func (service *AuthService) UpdateProfile(email string, update ProfileUpdate) error {
	normalizedEmail := strings.ToLower(strings.TrimSpace(email))
	if normalizedEmail == "" {
		return &UnauthenticatedError{}
	}

	updates := map[string]any{"updated_at": time.Now()}
	if update.Name != nil {
		updates["name"] = SanitizeInput(*update.Name)
	}
	if update.Phone != nil {
		updates["phone"] = SanitizeInput(*update.Phone)
	}
	if update.Address != nil {
		updates["address"] = SanitizeInput(*update.Address)
	}
	if update.City != nil {
		updates["city"] = SanitizeInput(*update.City)
	}
	if update.GoogleLocation != nil {
		updates["google_location"] = strings.TrimSpace(*update.GoogleLocation)
	}

	if err := service.users.UpdateByNormalizedEmail(normalizedEmail, updates); err != nil {
		return &StoreUnavailableError{Err: err}
	}
	return nil
}

func (service *AuthService) userView(user models.User) UserView {
	return UserView{
		ID:             user.ID,
		Email:          user.Email,
		Name:           user.Name,
		Phone:          user.Phone,
		Address:        user.Address,
		City:           user.City,
		GoogleLocation: user.GoogleLocation,
		IsAdmin:        service.IsAdminEmail(user.Email),
	}
}
