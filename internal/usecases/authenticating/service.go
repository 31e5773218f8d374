package authenticating

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/somework/landing-api/infrastructure/repository"
	"github.com/somework/landing-api/internal/config"
	"github.com/somework/landing-api/internal/domain"
	errorcodes "github.com/somework/landing-api/pkg/apiErrors"
)

const tokenTTL = 24 * time.Hour

type Authenticator interface {
	CreateUser(user *domain.User) (*domain.User, error)
	UpdateUser(user *domain.UpdateUserRequest) error
	ListUser() ([]*domain.User, error)
	LoginUser(email, password string) (string, error)
	GetUserProfile(userID int) (*domain.User, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	GenerateStrongPassword(requestUserID, targetUserID int) (string, error)
	ChangePassword(userID int, currentPassword, newPassword string) error
	ValidatePasswordStrength(password string) error
	SeedAdmin(name, email, password string) (*domain.User, bool, error)
}

type Service struct {
	userRepo repository.UserRepository
	cfg      *config.Config
	now      func() time.Time
}

func NewService(userRepo repository.UserRepository, cfg *config.Config) Authenticator {
	return &Service{
		userRepo: userRepo,
		cfg:      cfg,
		now:      time.Now,
	}
}

func (s *Service) UpdateUser(user *domain.UpdateUserRequest) error {
	if user.ID == 0 {
		return NewAuthError(ErrMissingRequiredData, errorcodes.ErrMissingRequiredData, "ID é obrigatório")
	}

	userDatabase, err := s.userRepo.GetUserByID(user.ID)
	if err != nil {
		return NewAuthError(err, errorcodes.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}
	if userDatabase == nil {
		return NewUserAuthError(ErrUserNotFound, errorcodes.ErrUserNotFound, user.ID, fmt.Sprintf("user not found to ID: %d", user.ID))
	}

	if user.Name != nil {
		userDatabase.Name = *user.Name
	}

	if user.Email != nil {
		userDatabase.Email = handleEmail(*user.Email)
	}

	if user.Active != nil {
		userDatabase.Active = *user.Active
	}

	if user.RoleID != nil {
		if *user.RoleID != domain.RoleAdmin && *user.RoleID != domain.RoleEditor {
			return NewAuthError(ErrInvalidFormat, errorcodes.ErrInvalidFormat, "role_id inválido")
		}
		userDatabase.RoleID = *user.RoleID
	}

	return s.userRepo.UpdateUser(userDatabase)
}

func (s *Service) CreateUser(user *domain.User) (*domain.User, error) {
	if user.Email == "" || user.Name == "" || user.PasswordHash == "" {
		return nil, NewAuthError(ErrMissingRequiredData, errorcodes.ErrMissingRequiredData, "Email, nome e senha são obrigatórios")
	}

	user.Email = handleEmail(user.Email)

	userDatabase, err := s.userRepo.GetUserByEmail(user.Email)
	if err != nil {
		return nil, NewAuthError(err, errorcodes.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}
	if userDatabase != nil {
		return nil, NewAuthError(ErrUserAlreadyExists, errorcodes.ErrUserAlreadyExists, "Email já cadastrado")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	if user.RoleID == 0 {
		user.RoleID = domain.RoleEditor
	}

	user.PasswordHash = string(hashedPassword)
	user.Active = false

	user, err = s.userRepo.CreateUser(user)
	if err != nil {
		return nil, NewAuthError(err, errorcodes.ErrDatabaseOperation, "Erro ao criar usuário")
	}

	user.PasswordHash = ""
	return user, nil
}

// SeedAdmin cria um administrador ativo quando o email ainda não existe.
// O segundo retorno indica se o usuário foi criado agora.
func (s *Service) SeedAdmin(name, email, password string) (*domain.User, bool, error) {
	email = handleEmail(email)
	if email == "" || password == "" {
		return nil, false, NewAuthError(ErrMissingRequiredData, errorcodes.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	existing, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, false, err
	}

	user, err := s.userRepo.CreateUser(&domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Active:       true,
		RoleID:       domain.RoleAdmin,
	})
	if err != nil {
		return nil, false, err
	}

	return user, true, nil
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}

func (s *Service) ListUser() ([]*domain.User, error) {
	users, err := s.userRepo.ListUser()
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		u.PasswordHash = ""
	}

	return users, nil
}

func (s *Service) LoginUser(email, password string) (string, error) {
	if email == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, errorcodes.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	email = handleEmail(email)

	user, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		return "", NewAuthError(err, errorcodes.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}

	if user == nil {
		return "", NewAuthError(ErrUserNotFound, errorcodes.ErrUserNotFound, "Usuário não encontrado")
	}

	if !user.Active {
		return "", NewUserAuthError(ErrUserDisabled, errorcodes.ErrUserDisabled, user.ID, "Conta desativada")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", NewUserAuthError(ErrInvalidCredentials, errorcodes.ErrInvalidCredentials, user.ID, "Senha incorreta")
	}

	token, err := generateJWT(user, s.cfg.SecretKey, s.now())
	if err != nil {
		return "", NewAuthError(err, errorcodes.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	return token, nil
}

func (s *Service) GetUserProfile(userID int) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		logrus.Error(err)
		return nil, err
	}

	if user == nil {
		return nil, NewUserAuthError(ErrUserNotFound, errorcodes.ErrUserNotFound, userID, "Usuário não encontrado")
	}

	user.PasswordHash = ""
	return user, nil
}

func generateJWT(user *domain.User, secretKey string, now time.Time) (string, error) {
	claims := domain.Claims{
		UserID:     user.ID,
		UserName:   user.Name,
		UserEmail:  user.Email,
		UserActive: user.Active,
		UserRoleID: user.RoleID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, errorcodes.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, errorcodes.ErrInvalidToken, err.Error())
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, NewAuthError(ErrInvalidToken, errorcodes.ErrInvalidToken, "")
}

// GenerateStrongPassword gera uma senha forte para o usuário alvo.
// Apenas administradores podem gerar novas senhas.
func (s *Service) GenerateStrongPassword(requestUserID, targetUserID int) (string, error) {
	requestUser, err := s.userRepo.GetUserByID(requestUserID)
	if err != nil {
		return "", err
	}
	if requestUser == nil {
		return "", NewUserAuthError(ErrUserNotFound, errorcodes.ErrUserNotFound, requestUserID, "usuário solicitante não encontrado")
	}
	if requestUser.RoleID != domain.RoleAdmin {
		return "", NewUserAuthError(ErrNoAdminPrivileges, errorcodes.ErrInsufficientPrivilege, requestUserID, "")
	}

	targetUser, err := s.userRepo.GetUserByID(targetUserID)
	if err != nil {
		return "", err
	}
	if targetUser == nil {
		return "", NewUserAuthError(ErrUserNotFound, errorcodes.ErrUserNotFound, targetUserID, "usuário alvo não encontrado")
	}

	newPassword, err := generateStrongPassword(12)
	if err != nil {
		return "", err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	targetUser.PasswordHash = string(hashedPassword)
	if err := s.userRepo.UpdateUser(targetUser); err != nil {
		return "", err
	}

	return newPassword, nil
}

const (
	lowerChars   = "abcdefghijklmnopqrstuvwxyz"
	upperChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	numberChars  = "0123456789"
	specialChars = "!@#$%^&*()-_=+[]{}|;:,.<>?"
)

const passwordAttempts = 20

// generateStrongPassword sorteia senhas até obter uma com todas as classes de caractere
func generateStrongPassword(length int) (string, error) {
	if length < 8 {
		length = 8
	}

	alphabet := lowerChars + upperChars + numberChars + specialChars
	for i := 0; i < passwordAttempts; i++ {
		password, err := gonanoid.Generate(alphabet, length)
		if err != nil {
			return "", err
		}
		if hasAllClasses(password) {
			return password, nil
		}
	}

	return "", errors.New("não foi possível gerar uma senha forte")
}

func hasAllClasses(password string) bool {
	return strings.ContainsAny(password, lowerChars) &&
		strings.ContainsAny(password, upperChars) &&
		strings.ContainsAny(password, numberChars) &&
		strings.ContainsAny(password, specialChars)
}

// ValidatePasswordStrength exige 8 caracteres com maiúsculas, minúsculas, números e especiais
func (s *Service) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return NewAuthError(ErrWeakPassword, errorcodes.ErrInvalidFormat, "a senha deve conter pelo menos 8 caracteres")
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, char := range password {
		switch {
		case strings.ContainsRune(lowerChars, char):
			hasLower = true
		case strings.ContainsRune(upperChars, char):
			hasUpper = true
		case strings.ContainsRune(numberChars, char):
			hasNumber = true
		case strings.ContainsRune(specialChars, char):
			hasSpecial = true
		}
	}

	switch {
	case !hasUpper:
		return NewAuthError(ErrWeakPassword, errorcodes.ErrInvalidFormat, "a senha deve conter pelo menos uma letra maiúscula")
	case !hasLower:
		return NewAuthError(ErrWeakPassword, errorcodes.ErrInvalidFormat, "a senha deve conter pelo menos uma letra minúscula")
	case !hasNumber:
		return NewAuthError(ErrWeakPassword, errorcodes.ErrInvalidFormat, "a senha deve conter pelo menos um número")
	case !hasSpecial:
		return NewAuthError(ErrWeakPassword, errorcodes.ErrInvalidFormat, "a senha deve conter pelo menos um caractere especial")
	}

	return nil
}

// ChangePassword altera a senha do próprio usuário após conferir a senha atual
func (s *Service) ChangePassword(userID int, currentPassword, newPassword string) error {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return err
	}

	if user == nil {
		return NewUserAuthError(ErrUserNotFound, errorcodes.ErrUserNotFound, userID, "")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return NewUserAuthError(ErrCurrentPassword, errorcodes.ErrInvalidCredentials, userID, "")
	}

	if currentPassword == newPassword {
		return NewUserAuthError(ErrSamePassword, errorcodes.ErrInvalidRequest, userID, "")
	}

	if err := s.ValidatePasswordStrength(newPassword); err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.PasswordHash = string(hashedPassword)
	return s.userRepo.UpdateUser(user)
}
