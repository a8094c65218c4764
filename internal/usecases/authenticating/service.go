package authenticating

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"
	"unicode"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-intelligence-api/infrastructure/repository"
	"github.com/vfg2006/marketing-intelligence-api/internal/config"
	"github.com/vfg2006/marketing-intelligence-api/internal/domain"
	"github.com/vfg2006/marketing-intelligence-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

const (
	adminRoleID        = 1
	defaultRoleID      = 3
	generatedPwdLength = 12
)

type Authenticator interface {
	CreateUser(user *domain.User) (*domain.User, error)
	UpdateUser(user *domain.UpdateUserRequest) error
	ListUser() ([]*domain.User, error)
	LoginUser(email, password string) (string, error)
	GetUserProfile(userID int) (*domain.User, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	ResetPassword(requestUserID, targetUserID int) (string, error)
	ChangePassword(userID int, currentPassword, newPassword string) error
	GetUserLinkedAccounts(userID int) ([]*domain.Account, error)
	ManageUserAccounts(userID int, accountIDs []string) error
}

type Service struct {
	userRepo    repository.UserRepository
	accountRepo repository.AccountRepository
	cfg         *config.Config
}

func NewService(userRepo repository.UserRepository, accountRepo repository.AccountRepository, cfg *config.Config) Authenticator {
	return &Service{
		userRepo:    userRepo,
		accountRepo: accountRepo,
		cfg:         cfg,
	}
}

func (s *Service) CreateUser(user *domain.User) (*domain.User, error) {
	if user.Email == "" || user.Name == "" || user.Lastname == "" || user.PasswordHash == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email, nome, sobrenome e senha são obrigatórios")
	}

	user.Email = normalizeEmail(user.Email)

	existing, err := s.userRepo.GetUserByEmail(user.Email)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}
	if existing != nil {
		return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Email já cadastrado")
	}

	if err := validatePasswordStrength(user.PasswordHash); err != nil {
		return nil, NewAuthError(ErrWeakPassword, apiErrors.ErrInvalidFormat, err.Error())
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	if user.RoleID == 0 {
		user.RoleID = defaultRoleID
	}

	// Novos usuários nascem inativos até um administrador liberar o acesso
	user.PasswordHash = string(hashedPassword)
	user.Active = false

	user, err = s.userRepo.CreateUser(user)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao criar usuário")
	}

	return user, nil
}

func (s *Service) UpdateUser(request *domain.UpdateUserRequest) error {
	if request.ID == 0 {
		return NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "ID do usuário é obrigatório")
	}

	user, err := s.userRepo.GetUserByID(request.ID)
	if err != nil {
		return err
	}
	if user == nil {
		return NewUserAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, request.ID, "Usuário não encontrado para atualização")
	}

	if request.Name != nil {
		user.Name = *request.Name
	}
	if request.Lastname != nil {
		user.Lastname = *request.Lastname
	}
	if request.Email != nil {
		user.Email = normalizeEmail(*request.Email)
	}
	if request.Active != nil {
		user.Active = *request.Active
	}
	if request.RoleID != nil {
		user.RoleID = *request.RoleID
	}
	if request.Deleted != nil {
		now := time.Now()
		user.Deleted = *request.Deleted
		user.DeletedAt = &now
	}

	return s.userRepo.UpdateUser(user)
}

func (s *Service) ListUser() ([]*domain.User, error) {
	return s.userRepo.ListUser()
}

func (s *Service) LoginUser(email, password string) (string, error) {
	if email == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	email = normalizeEmail(email)

	user, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}

	if user == nil {
		return "", NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "Usuário não encontrado")
	}

	if !user.Active {
		return "", NewUserAuthError(ErrUserDisabled, apiErrors.ErrUserDisabled, user.ID, "Conta desativada")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, user.ID, "Senha incorreta")
	}

	token, err := s.generateJWT(user)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
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
		return nil, NewUserAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, userID, "Usuário não encontrado")
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *Service) generateJWT(user *domain.User) (string, error) {
	claims := domain.Claims{
		UserID:       user.ID,
		UserName:     user.Name,
		UserLastname: user.Lastname,
		UserEmail:    user.Email,
		UserActive:   user.Active,
		UserRoleID:   user.RoleID,
		UserAccounts: user.LinkedAccounts,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.cfg.Auth.TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Auth.SecretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// ResetPassword gera uma senha forte para o usuário alvo. Apenas
// administradores podem redefinir a senha de outro usuário.
func (s *Service) ResetPassword(requestUserID, targetUserID int) (string, error) {
	requestUser, err := s.userRepo.GetUserByID(requestUserID)
	if err != nil {
		return "", err
	}
	if requestUser == nil {
		return "", NewUserAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, requestUserID, "Usuário solicitante não encontrado")
	}
	if requestUser.RoleID != adminRoleID {
		return "", NewUserAuthError(ErrInsufficientPrivilege, apiErrors.ErrInsufficientPrivilege, requestUserID, "Apenas administradores podem redefinir senhas")
	}

	targetUser, err := s.userRepo.GetUserByID(targetUserID)
	if err != nil {
		return "", err
	}
	if targetUser == nil {
		return "", NewUserAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, targetUserID, "Usuário alvo não encontrado")
	}

	newPassword, err := generateStrongPassword(generatedPwdLength)
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

// ChangePassword permite ao próprio usuário trocar a senha mediante a atual
func (s *Service) ChangePassword(userID int, currentPassword, newPassword string) error {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return NewUserAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, userID, "Usuário não encontrado")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, userID, "Senha atual incorreta")
	}

	if err := validatePasswordStrength(newPassword); err != nil {
		return NewAuthError(ErrWeakPassword, apiErrors.ErrInvalidFormat, err.Error())
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.PasswordHash = string(hashedPassword)
	return s.userRepo.UpdateUser(user)
}

// GetUserLinkedAccounts retorna as contas ativas vinculadas ao usuário
func (s *Service) GetUserLinkedAccounts(userID int) ([]*domain.Account, error) {
	accountIDs, err := s.userRepo.GetUserLinkedAccounts(userID)
	if err != nil {
		return nil, err
	}

	accounts := make([]*domain.Account, 0, len(accountIDs))
	for _, id := range accountIDs {
		account, err := s.accountRepo.GetAccountByID(id)
		if err != nil {
			return nil, err
		}

		if account == nil || account.Status != domain.AccountStatusActive {
			continue
		}

		accounts = append(accounts, account)
	}

	return accounts, nil
}

// ManageUserAccounts substitui o conjunto de contas vinculadas ao usuário.
// Falhas parciais de vínculo são registradas e não interrompem o restante.
func (s *Service) ManageUserAccounts(userID int, accountIDs []string) error {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return NewUserAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, userID, "Usuário não encontrado")
	}

	current, err := s.userRepo.GetUserLinkedAccounts(userID)
	if err != nil {
		return err
	}

	desired := make(map[string]struct{}, len(accountIDs))
	for _, id := range accountIDs {
		desired[id] = struct{}{}
	}

	existing := make(map[string]struct{}, len(current))
	for _, id := range current {
		existing[id] = struct{}{}

		if _, keep := desired[id]; !keep {
			if err := s.userRepo.UnlinkUserAccount(userID, id); err != nil {
				logrus.Warnf("Erro ao desvincular conta %s do usuário %d: %v", id, userID, err)
			}
		}
	}

	for _, id := range accountIDs {
		if _, already := existing[id]; already {
			continue
		}

		if err := s.userRepo.LinkUserAccount(userID, id); err != nil {
			logrus.Warnf("Erro ao vincular conta %s ao usuário %d: %v", id, userID, err)
		}
	}

	return nil
}

func normalizeEmail(s string) string {
	email := strings.ToLower(strings.TrimSpace(s))
	return strings.ReplaceAll(email, " ", "")
}

// validatePasswordStrength exige ao menos 8 caracteres com maiúscula,
// minúscula, número e caractere especial
func validatePasswordStrength(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("a senha deve conter pelo menos 8 caracteres")
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool

	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsDigit(char):
			hasNumber = true
		case unicode.IsPunct(char) || unicode.IsSymbol(char):
			hasSpecial = true
		}
	}

	if !hasUpper {
		return fmt.Errorf("a senha deve conter pelo menos uma letra maiúscula")
	}
	if !hasLower {
		return fmt.Errorf("a senha deve conter pelo menos uma letra minúscula")
	}
	if !hasNumber {
		return fmt.Errorf("a senha deve conter pelo menos um número")
	}
	if !hasSpecial {
		return fmt.Errorf("a senha deve conter pelo menos um caractere especial")
	}

	return nil
}

// generateStrongPassword sorteia uma senha com pelo menos um caractere de
// cada classe e embaralha o resultado
func generateStrongPassword(length int) (string, error) {
	if length < 8 {
		length = 8
	}

	const (
		lowerChars   = "abcdefghijklmnopqrstuvwxyz"
		upperChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
		numberChars  = "0123456789"
		specialChars = "!@#$%^&*()-_=+[]{}|;:,.<>?"
		allChars     = lowerChars + upperChars + numberChars + specialChars
	)

	password := make([]byte, 0, length)

	for _, charset := range []string{lowerChars, upperChars, numberChars, specialChars} {
		char, err := randomChar(charset)
		if err != nil {
			return "", err
		}
		password = append(password, char)
	}

	for len(password) < length {
		char, err := randomChar(allChars)
		if err != nil {
			return "", err
		}
		password = append(password, char)
	}

	for i := range password {
		j, err := randomInt(int64(len(password)))
		if err != nil {
			return "", err
		}
		password[i], password[j] = password[j], password[i]
	}

	return string(password), nil
}

func randomChar(charset string) (byte, error) {
	n, err := randomInt(int64(len(charset)))
	if err != nil {
		return 0, err
	}
	return charset[n], nil
}

func randomInt(max int64) (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(max))
	if err != nil {
		return 0, err
	}
	return int(n.Int64()), nil
}
