package authenticating

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/somework/landing-api/infrastructure/repository/mocks"
	"github.com/somework/landing-api/internal/config"
	"github.com/somework/landing-api/internal/domain"
	errorcodes "github.com/somework/landing-api/pkg/apiErrors"
)

func newTestService(t *testing.T) (*Service, *mocks.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockUserRepository(ctrl)
	svc := NewService(repo, &config.Config{SecretKey: "segredo-de-teste"}).(*Service)
	return svc, repo
}

func hash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestService_LoginUser(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		setup    func(repo *mocks.MockUserRepository)
		wantErr  error
		wantCode string
	}{
		{
			name:     "Campos obrigatórios",
			email:    "",
			password: "",
			setup:    func(repo *mocks.MockUserRepository) {},
			wantErr:  ErrMissingRequiredData,
			wantCode: errorcodes.ErrMissingRequiredData,
		},
		{
			name:     "Usuário não encontrado",
			email:    "ninguem@somework.id",
			password: "Senha@123",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail("ninguem@somework.id").Return(nil, nil)
			},
			wantErr:  ErrUserNotFound,
			wantCode: errorcodes.ErrUserNotFound,
		},
		{
			name:     "Usuário desativado",
			email:    "editor@somework.id",
			password: "Senha@123",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail("editor@somework.id").Return(&domain.User{ID: 2, Active: false}, nil)
			},
			wantErr:  ErrUserDisabled,
			wantCode: errorcodes.ErrUserDisabled,
		},
		{
			name:     "Senha incorreta",
			email:    "admin@somework.id",
			password: "errada",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail("admin@somework.id").Return(&domain.User{ID: 1, Active: true, PasswordHash: hash(t, "Senha@123")}, nil)
			},
			wantErr:  ErrInvalidCredentials,
			wantCode: errorcodes.ErrInvalidCredentials,
		},
		{
			name:     "Erro no banco",
			email:    "admin@somework.id",
			password: "Senha@123",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail("admin@somework.id").Return(nil, errors.New("connection refused"))
			},
			wantCode: errorcodes.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestService(t)
			tt.setup(repo)

			token, err := svc.LoginUser(tt.email, tt.password)
			require.Error(t, err)
			assert.Empty(t, token)

			var authErr *AuthError
			require.True(t, errors.As(err, &authErr))
			assert.Equal(t, tt.wantCode, authErr.Code)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestService_LoginEValidacaoDoToken(t *testing.T) {
	svc, repo := newTestService(t)

	repo.EXPECT().GetUserByEmail("admin@somework.id").Return(&domain.User{
		ID:           1,
		Name:         "Althur",
		Email:        "admin@somework.id",
		Active:       true,
		RoleID:       domain.RoleAdmin,
		PasswordHash: hash(t, "Senha@123"),
	}, nil)

	token, err := svc.LoginUser(" Admin@Somework.id ", "Senha@123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 1, claims.UserID)
	assert.Equal(t, domain.RoleAdmin, claims.UserRoleID)
	assert.Equal(t, "admin@somework.id", claims.UserEmail)
}

func TestService_ValidateToken(t *testing.T) {
	svc, _ := newTestService(t)

	t.Run("Token expirado", func(t *testing.T) {
		svc.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }
		defer func() { svc.now = time.Now }()

		token, err := generateJWT(&domain.User{ID: 1}, "segredo-de-teste", svc.now())
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("Assinatura com outro segredo", func(t *testing.T) {
		token, err := generateJWT(&domain.User{ID: 1}, "outro-segredo", time.Now())
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Algoritmo diferente de HMAC", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, domain.Claims{UserID: 1})
		raw, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = svc.ValidateToken(raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestService_CreateUser(t *testing.T) {
	t.Run("Cria editor inativo por padrão", func(t *testing.T) {
		svc, repo := newTestService(t)

		repo.EXPECT().GetUserByEmail("novo@somework.id").Return(nil, nil)
		repo.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(u *domain.User) (*domain.User, error) {
			assert.Equal(t, domain.RoleEditor, u.RoleID)
			assert.False(t, u.Active)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("Senha@123")))
			u.ID = 10
			return u, nil
		})

		user, err := svc.CreateUser(&domain.User{Name: "Novo", Email: "NOVO@somework.id", PasswordHash: "Senha@123"})
		require.NoError(t, err)
		assert.Equal(t, 10, user.ID)
		assert.Empty(t, user.PasswordHash)
	})

	t.Run("Email já cadastrado", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.EXPECT().GetUserByEmail("novo@somework.id").Return(&domain.User{ID: 3}, nil)

		_, err := svc.CreateUser(&domain.User{Name: "Novo", Email: "novo@somework.id", PasswordHash: "x"})
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("Campos obrigatórios", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.CreateUser(&domain.User{Email: "novo@somework.id"})
		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})
}

func TestService_UpdateUser(t *testing.T) {
	name := "Editor"
	active := true
	invalidRole := 3

	t.Run("Atualiza campos informados", func(t *testing.T) {
		svc, repo := newTestService(t)

		repo.EXPECT().GetUserByID(2).Return(&domain.User{ID: 2, Name: "Antigo", RoleID: domain.RoleEditor}, nil)
		repo.EXPECT().UpdateUser(&domain.User{ID: 2, Name: "Editor", Active: true, RoleID: domain.RoleEditor}).Return(nil)

		require.NoError(t, svc.UpdateUser(&domain.UpdateUserRequest{ID: 2, Name: &name, Active: &active}))
	})

	t.Run("Role inválido", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.EXPECT().GetUserByID(2).Return(&domain.User{ID: 2}, nil)

		err := svc.UpdateUser(&domain.UpdateUserRequest{ID: 2, RoleID: &invalidRole})
		assert.ErrorIs(t, err, ErrInvalidFormat)
	})

	t.Run("Usuário inexistente", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.EXPECT().GetUserByID(9).Return(nil, nil)

		err := svc.UpdateUser(&domain.UpdateUserRequest{ID: 9})
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestService_SeedAdmin(t *testing.T) {
	t.Run("Cria administrador ativo", func(t *testing.T) {
		svc, repo := newTestService(t)

		repo.EXPECT().GetUserByEmail("admin@somework.id").Return(nil, nil)
		repo.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(u *domain.User) (*domain.User, error) {
			assert.True(t, u.Active)
			assert.Equal(t, domain.RoleAdmin, u.RoleID)
			u.ID = 1
			return u, nil
		})

		user, created, err := svc.SeedAdmin("Admin", "admin@somework.id", "Senha@123")
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, 1, user.ID)
	})

	t.Run("Administrador já existe", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.EXPECT().GetUserByEmail("admin@somework.id").Return(&domain.User{ID: 1}, nil)

		_, created, err := svc.SeedAdmin("Admin", "admin@somework.id", "Senha@123")
		require.NoError(t, err)
		assert.False(t, created)
	})
}

func TestService_GenerateStrongPassword(t *testing.T) {
	t.Run("Apenas administradores", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.EXPECT().GetUserByID(2).Return(&domain.User{ID: 2, RoleID: domain.RoleEditor}, nil)

		_, err := svc.GenerateStrongPassword(2, 3)
		assert.ErrorIs(t, err, ErrNoAdminPrivileges)
	})

	t.Run("Gera senha forte para o usuário alvo", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.EXPECT().GetUserByID(1).Return(&domain.User{ID: 1, RoleID: domain.RoleAdmin}, nil)
		repo.EXPECT().GetUserByID(3).Return(&domain.User{ID: 3}, nil)
		repo.EXPECT().UpdateUser(gomock.Any()).Return(nil)

		password, err := svc.GenerateStrongPassword(1, 3)
		require.NoError(t, err)
		assert.Len(t, password, 12)
		assert.NoError(t, svc.ValidatePasswordStrength(password))
	})
}

func TestService_ValidatePasswordStrength(t *testing.T) {
	svc, _ := newTestService(t)

	tests := []struct {
		password string
		valid    bool
	}{
		{password: "Curta@1", valid: false},
		{password: "semmaiuscula@1", valid: false},
		{password: "SEMMINUSCULA@1", valid: false},
		{password: "SemNumero@", valid: false},
		{password: "SemEspecial1", valid: false},
		{password: "Valida@123", valid: true},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			err := svc.ValidatePasswordStrength(tt.password)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrWeakPassword)
			}
		})
	}
}

func TestService_ChangePassword(t *testing.T) {
	t.Run("Senha atual incorreta", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.EXPECT().GetUserByID(1).Return(&domain.User{ID: 1, PasswordHash: hash(t, "Atual@123")}, nil)

		err := svc.ChangePassword(1, "errada", "Nova@1234")
		assert.ErrorIs(t, err, ErrCurrentPassword)
	})

	t.Run("Troca a senha", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.EXPECT().GetUserByID(1).Return(&domain.User{ID: 1, PasswordHash: hash(t, "Atual@123")}, nil)
		repo.EXPECT().UpdateUser(gomock.Any()).DoAndReturn(func(u *domain.User) error {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("Nova@1234")))
			return nil
		})

		require.NoError(t, svc.ChangePassword(1, "Atual@123", "Nova@1234"))
	})
}
