package auth

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/kantin-api/internal/application/dto"
	"github.com/jhoicas/kantin-api/internal/domain"
	"github.com/jhoicas/kantin-api/pkg/jwt"
)

// RoleAdmin único rol de la aplicación: el panel completo es de administración.
const RoleAdmin = "admin"

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login del panel admin con el código de acceso compartido.
// El código nunca se guarda en claro: se compara contra un hash bcrypt
// (configurado, o generado al construir el caso de uso a partir del plano).
type AuthUseCase struct {
	accessCodeHash []byte
	jwtCfg         JWTConfig
}

// NewAuthUseCase construye el caso de uso. Si accessCodeHash está vacío,
// hashea accessCode con bcrypt en el arranque.
func NewAuthUseCase(accessCode, accessCodeHash string, jwtCfg JWTConfig) (*AuthUseCase, error) {
	hash := []byte(accessCodeHash)
	if len(hash) == 0 {
		generated, err := bcrypt.GenerateFromPassword([]byte(accessCode), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hash = generated
	}
	return &AuthUseCase{accessCodeHash: hash, jwtCfg: jwtCfg}, nil
}

// Login verifica el código de acceso, genera el JWT de sesión y lo retorna.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	code := strings.TrimSpace(in.AccessCode)
	if code == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := bcrypt.CompareHashAndPassword(uc.accessCodeHash, []byte(code)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, uuid.NewString(), RoleAdmin, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token}, nil
}
