package auth

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/gestor-sucursal/internal/application/dto"
	"github.com/jhoicas/gestor-sucursal/internal/domain"
	"github.com/jhoicas/gestor-sucursal/internal/domain/entity"
	"github.com/jhoicas/gestor-sucursal/internal/domain/repository"
	"github.com/jhoicas/gestor-sucursal/internal/observability"
	"github.com/jhoicas/gestor-sucursal/pkg/jwt"
	"github.com/jhoicas/gestor-sucursal/pkg/logger"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Credentials lo que el auth necesita del store.
type Credentials interface {
	repository.PrincipalRepository
	repository.SessionRepository
}

// Session sesión del token en curso.
type Session struct {
	ID        string
	UserID    string
	ExpiresAt time.Time
}

// AuthUseCase login, cambio obligatorio de contraseña y logout.
type AuthUseCase struct {
	repo   Credentials
	hasher *PasswordHasher
	jwtCfg JWTConfig
	log    *logger.Logger
	now    func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(repo Credentials, hasher *PasswordHasher, jwtCfg JWTConfig, log *logger.Logger) *AuthUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{repo: repo, hasher: hasher, jwtCfg: jwtCfg, log: log.Component("auth"), now: time.Now}
}

// prioridad de búsqueda cuando un mismo login existe en varios roles.
var rolePriority = map[entity.Role]int{
	entity.RoleAdmin:        0,
	entity.RoleManager:      1,
	entity.RoleCollaborator: 2,
}

// Login verifica número de empleado y contraseña en orden Admin, Gerente, Colaborador y emite un JWT.
// Si el principal tiene IsFirstLogin el token solo sirve para cambiar la contraseña.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	candidates, err := uc.repo.FindByEmployeeNumber(ctx, in.EmployeeNumber)
	if err != nil {
		observability.RecordLogin("error")
		return nil, fmt.Errorf("login: %w", err)
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return rolePriority[candidates[i].Role] < rolePriority[candidates[j].Role]
	})
	for _, p := range candidates {
		if uc.hasher.Matches(p.PasswordHash, in.Password) {
			observability.RecordLogin("ok")
			uc.log.Info().Str("user_id", p.ID).Str("role", string(p.Role)).Bool("first_login", p.IsFirstLogin).Msg("login")
			return uc.issue(p)
		}
	}
	observability.RecordLogin("invalid")
	return nil, domain.ErrUnauthorized
}

// ChangePassword cambia la contraseña, limpia la bandera de primer acceso en la misma escritura,
// revoca el token actual y devuelve uno nuevo.
func (uc *AuthUseCase) ChangePassword(ctx context.Context, s Session, in dto.ChangePasswordRequest) (*dto.LoginResponse, error) {
	if err := ValidateNewPassword(in.NewPassword, in.ConfirmPassword); err != nil {
		return nil, err
	}
	p, err := uc.repo.GetPrincipal(ctx, s.UserID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrUserNotFound
	}
	hash, err := uc.hasher.Hash(in.NewPassword)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateCredential(ctx, p.ID, hash); err != nil {
		return nil, fmt.Errorf("change password: %w", err)
	}
	if err := uc.repo.RevokeSession(ctx, s.ID, s.ExpiresAt); err != nil {
		uc.log.Error().Err(err).Str("session_id", s.ID).Msg("revoke after password change")
	}
	p.PasswordHash = hash
	p.IsFirstLogin = false
	return uc.issue(p)
}

// Logout revoca la sesión hasta que su token expire.
func (uc *AuthUseCase) Logout(ctx context.Context, s Session) error {
	if s.ID == "" {
		return nil
	}
	return uc.repo.RevokeSession(ctx, s.ID, s.ExpiresAt)
}

// IsRevoked indica si la sesión fue cerrada.
func (uc *AuthUseCase) IsRevoked(ctx context.Context, sessionID string) (bool, error) {
	if sessionID == "" {
		return false, nil
	}
	return uc.repo.IsSessionRevoked(ctx, sessionID, uc.now())
}

// Me datos del principal de la sesión.
func (uc *AuthUseCase) Me(ctx context.Context, userID string) (*dto.PrincipalResponse, error) {
	p, err := uc.repo.GetPrincipal(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrUserNotFound
	}
	return ToPrincipalResponse(p), nil
}

func (uc *AuthUseCase) issue(p *entity.Principal) (*dto.LoginResponse, error) {
	sub := jwt.Subject{
		UserID:     p.ID,
		TenantID:   p.ID,
		Role:       string(p.Role),
		FirstLogin: p.IsFirstLogin,
		SessionID:  uuid.New().String(),
	}
	switch {
	case p.IsCollaborator():
		sub.TenantID = p.ManagerID()
	case p.IsAdmin():
		sub.TenantID = ""
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, sub, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: uc.now().Add(time.Duration(uc.jwtCfg.ExpMinutes) * time.Minute),
		User:      *ToPrincipalResponse(p),
	}, nil
}

// ToPrincipalResponse mapea un principal sin exponer su hash.
func ToPrincipalResponse(p *entity.Principal) *dto.PrincipalResponse {
	if p == nil {
		return nil
	}
	out := &dto.PrincipalResponse{
		ID:             p.ID,
		Name:           p.Name,
		EmployeeNumber: p.EmployeeNumber,
		Role:           string(p.Role),
		IsFirstLogin:   p.IsFirstLogin,
	}
	if p.Profile != nil {
		out.ManagerID = p.Profile.ManagerID
		out.RoleTitle = p.Profile.RoleTitle
		out.Shift = string(p.Profile.Shift)
		out.AvatarInitials = p.Profile.AvatarInitials
	}
	return out
}
