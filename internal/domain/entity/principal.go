package entity

import (
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Role etiqueta del principal autenticado.
type Role string

// Roles válidos. El rol no cambia después de la creación.
const (
	RoleAdmin        Role = "ADMIN"
	RoleManager      Role = "MANAGER"
	RoleCollaborator Role = "COLLABORATOR"
)

// Valid indica si el rol es conocido.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleManager || r == RoleCollaborator
}

// Shift turno asignado a un colaborador.
type Shift string

const (
	ShiftMatutino   Shift = "MATUTINO"
	ShiftVespertino Shift = "VESPERTINO"
)

// Valid indica si el turno es conocido.
func (s Shift) Valid() bool { return s == ShiftMatutino || s == ShiftVespertino }

// UserBase atributos comunes a colaboradores, gerentes y administradores.
type UserBase struct {
	ID             string
	Name           string
	EmployeeNumber string // identificador de login
	PasswordHash   string // bcrypt
	IsFirstLogin   bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CollaboratorProfile datos exclusivos del rol COLLABORATOR.
type CollaboratorProfile struct {
	RoleTitle      string
	Shift          Shift
	AvatarInitials string
	ManagerID      string // tenant dueño
}

// Principal variante etiquetada por Role sobre una base común.
// Profile solo existe cuando Role == RoleCollaborator.
type Principal struct {
	UserBase
	Role    Role
	Profile *CollaboratorProfile
}

// NewAdmin construye un administrador.
func NewAdmin(base UserBase) *Principal {
	return &Principal{UserBase: base, Role: RoleAdmin}
}

// NewManager construye un gerente.
func NewManager(base UserBase) *Principal {
	return &Principal{UserBase: base, Role: RoleManager}
}

// NewCollaborator construye un colaborador; las iniciales se derivan del nombre.
func NewCollaborator(base UserBase, profile CollaboratorProfile) *Principal {
	profile.AvatarInitials = Initials(base.Name)
	return &Principal{UserBase: base, Role: RoleCollaborator, Profile: &profile}
}

func (p *Principal) IsAdmin() bool        { return p != nil && p.Role == RoleAdmin }
func (p *Principal) IsManager() bool      { return p != nil && p.Role == RoleManager }
func (p *Principal) IsCollaborator() bool { return p != nil && p.Role == RoleCollaborator && p.Profile != nil }

// ManagerID gerente dueño del colaborador; vacío para otros roles.
func (p *Principal) ManagerID() string {
	if !p.IsCollaborator() {
		return ""
	}
	return p.Profile.ManagerID
}

// Rename cambia el nombre y recalcula las iniciales del colaborador.
func (p *Principal) Rename(name string) {
	p.Name = name
	if p.Profile != nil {
		p.Profile.AvatarInitials = Initials(name)
	}
}

// Clone copia profunda (el perfil es un puntero).
func (p *Principal) Clone() *Principal {
	if p == nil {
		return nil
	}
	c := *p
	if p.Profile != nil {
		prof := *p.Profile
		c.Profile = &prof
	}
	return &c
}

var upper = cases.Upper(language.Spanish)

// Initials primera letra de las dos primeras palabras del nombre, en mayúsculas y sin acentos.
// "Ana García" → "AG"; "Ángel" → "A".
func Initials(name string) string {
	var out []rune
	for _, word := range strings.Fields(name) {
		for _, r := range norm.NFD.String(word) {
			if unicode.Is(unicode.Mn, r) {
				continue
			}
			out = append(out, r)
			break
		}
		if len(out) == 2 {
			break
		}
	}
	return upper.String(string(out))
}
