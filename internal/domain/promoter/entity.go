package promoter

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmptyName   = errors.New("nome do promoter não pode ser vazio")
	ErrEmptyCode   = errors.New("código do promoter não pode ser vazio")
	ErrInvalidRole = errors.New("papel inválido")
)

// Role representa o papel do promoter no sistema
type Role string

const (
	RoleGuest       Role = "GUEST"
	RolePromoter    Role = "PROMOTER"
	RoleManager     Role = "MANAGER"
	RoleHeadOfSales Role = "HEAD_OF_SALES"
	RoleAdmin       Role = "ADMIN"
	RoleBouncer     Role = "BOUNCER"
)

// IsValid verifica se o papel é um dos papéis conhecidos
func (r Role) IsValid() bool {
	switch r {
	case RoleGuest, RolePromoter, RoleManager, RoleHeadOfSales, RoleAdmin, RoleBouncer:
		return true
	}
	return false
}

// Promoter representa um membro da equipe de vendas
type Promoter struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	// Code é o identificador único de login/referência usado nos links
	// de venda (ex.: "JPEREZ").
	Code        string `json:"code"`
	Role        Role   `json:"role"`
	SalesTeamID string `json:"sales_team_id,omitempty"`
	ManagerID   string `json:"manager_id,omitempty"`
	Password    string `json:"-"`
	// Totais derivados do livro de pedidos, recalculados na leitura.
	// Nunca são incrementados transacionalmente.
	TotalSales            float64   `json:"total_sales"`
	TotalCommissionEarned float64   `json:"total_commission_earned"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// SalesTeam representa um squad de vendas liderado por um manager
type SalesTeam struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ManagerID string    `json:"manager_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewPromoter cria um novo promoter
func NewPromoter(name, email, code string, role Role) (*Promoter, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, ErrEmptyCode
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}

	now := time.Now()
	return &Promoter{
		UserID:    uuid.New().String(),
		Name:      name,
		Email:     strings.ToLower(strings.TrimSpace(email)),
		Code:      code,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// NewSalesTeam cria um novo squad de vendas
func NewSalesTeam(name, managerID string) (*SalesTeam, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	now := time.Now()
	return &SalesTeam{
		ID:        uuid.New().String(),
		Name:      name,
		ManagerID: managerID,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// SetPassword configura a senha do promoter com hash bcrypt
func (p *Promoter) SetPassword(password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	p.Password = string(hashed)
	return nil
}

// CheckPassword verifica se a senha fornecida é válida
func (p *Promoter) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(p.Password), []byte(password)) == nil
}

// IsSystemAccount verifica se a conta é de sistema/administração.
// Contas de sistema nunca acumulam comissão e suas vendas são tratadas
// como orgânicas na liquidação. O predicado é baseado exclusivamente no
// papel, sem identificadores mágicos.
func (p *Promoter) IsSystemAccount() bool {
	return p.Role == RoleAdmin
}

// HasTeam verifica se o promoter está atribuído a um squad
func (p *Promoter) HasTeam() bool {
	return p.SalesTeamID != ""
}
