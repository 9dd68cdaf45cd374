package promoter

import (
	"errors"
	"testing"
)

func TestNewPromoterNormalizesCodeAndEmail(t *testing.T) {
	p, err := NewPromoter("Juan Pérez", "  Juan.Perez@Midnight.Events ", " jperez ", RolePromoter)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if p.Code != "JPEREZ" {
		t.Errorf("Code = %q, esperado JPEREZ", p.Code)
	}
	if p.Email != "juan.perez@midnight.events" {
		t.Errorf("Email = %q, esperado normalizado em minúsculas", p.Email)
	}
}

func TestNewPromoterValidation(t *testing.T) {
	if _, err := NewPromoter("", "a@b.com", "AB", RolePromoter); !errors.Is(err, ErrEmptyName) {
		t.Errorf("nome vazio: err = %v, esperado ErrEmptyName", err)
	}
	if _, err := NewPromoter("Ana", "a@b.com", "  ", RolePromoter); !errors.Is(err, ErrEmptyCode) {
		t.Errorf("código vazio: err = %v, esperado ErrEmptyCode", err)
	}
	if _, err := NewPromoter("Ana", "a@b.com", "ANA", "SUPERUSER"); !errors.Is(err, ErrInvalidRole) {
		t.Errorf("papel desconhecido: err = %v, esperado ErrInvalidRole", err)
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	p, err := NewPromoter("Ana", "ana@midnight.events", "ANA", RoleManager)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if err := p.SetPassword("segredo123"); err != nil {
		t.Fatalf("SetPassword: err = %v", err)
	}
	if p.Password == "segredo123" {
		t.Error("senha não pode ser armazenada em texto plano")
	}
	if !p.CheckPassword("segredo123") {
		t.Error("CheckPassword deve aceitar a senha correta")
	}
	if p.CheckPassword("outra") {
		t.Error("CheckPassword deve recusar senha incorreta")
	}
}

func TestIsSystemAccountByRole(t *testing.T) {
	tests := []struct {
		role Role
		want bool
	}{
		{RoleAdmin, true},
		{RoleHeadOfSales, false},
		{RoleManager, false},
		{RolePromoter, false},
		{RoleBouncer, false},
		{RoleGuest, false},
	}

	for _, tt := range tests {
		p := Promoter{Role: tt.role}
		if got := p.IsSystemAccount(); got != tt.want {
			t.Errorf("IsSystemAccount(%s) = %v, esperado %v", tt.role, got, tt.want)
		}
	}
}

func TestHasTeam(t *testing.T) {
	p := Promoter{}
	if p.HasTeam() {
		t.Error("promoter sem squad não pode reportar HasTeam")
	}
	p.SalesTeamID = "team-1"
	if !p.HasTeam() {
		t.Error("promoter com squad deve reportar HasTeam")
	}
}
