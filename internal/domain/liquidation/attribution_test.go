package liquidation

import (
	"testing"

	"github.com/hugohenrick/midnight-tickets/internal/domain/order"
	"github.com/hugohenrick/midnight-tickets/internal/domain/promoter"
)

func testRoster() ([]promoter.Promoter, []promoter.SalesTeam) {
	promoters := []promoter.Promoter{
		makePromoter("mgr-1", "Marta", promoter.RoleManager, ""),
		makePromoter("p-team", "Paula", promoter.RolePromoter, "team-1"),
		makePromoter("p-indep", "Ivan", promoter.RolePromoter, ""),
		makePromoter("adm-1", "Alex", promoter.RoleAdmin, ""),
	}
	teams := []promoter.SalesTeam{
		{ID: "team-1", Name: "Squad Norte", ManagerID: "mgr-1"},
	}
	return promoters, teams
}

func TestClassifyBuckets(t *testing.T) {
	promoters, teams := testRoster()
	resolver := NewResolver(promoters, teams)

	tests := []struct {
		name       string
		staffID    string
		wantBucket Bucket
		wantTeamID string
	}{
		{"sem staff é orgânico", "", BucketOrganic, ""},
		{"referência órfã é orgânico", "ghost-404", BucketOrganic, ""},
		{"admin é orgânico", "adm-1", BucketOrganic, ""},
		{"membro de squad", "p-team", BucketTeam, "team-1"},
		{"manager conta no próprio squad", "mgr-1", BucketTeam, "team-1"},
		{"promoter sem squad é independente", "p-indep", BucketIndependent, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attr := resolver.Classify(makeOrder("x", tt.staffID, "bold", 10000, 500, 1))
			if attr.Bucket != tt.wantBucket {
				t.Errorf("bucket = %s, esperado %s", attr.Bucket, tt.wantBucket)
			}
			if attr.TeamID != tt.wantTeamID {
				t.Errorf("teamID = %q, esperado %q", attr.TeamID, tt.wantTeamID)
			}
		})
	}
}

func TestClassifyAdminKeepsPromoterReference(t *testing.T) {
	promoters, teams := testRoster()
	resolver := NewResolver(promoters, teams)

	attr := resolver.Classify(makeOrder("x", "adm-1", "cash", 10000, 500, 1))
	if attr.Promoter == nil || attr.Promoter.UserID != "adm-1" {
		t.Fatal("venda de admin deve manter a referência ao promoter para a sublinha do relatório")
	}
}

func TestClassifyIsExhaustiveAndExclusive(t *testing.T) {
	promoters, teams := testRoster()
	resolver := NewResolver(promoters, teams)

	orders := []order.Order{
		makeOrder("1", "", "bold", 1000, 0, 1),
		makeOrder("2", "ghost", "cash", 1000, 100, 1),
		makeOrder("3", "adm-1", "cash", 1000, 100, 1),
		makeOrder("4", "mgr-1", "bold", 1000, 100, 1),
		makeOrder("5", "p-team", "cash", 1000, 100, 1),
		makeOrder("6", "p-indep", "bold", 1000, 100, 1),
	}

	counts := map[Bucket]int{}
	for _, o := range orders {
		counts[resolver.Classify(o).Bucket]++
	}

	total := counts[BucketOrganic] + counts[BucketTeam] + counts[BucketIndependent]
	if total != len(orders) {
		t.Errorf("partição cobriu %d pedidos, esperado %d", total, len(orders))
	}
	if counts[BucketOrganic] != 3 || counts[BucketTeam] != 2 || counts[BucketIndependent] != 1 {
		t.Errorf("contagens por bucket = %v, esperado organic:3 team:2 independent:1", counts)
	}
}

func TestIsIndependentExcludesManagers(t *testing.T) {
	promoters, teams := testRoster()
	resolver := NewResolver(promoters, teams)

	for _, p := range promoters {
		got := resolver.IsIndependent(&p)
		want := p.UserID == "p-indep"
		if got != want {
			t.Errorf("IsIndependent(%s) = %v, esperado %v", p.UserID, got, want)
		}
	}
}
