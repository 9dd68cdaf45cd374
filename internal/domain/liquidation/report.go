package liquidation

import (
	"errors"
	"sort"

	"github.com/hugohenrick/midnight-tickets/internal/domain/order"
	"github.com/hugohenrick/midnight-tickets/internal/domain/promoter"
)

// ErrNoEventSelected é retornado quando o relatório é pedido sem evento.
// "Nenhum evento selecionado" é um estado distinto de "evento sem vendas".
var ErrNoEventSelected = errors.New("nenhum evento selecionado")

// BucketKind identifica o tipo de linha do relatório de liquidação.
// As linhas sintéticas (independentes, orgânico) são variantes explícitas,
// não flags booleanas misturadas às linhas de squad.
type BucketKind string

const (
	KindTeam        BucketKind = "team"
	KindIndependent BucketKind = "independent"
	KindOrganic     BucketKind = "organic"
)

// Rótulos das linhas sintéticas, no idioma do produto (o relatório e o
// CSV exportado são consumidos pela operação na Colômbia).
const (
	labelIndependents = "Independientes"
	labelOrganic      = "Ventas Orgánicas"
	labelWebDirect    = "Web Directo"
	labelSystem       = "Sistema"
	labelNone         = "—"
)

// MemberRow é a abertura por membro dentro de uma linha do relatório
type MemberRow struct {
	PromoterID string        `json:"promoter_id,omitempty"`
	Name       string        `json:"name"`
	Code       string        `json:"code,omitempty"`
	Role       promoter.Role `json:"role,omitempty"`
	IsManager  bool          `json:"is_manager,omitempty"`
	Metrics    Metrics       `json:"metrics"`
}

// Row é uma linha do relatório de liquidação: um squad, o bucket de
// independentes ou o bucket orgânico
type Row struct {
	Kind        BucketKind  `json:"kind"`
	TeamID      string      `json:"team_id,omitempty"`
	TeamName    string      `json:"team_name"`
	ManagerName string      `json:"manager_name"`
	Metrics     Metrics     `json:"metrics"`
	Members     []MemberRow `json:"members"`
}

// Report é o relatório de liquidação completo de um evento
type Report struct {
	EventID     string  `json:"event_id"`
	Rows        []Row   `json:"rows"`
	GrandTotals Metrics `json:"grand_totals"`
}

// BuildLiquidationReport monta o relatório de liquidação de um evento a
// partir de snapshots consistentes de pedidos, squads e promoters.
//
// A partição é exaustiva e mutuamente exclusiva: cada pedido concluído do
// evento entra nas métricas de exatamente uma linha, e vale globalmente
// a invariante de conciliação
//
//	Σ row.NetLiquidation == GrandTotals.CashGross - GrandTotals.TotalCommission
//
// O bucket orgânico é calculado com comissão forçada a zero (vendas
// orgânicas e de admin nunca acumulam comissão) e aberto em "Web Directo"
// mais uma sublinha por admin que registrou venda pessoalmente.
func BuildLiquidationReport(orders []order.Order, teams []promoter.SalesTeam, promoters []promoter.Promoter, eventID string) (*Report, error) {
	if eventID == "" {
		return nil, ErrNoEventSelected
	}

	resolver := NewResolver(promoters, teams)

	// Particionar os pedidos concluídos do evento
	byTeam := make(map[string][]order.Order)
	byStaff := make(map[string][]order.Order)
	var independentOrders []order.Order
	var organicOrders []order.Order
	var webDirectOrders []order.Order
	organicByAdmin := make(map[string][]order.Order)

	for _, o := range orders {
		if o.EventID != eventID || !o.IsCompleted() {
			continue
		}
		attr := resolver.Classify(o)
		switch attr.Bucket {
		case BucketTeam:
			byTeam[attr.TeamID] = append(byTeam[attr.TeamID], o)
			byStaff[o.StaffID] = append(byStaff[o.StaffID], o)
		case BucketIndependent:
			independentOrders = append(independentOrders, o)
			byStaff[o.StaffID] = append(byStaff[o.StaffID], o)
		case BucketOrganic:
			organicOrders = append(organicOrders, o)
			if attr.Promoter != nil {
				organicByAdmin[attr.Promoter.UserID] = append(organicByAdmin[attr.Promoter.UserID], o)
			} else {
				webDirectOrders = append(webDirectOrders, o)
			}
		}
	}

	report := &Report{EventID: eventID}

	// 1. Uma linha por squad, com abertura por membro (manager primeiro)
	sortedTeams := make([]promoter.SalesTeam, len(teams))
	copy(sortedTeams, teams)
	sort.Slice(sortedTeams, func(i, j int) bool { return sortedTeams[i].Name < sortedTeams[j].Name })

	for _, t := range sortedTeams {
		row := Row{
			Kind:        KindTeam,
			TeamID:      t.ID,
			TeamName:    t.Name,
			ManagerName: labelNone,
			Metrics:     ComputeMetrics(byTeam[t.ID], false),
		}

		if manager, ok := resolver.Promoter(t.ManagerID); ok {
			row.ManagerName = manager.Name
			row.Members = append(row.Members, MemberRow{
				PromoterID: manager.UserID,
				Name:       manager.Name,
				Code:       manager.Code,
				Role:       manager.Role,
				IsManager:  true,
				Metrics:    ComputeMetrics(byStaff[manager.UserID], false),
			})
		}

		members := teamMembers(promoters, t)
		for _, m := range members {
			row.Members = append(row.Members, MemberRow{
				PromoterID: m.UserID,
				Name:       m.Name,
				Code:       m.Code,
				Role:       m.Role,
				Metrics:    ComputeMetrics(byStaff[m.UserID], false),
			})
		}

		report.Rows = append(report.Rows, row)
	}

	// 2. Linha sintética de independentes, mesma forma das linhas de squad
	independentRow := Row{
		Kind:        KindIndependent,
		TeamName:    labelIndependents,
		ManagerName: labelNone,
		Metrics:     ComputeMetrics(independentOrders, false),
	}
	for _, p := range independentPromoters(promoters, resolver) {
		independentRow.Members = append(independentRow.Members, MemberRow{
			PromoterID: p.UserID,
			Name:       p.Name,
			Code:       p.Code,
			Role:       p.Role,
			Metrics:    ComputeMetrics(byStaff[p.UserID], false),
		})
	}
	report.Rows = append(report.Rows, independentRow)

	// 3. Linha sintética orgânica, comissão forçada a zero
	organicRow := Row{
		Kind:        KindOrganic,
		TeamName:    labelOrganic,
		ManagerName: labelSystem,
		Metrics:     ComputeMetrics(organicOrders, true),
	}
	organicRow.Members = append(organicRow.Members, MemberRow{
		Name:    labelWebDirect,
		Metrics: ComputeMetrics(webDirectOrders, true),
	})
	adminIDs := make([]string, 0, len(organicByAdmin))
	for id := range organicByAdmin {
		adminIDs = append(adminIDs, id)
	}
	sort.Strings(adminIDs)
	for _, id := range adminIDs {
		admin, _ := resolver.Promoter(id)
		organicRow.Members = append(organicRow.Members, MemberRow{
			PromoterID: admin.UserID,
			Name:       admin.Name,
			Code:       admin.Code,
			Role:       admin.Role,
			Metrics:    ComputeMetrics(organicByAdmin[id], true),
		})
	}
	report.Rows = append(report.Rows, organicRow)

	// 4. Totais gerais: soma campo a campo de todas as linhas
	for _, row := range report.Rows {
		report.GrandTotals = report.GrandTotals.Add(row.Metrics)
	}

	return report, nil
}

// teamMembers retorna os promoters atribuídos ao squad, excluindo o
// manager (listado separadamente), ordenados por nome
func teamMembers(promoters []promoter.Promoter, t promoter.SalesTeam) []promoter.Promoter {
	var members []promoter.Promoter
	for _, p := range promoters {
		if p.SalesTeamID == t.ID && p.UserID != t.ManagerID {
			members = append(members, p)
		}
	}
	sort.Slice(members, func(i, j int) bool { return members[i].Name < members[j].Name })
	return members
}

// independentPromoters retorna os promoters do bucket de independentes,
// ordenados por nome
func independentPromoters(promoters []promoter.Promoter, resolver *Resolver) []promoter.Promoter {
	var independents []promoter.Promoter
	for i := range promoters {
		if resolver.IsIndependent(&promoters[i]) {
			independents = append(independents, promoters[i])
		}
	}
	sort.Slice(independents, func(i, j int) bool { return independents[i].Name < independents[j].Name })
	return independents
}
