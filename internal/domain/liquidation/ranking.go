package liquidation

import (
	"sort"
	"time"

	"github.com/hugohenrick/midnight-tickets/internal/domain/order"
	"github.com/hugohenrick/midnight-tickets/internal/domain/promoter"
)

// RankingFilters define a janela opcional do ranking de promoters
type RankingFilters struct {
	EventID   string
	DateStart *time.Time
	// DateEnd é inclusivo e tratado como fim do dia (23:59:59 local)
	DateEnd *time.Time
}

// RankedPromoter é uma posição do ranking de promoters
type RankedPromoter struct {
	PromoterID  string        `json:"promoter_id"`
	Name        string        `json:"name"`
	Code        string        `json:"code"`
	Role        promoter.Role `json:"role"`
	TicketsSold int           `json:"tickets_sold"`
	Revenue     float64       `json:"revenue"`
	OrderCount  int           `json:"order_count"`
}

// RankPromoters ordena os promoters por volume de ingressos vendidos
// dentro da janela opcional de evento e datas. Promoters sem ingressos na
// janela são omitidos. Desempate determinístico: ingressos decrescente,
// depois receita decrescente, depois nome crescente.
func RankPromoters(orders []order.Order, promoters []promoter.Promoter, filters RankingFilters) []RankedPromoter {
	byID := make(map[string]*promoter.Promoter, len(promoters))
	for i := range promoters {
		byID[promoters[i].UserID] = &promoters[i]
	}

	var end time.Time
	if filters.DateEnd != nil {
		d := *filters.DateEnd
		end = time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 0, d.Location())
	}

	totals := make(map[string]*RankedPromoter)
	for _, o := range orders {
		if !o.IsCompleted() || o.StaffID == "" {
			continue
		}
		if filters.EventID != "" && o.EventID != filters.EventID {
			continue
		}
		if filters.DateStart != nil && o.CreatedAt.Before(*filters.DateStart) {
			continue
		}
		if filters.DateEnd != nil && o.CreatedAt.After(end) {
			continue
		}
		p, ok := byID[o.StaffID]
		if !ok {
			// Referência órfã; ranking só lista promoters conhecidos
			continue
		}

		entry, ok := totals[p.UserID]
		if !ok {
			entry = &RankedPromoter{
				PromoterID: p.UserID,
				Name:       p.Name,
				Code:       p.Code,
				Role:       p.Role,
			}
			totals[p.UserID] = entry
		}
		entry.TicketsSold += o.TicketCount()
		entry.Revenue += o.Total
		entry.OrderCount++
	}

	ranking := make([]RankedPromoter, 0, len(totals))
	for _, entry := range totals {
		if entry.TicketsSold == 0 {
			continue
		}
		ranking = append(ranking, *entry)
	}

	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].TicketsSold != ranking[j].TicketsSold {
			return ranking[i].TicketsSold > ranking[j].TicketsSold
		}
		if ranking[i].Revenue != ranking[j].Revenue {
			return ranking[i].Revenue > ranking[j].Revenue
		}
		return ranking[i].Name < ranking[j].Name
	})

	return ranking
}
