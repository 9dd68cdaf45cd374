package liquidation

import (
	"testing"
	"time"

	"github.com/hugohenrick/midnight-tickets/internal/domain/order"
	"github.com/hugohenrick/midnight-tickets/internal/domain/promoter"
)

func TestRankPromotersDateWindow(t *testing.T) {
	promoters := []promoter.Promoter{
		makePromoter("p1", "Paula", promoter.RolePromoter, ""),
	}

	inside := makeOrder("a", "p1", order.PaymentMethodCash, 100000, 8000, 2)
	inside.CreatedAt = time.Date(2025, 6, 10, 20, 0, 0, 0, time.UTC)
	outside := makeOrder("b", "p1", "bold", 50000, 4000, 1)
	outside.CreatedAt = time.Date(2025, 6, 20, 10, 0, 0, 0, time.UTC)

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	ranking := RankPromoters([]order.Order{inside, outside}, promoters, RankingFilters{
		EventID:   testEventID,
		DateStart: &start,
		DateEnd:   &end,
	})

	if len(ranking) != 1 {
		t.Fatalf("posições = %d, esperado 1", len(ranking))
	}
	if ranking[0].TicketsSold != 2 {
		t.Errorf("TicketsSold = %d, esperado 2 (apenas o pedido dentro da janela)", ranking[0].TicketsSold)
	}
	if ranking[0].Revenue != 100000 {
		t.Errorf("Revenue = %v, esperado 100000", ranking[0].Revenue)
	}
}

func TestRankPromotersDateEndIsEndOfDay(t *testing.T) {
	promoters := []promoter.Promoter{
		makePromoter("p1", "Paula", promoter.RolePromoter, ""),
	}
	o := makeOrder("a", "p1", order.PaymentMethodCash, 10000, 500, 1)
	o.CreatedAt = time.Date(2025, 6, 15, 22, 30, 0, 0, time.UTC)

	end := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	ranking := RankPromoters([]order.Order{o}, promoters, RankingFilters{DateEnd: &end})

	if len(ranking) != 1 {
		t.Fatal("pedido às 22:30 do dia final deve entrar: DateEnd é fim do dia")
	}
}

func TestRankPromotersOrderingAndTieBreak(t *testing.T) {
	promoters := []promoter.Promoter{
		makePromoter("p1", "Paula", promoter.RolePromoter, ""),
		makePromoter("p2", "Ana", promoter.RolePromoter, ""),
		makePromoter("p3", "Bruno", promoter.RolePromoter, ""),
	}
	orders := []order.Order{
		makeOrder("a", "p1", order.PaymentMethodCash, 50000, 0, 3),
		makeOrder("b", "p2", "bold", 80000, 0, 5),
		// Bruno empata com Paula em ingressos e receita: desempate por nome
		makeOrder("c", "p3", order.PaymentMethodCash, 50000, 0, 3),
	}

	ranking := RankPromoters(orders, promoters, RankingFilters{})

	want := []string{"p2", "p3", "p1"} // Ana 5; depois Bruno e Paula empatados, nome crescente
	if len(ranking) != 3 {
		t.Fatalf("posições = %d, esperado 3", len(ranking))
	}
	for i, id := range want {
		if ranking[i].PromoterID != id {
			t.Errorf("posição %d = %s, esperado %s", i, ranking[i].PromoterID, id)
		}
	}
}

func TestRankPromotersDropsZeroAndUnknown(t *testing.T) {
	promoters := []promoter.Promoter{
		makePromoter("p1", "Paula", promoter.RolePromoter, ""),
		makePromoter("p2", "Ana", promoter.RolePromoter, ""),
	}
	orders := []order.Order{
		makeOrder("a", "p1", order.PaymentMethodCash, 10000, 0, 1),
		makeOrder("b", "ghost", "bold", 99999, 0, 9),
	}
	pending := makeOrder("c", "p2", "bold", 10000, 0, 1)
	pending.Status = order.StatusPending
	orders = append(orders, pending)

	ranking := RankPromoters(orders, promoters, RankingFilters{})

	if len(ranking) != 1 || ranking[0].PromoterID != "p1" {
		t.Errorf("ranking = %+v, esperado apenas p1 (órfã e pendente fora)", ranking)
	}
}
