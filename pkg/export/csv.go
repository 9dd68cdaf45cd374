// Package export serializa os relatórios de liquidação e de vendas em CSV.
// A ordem e o texto das colunas são contrato com as planilhas da operação:
// qualquer mudança quebra os importadores existentes.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/hugohenrick/midnight-tickets/internal/domain/event"
	"github.com/hugohenrick/midnight-tickets/internal/domain/liquidation"
	"github.com/hugohenrick/midnight-tickets/internal/domain/order"
	"github.com/hugohenrick/midnight-tickets/internal/domain/promoter"
)

// Cabeçalhos fixos dos exports (contrato byte a byte)
var (
	liquidationHeader = []string{
		"Squad",
		"Manager",
		"Ventas Digital($)",
		"Ventas Efectivo($)",
		"Recaudo Efectivo",
		"Comision Total",
		"A Liquidar (Neto)",
	}
	salesDetailHeader = []string{
		"Nombre Cliente",
		"Correo Electronico",
		"Cantidad",
		"Tipo Boleta",
		"Valor Total",
		"Fecha Compra",
		"Medio Pago",
		"Promotor",
		"Etapa",
	}
)

const totalsLabel = "TOTALES"

// rótulo para vendas sem promoter no detalhe de vendas
const organicLabel = "Orgánico"

// WriteLiquidationCSV serializa o relatório de liquidação: uma linha por
// squad/bucket e uma linha de rodapé TOTALES.
func WriteLiquidationCSV(w io.Writer, report *liquidation.Report) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(liquidationHeader); err != nil {
		return fmt.Errorf("erro ao escrever cabeçalho: %w", err)
	}

	for _, row := range report.Rows {
		record := []string{
			row.TeamName,
			row.ManagerName,
			money(row.Metrics.DigitalGross),
			money(row.Metrics.CashGross),
			money(row.Metrics.CashGross),
			money(row.Metrics.TotalCommission),
			money(row.Metrics.NetLiquidation),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("erro ao escrever linha: %w", err)
		}
	}

	totals := []string{
		totalsLabel,
		"",
		money(report.GrandTotals.DigitalGross),
		money(report.GrandTotals.CashGross),
		money(report.GrandTotals.CashGross),
		money(report.GrandTotals.TotalCommission),
		money(report.GrandTotals.NetLiquidation),
	}
	if err := cw.Write(totals); err != nil {
		return fmt.Errorf("erro ao escrever totais: %w", err)
	}

	cw.Flush()
	return cw.Error()
}

// WriteSalesDetailCSV serializa o detalhe de vendas de um evento: uma
// linha por item do pedido, não por pedido. Um pedido com três tipos de
// boleta no carrinho produz três linhas.
func WriteSalesDetailCSV(w io.Writer, orders []order.Order, promoters []promoter.Promoter, tiers []event.TicketTier) error {
	promoterByID := make(map[string]string, len(promoters))
	for _, p := range promoters {
		promoterByID[p.UserID] = p.Name
	}
	stageByTier := make(map[string]event.Stage, len(tiers))
	for _, t := range tiers {
		stageByTier[t.ID] = t.Stage
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(salesDetailHeader); err != nil {
		return fmt.Errorf("erro ao escrever cabeçalho: %w", err)
	}

	for _, o := range orders {
		if !o.IsCompleted() {
			continue
		}
		promoterName := organicLabel
		if name, ok := promoterByID[o.StaffID]; ok && o.StaffID != "" {
			promoterName = name
		}
		for _, item := range o.Items {
			record := []string{
				o.CustomerName,
				o.CustomerEmail,
				strconv.Itoa(item.Quantity),
				item.TierName,
				money(item.Subtotal),
				o.CreatedAt.Format("2006-01-02 15:04:05"),
				o.PaymentMethod,
				promoterName,
				string(stageByTier[item.TierID]),
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("erro ao escrever linha: %w", err)
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// money formata valores monetários sem zeros desnecessários
func money(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
