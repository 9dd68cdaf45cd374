// Package liquidation contém o motor de liquidação de vendas e atribuição
// de comissões. Todas as funções são puras: operam sobre snapshots em
// memória capturados pelo chamador em uma única busca, nunca fazem I/O e
// podem ser reexecutadas a cada requisição sem efeitos colaterais. O
// dashboard, as projeções e a exportação CSV consomem este mesmo pacote,
// de modo que os números nunca divergem entre as visões.
package liquidation

import (
	"github.com/hugohenrick/midnight-tickets/internal/domain/order"
	"github.com/hugohenrick/midnight-tickets/internal/domain/promoter"
)

// Bucket classifica um pedido em exatamente um dos três grupos da
// partição de liquidação.
type Bucket string

const (
	// BucketOrganic agrupa vendas sem promoter atribuível (web direto),
	// com referência órfã ou atribuídas a contas de sistema.
	BucketOrganic Bucket = "organic"
	// BucketTeam agrupa vendas de promoters com squad, incluindo o manager.
	BucketTeam Bucket = "team"
	// BucketIndependent agrupa vendas de promoters sem squad que não
	// lideram squad algum.
	BucketIndependent Bucket = "independent"
)

// Attribution é o resultado da classificação de um pedido
type Attribution struct {
	Bucket Bucket
	// Promoter é o promoter resolvido, se houver. Para vendas orgânicas
	// de conta de sistema o promoter vem preenchido, pois o relatório
	// abre uma linha por admin que registrou venda.
	Promoter *promoter.Promoter
	// TeamID é o squad creditado quando Bucket == BucketTeam
	TeamID string
}

// Resolver classifica pedidos a partir de um snapshot de promoters e squads.
// A classificação é exaustiva e mutuamente exclusiva: todo pedido concluído
// cai em exatamente um bucket, e um manager conta sempre dentro do seu
// squad, nunca duplicado entre independentes.
type Resolver struct {
	promotersByID map[string]*promoter.Promoter
	teamByManager map[string]string
}

// NewResolver cria um resolver a partir dos snapshots de promoters e squads
func NewResolver(promoters []promoter.Promoter, teams []promoter.SalesTeam) *Resolver {
	r := &Resolver{
		promotersByID: make(map[string]*promoter.Promoter, len(promoters)),
		teamByManager: make(map[string]string, len(teams)),
	}
	for i := range promoters {
		r.promotersByID[promoters[i].UserID] = &promoters[i]
	}
	for _, t := range teams {
		if t.ManagerID != "" {
			r.teamByManager[t.ManagerID] = t.ID
		}
	}
	return r
}

// Classify determina o bucket de um pedido.
// Referência de staff que não resolve para promoter conhecido é rebaixada
// silenciosamente para orgânico, nunca descartada: um código de referência
// obsoleto não pode bloquear uma venda.
func (r *Resolver) Classify(o order.Order) Attribution {
	if o.StaffID == "" {
		return Attribution{Bucket: BucketOrganic}
	}

	p, ok := r.promotersByID[o.StaffID]
	if !ok {
		// Referência órfã
		return Attribution{Bucket: BucketOrganic}
	}

	if p.IsSystemAccount() {
		return Attribution{Bucket: BucketOrganic, Promoter: p}
	}

	if p.HasTeam() {
		return Attribution{Bucket: BucketTeam, Promoter: p, TeamID: p.SalesTeamID}
	}

	if teamID, manages := r.teamByManager[p.UserID]; manages {
		return Attribution{Bucket: BucketTeam, Promoter: p, TeamID: teamID}
	}

	return Attribution{Bucket: BucketIndependent, Promoter: p}
}

// Promoter retorna o promoter do snapshot pelo user_id
func (r *Resolver) Promoter(userID string) (*promoter.Promoter, bool) {
	p, ok := r.promotersByID[userID]
	return p, ok
}

// IsIndependent verifica se o promoter pertence ao bucket de independentes:
// não é conta de sistema, não tem squad e não lidera squad algum.
func (r *Resolver) IsIndependent(p *promoter.Promoter) bool {
	if p == nil || p.IsSystemAccount() || p.HasTeam() {
		return false
	}
	_, manages := r.teamByManager[p.UserID]
	return !manages
}
