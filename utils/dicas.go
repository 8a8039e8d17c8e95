package utils

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/wallacygomes/siscofi/internal/database"
	"github.com/wallacygomes/siscofi/models"
)

// GerarDicas monta dicas personalizadas a partir das movimentações e metas do
// usuário. As regras são simples e avaliadas na hora, nada é armazenado.
func GerarDicas(pool *pgxpool.Pool, usuarioID int) ([]models.Dica, error) {
	var dicas []models.Dica

	resumo, err := database.ResumoDashboard(pool, usuarioID)
	if err != nil {
		return nil, err
	}

	if resumo.SaldoAtual.IsNegative() {
		dicas = append(dicas, models.Dica{
			Titulo:    "Saldo negativo",
			Descricao: "Seu saldo está no vermelho. Reveja os gastos do mês e priorize quitar o essencial antes de novas compras.",
		})
	}

	if resumo.GanhosMes.GreaterThan(decimal.Zero) && resumo.GastosMes.GreaterThan(resumo.GanhosMes) {
		dicas = append(dicas, models.Dica{
			Titulo:    "Gastos acima dos ganhos",
			Descricao: "Este mês você gastou mais do que ganhou. Tente identificar gastos que podem ser cortados ou adiados.",
		})
	}

	gastos, err := database.GastosPorCategoria(pool, usuarioID)
	if err != nil {
		return nil, err
	}
	if len(gastos) > 0 && resumo.GastosMes.GreaterThan(decimal.Zero) {
		maior := gastos[0]
		participacao := maior.Total.Div(resumo.GastosMes).Mul(decimal.NewFromInt(100))
		if participacao.GreaterThanOrEqual(decimal.NewFromInt(40)) {
			dicas = append(dicas, models.Dica{
				Titulo: "Concentração de gastos",
				Descricao: fmt.Sprintf("A categoria %q concentra %s%% dos seus gastos do mês. Vale conferir se há espaço para economizar nela.",
					maior.Categoria, participacao.StringFixed(0)),
			})
		}
	}

	metas, err := database.ListarMetasPorUsuario(pool, usuarioID)
	if err != nil {
		return nil, err
	}
	for _, meta := range metas {
		if !meta.Ativa {
			continue
		}
		if meta.ValorAcumulado.GreaterThanOrEqual(meta.ValorAlvo) {
			dicas = append(dicas, models.Dica{
				Titulo:    "Meta concluída",
				Descricao: fmt.Sprintf("Parabéns! A meta %q atingiu o valor alvo. Que tal marcá-la como concluída e definir uma nova?", meta.NomeMeta),
			})
		} else if meta.ValorAlvo.GreaterThan(decimal.Zero) {
			progresso := meta.ValorAcumulado.Div(meta.ValorAlvo)
			if progresso.GreaterThanOrEqual(decimal.NewFromFloat(0.8)) {
				dicas = append(dicas, models.Dica{
					Titulo:    "Meta quase lá",
					Descricao: fmt.Sprintf("Faltam R$ %s para concluir a meta %q. Uma distribuição de saldo pode fechar essa conta.", meta.ValorRestante().StringFixed(2), meta.NomeMeta),
				})
			}
		}
	}

	if len(metas) == 0 {
		dicas = append(dicas, models.Dica{
			Titulo:    "Comece uma meta",
			Descricao: "Você ainda não tem metas de economia. Definir um objetivo ajuda a guardar dinheiro com constância.",
		})
	}

	if dicas == nil {
		dicas = []models.Dica{}
	}
	return dicas, nil
}
