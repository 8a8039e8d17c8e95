// Package distribuicao implementa a distribuição do saldo livre do usuário
// entre as metas ativas ainda não concluídas. Toda a sequência — leitura do
// saldo, seleção das metas, atualização dos acumulados e o lançamento do
// gasto de contrapartida — executa dentro de uma única transação.
package distribuicao

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// CategoriaDistribuicao identifica no extrato o gasto sintético gerado
// pela distribuição.
const CategoriaDistribuicao = "Distribuição para Metas"

var (
	ErrValorInvalido     = errors.New("o valor a distribuir deve ser maior que zero")
	ErrSemMetasElegiveis = errors.New("nenhuma meta ativa disponível para receber saldo")
)

// SaldoInsuficienteError carrega os dois valores para a camada HTTP montar a
// mensagem ao usuário.
type SaldoInsuficienteError struct {
	Solicitado decimal.Decimal
	Disponivel decimal.Decimal
}

func (e *SaldoInsuficienteError) Error() string {
	return fmt.Sprintf("saldo insuficiente: solicitado R$ %s, disponível R$ %s",
		e.Solicitado.StringFixed(2), e.Disponivel.StringFixed(2))
}

type MetaContemplada struct {
	ID             int             `json:"id"`
	NomeMeta       string          `json:"nome_meta"`
	ValorAcumulado decimal.Decimal `json:"valor_acumulado"`
}

type Resultado struct {
	TotalDistribuido  decimal.Decimal   `json:"total_distribuido"`
	MetasContempladas int               `json:"metas_contempladas"`
	CotaPorMeta       decimal.Decimal   `json:"cota_por_meta"`
	Metas             []MetaContemplada `json:"metas"`
}

type Engine struct {
	pool *pgxpool.Pool
}

func NovaEngine(pool *pgxpool.Pool) *Engine {
	return &Engine{pool: pool}
}

type metaElegivel struct {
	id             int
	nomeMeta       string
	valorAlvo      decimal.Decimal
	valorAcumulado decimal.Decimal
}

// Distribuir divide valor em cotas iguais entre as metas elegíveis do usuário
// e registra um gasto único de contrapartida, mantendo o extrato e os
// acumulados das metas reconciliados. A operação não é idempotente: chamadas
// repetidas geram distribuições independentes, e quem decide repetir é o
// chamador.
func (e *Engine) Distribuir(ctx context.Context, usuarioID int, valor decimal.Decimal) (*Resultado, error) {
	if valor.LessThanOrEqual(decimal.Zero) {
		return nil, ErrValorInvalido
	}

	tx, err := e.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir transação: %w", err)
	}
	defer tx.Rollback(ctx)

	// Trava a linha do usuário: duas distribuições simultâneas do mesmo
	// usuário passam a executar em série, impedindo que as duas aprovem o
	// mesmo saldo.
	var travaID int
	if err := tx.QueryRow(ctx, `SELECT id FROM usuarios WHERE id = $1 FOR UPDATE`, usuarioID).Scan(&travaID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("usuário com ID %d não encontrado", usuarioID)
		}
		return nil, fmt.Errorf("erro ao travar usuário: %w", err)
	}

	saldo, err := saldoAtual(ctx, tx, usuarioID)
	if err != nil {
		return nil, err
	}

	if valor.GreaterThan(saldo) {
		return nil, &SaldoInsuficienteError{Solicitado: valor, Disponivel: saldo}
	}

	metas, err := metasElegiveis(ctx, tx, usuarioID)
	if err != nil {
		return nil, err
	}
	if len(metas) == 0 {
		return nil, ErrSemMetasElegiveis
	}

	// Divisão igualitária entre as metas, sem teto no valor alvo: uma meta
	// quase concluída recebe a mesma cota das demais e pode ultrapassar o
	// alvo.
	cota := calcularCota(valor, len(metas))

	contempladas := make([]MetaContemplada, 0, len(metas))
	for _, meta := range metas {
		novoAcumulado := meta.valorAcumulado.Add(cota)
		if _, err := tx.Exec(ctx, `UPDATE metas SET valor_acumulado = $1 WHERE id = $2`, novoAcumulado, meta.id); err != nil {
			return nil, fmt.Errorf("erro ao atualizar meta %d: %w", meta.id, err)
		}
		contempladas = append(contempladas, MetaContemplada{
			ID:             meta.id,
			NomeMeta:       meta.nomeMeta,
			ValorAcumulado: novoAcumulado,
		})
	}

	descricao := fmt.Sprintf("Distribuição de R$ %s entre %d meta(s)", valor.StringFixed(2), len(metas))
	_, err = tx.Exec(ctx, `
		INSERT INTO movimentacoes (usuario_id, tipo, descricao, valor, data, categoria, tipo_recorrencia)
		VALUES ($1, 'gasto', $2, $3, CURRENT_DATE, $4, 'unica')`,
		usuarioID, descricao, valor, CategoriaDistribuicao)
	if err != nil {
		return nil, fmt.Errorf("erro ao registrar gasto da distribuição: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("erro ao confirmar distribuição: %w", err)
	}

	return &Resultado{
		TotalDistribuido:  valor,
		MetasContempladas: len(metas),
		CotaPorMeta:       cota,
		Metas:             contempladas,
	}, nil
}

// saldoAtual soma ganhos e subtrai gastos de todas as movimentações do
// usuário, lido dentro da transação para ficar consistente com a escrita.
func saldoAtual(ctx context.Context, tx pgx.Tx, usuarioID int) (decimal.Decimal, error) {
	var saldo decimal.Decimal
	err := tx.QueryRow(ctx, `
		SELECT COALESCE(SUM(CASE WHEN tipo = 'ganho' THEN valor ELSE -valor END), 0)
		FROM movimentacoes
		WHERE usuario_id = $1`, usuarioID).Scan(&saldo)
	if err != nil {
		return decimal.Zero, fmt.Errorf("erro ao calcular saldo atual: %w", err)
	}
	return saldo, nil
}

// metasElegiveis seleciona, com trava de linha, as metas ativas que ainda não
// atingiram o valor alvo.
func metasElegiveis(ctx context.Context, tx pgx.Tx, usuarioID int) ([]metaElegivel, error) {
	rows, err := tx.Query(ctx, `
		SELECT id, nome_meta, valor_alvo, valor_acumulado
		FROM metas
		WHERE usuario_id = $1 AND ativa AND valor_acumulado < valor_alvo
		ORDER BY id
		FOR UPDATE`, usuarioID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar metas elegíveis: %w", err)
	}
	defer rows.Close()

	var metas []metaElegivel
	for rows.Next() {
		var meta metaElegivel
		if err := rows.Scan(&meta.id, &meta.nomeMeta, &meta.valorAlvo, &meta.valorAcumulado); err != nil {
			return nil, err
		}
		metas = append(metas, meta)
	}
	return metas, rows.Err()
}

func calcularCota(valor decimal.Decimal, quantidade int) decimal.Decimal {
	return valor.DivRound(decimal.NewFromInt(int64(quantidade)), 2)
}
