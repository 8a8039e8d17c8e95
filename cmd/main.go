package main

import (
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/wallacygomes/siscofi/internal/database"
	"github.com/wallacygomes/siscofi/internal/routes"
)

// ScheduleLancamentoContasRecorrentes lança todo dia as contas recorrentes
// que vencem na data corrente.
func ScheduleLancamentoContasRecorrentes(pool *pgxpool.Pool) {
	c := cron.New()
	_, err := c.AddFunc("@daily", func() {
		lancadas, err := database.LancarContasRecorrentes(pool)
		if err != nil {
			log.Printf("Erro ao lançar contas recorrentes: %v", err)
			return
		}
		if lancadas > 0 {
			log.Printf("Contas recorrentes lançadas hoje: %d", lancadas)
		}
	})
	if err != nil {
		log.Fatalf("Erro ao agendar lançamento de contas recorrentes: %v", err)
	}
	c.Start()
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Arquivo .env não encontrado, usando variáveis do ambiente")
	}

	pool, err := database.ConnectDB()
	if err != nil {
		log.Fatalf("Erro ao conectar ao banco de dados: %v", err)
	}
	defer pool.Close()

	if err := database.Migrate(pool); err != nil {
		log.Fatalf("Erro ao migrar o banco de dados: %v", err)
	}

	ScheduleLancamentoContasRecorrentes(pool)

	r := routes.SetupRouter(pool)

	porta := os.Getenv("PORT")
	if porta == "" {
		porta = "3000"
	}

	log.Printf("Servidor Siscofi rodando na porta %s", porta)
	if err := r.Run(":" + porta); err != nil {
		log.Fatalf("Erro ao iniciar o servidor: %v", err)
	}
}
