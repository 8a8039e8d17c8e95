package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wallacygomes/siscofi/internal/auth"
	"github.com/wallacygomes/siscofi/internal/handlers"
)

func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin == "http://localhost:3000" || origin == "http://localhost:5500" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}

		c.Next()
	}
}

// SetupRouter registra todas as rotas da API do Siscofi.
func SetupRouter(pool *pgxpool.Pool) *gin.Engine {
	r := gin.Default()
	r.Use(CORSMiddleware())

	// Rotas públicas
	r.POST("/cadastrar-usuario", handlers.CadastrarUsuarioHandler(pool))
	r.POST("/login", handlers.LoginHandler(pool))
	r.POST("/solicitar-recuperacao-senha", handlers.SolicitarRecuperacaoSenhaHandler(pool))
	r.POST("/redefinir-senha", handlers.RedefinirSenhaHandler(pool))

	autenticado := r.Group("/", auth.Autenticado())

	autenticado.POST("/movimentacoes", handlers.CriarMovimentacaoHandler(pool))
	autenticado.GET("/movimentacoes", handlers.ListarMovimentacoesHandler(pool))
	autenticado.PUT("/movimentacoes/:id", handlers.AtualizarMovimentacaoHandler(pool))
	autenticado.DELETE("/movimentacoes/:id", handlers.ExcluirMovimentacaoHandler(pool))

	autenticado.POST("/metas", handlers.CriarMetaHandler(pool))
	autenticado.GET("/metas", handlers.ListarMetasHandler(pool))
	autenticado.GET("/metas/:id", handlers.BuscarMetaHandler(pool))
	autenticado.PUT("/metas/:id", handlers.AtualizarMetaHandler(pool))
	autenticado.DELETE("/metas/:id", handlers.ExcluirMetaHandler(pool))
	autenticado.POST("/api/metas/distribuir-saldo", handlers.DistribuirSaldoHandler(pool))

	autenticado.POST("/api/contas-recorrentes", handlers.CriarContaRecorrenteHandler(pool))
	autenticado.GET("/api/contas-recorrentes", handlers.ListarContasRecorrentesHandler(pool))
	autenticado.PUT("/api/contas-recorrentes/:id", handlers.AtualizarContaRecorrenteHandler(pool))
	autenticado.DELETE("/api/contas-recorrentes/:id", handlers.ExcluirContaRecorrenteHandler(pool))

	autenticado.GET("/api/dashboard/resumo", handlers.ResumoDashboardHandler(pool))
	autenticado.GET("/api/dashboard/ultimas-movimentacoes", handlers.UltimasMovimentacoesHandler(pool))
	autenticado.GET("/api/dashboard/historico-movimentacoes", handlers.HistoricoMovimentacoesHandler(pool))
	autenticado.GET("/api/dashboard/gastos-por-categoria", handlers.GastosPorCategoriaHandler(pool))

	autenticado.GET("/api/relatorios", handlers.RelatorioHandler(pool))
	autenticado.GET("/api/relatorios/pdf", handlers.RelatorioPDFHandler(pool))
	autenticado.GET("/api/dicas", handlers.DicasHandler(pool))

	admin := autenticado.Group("/api/admin", auth.SomenteAdmin())
	admin.GET("/usuarios", handlers.ListarUsuariosHandler(pool))
	admin.PUT("/usuarios/:id", handlers.AtualizarUsuarioAdminHandler(pool))
	admin.DELETE("/usuarios/:id", handlers.ExcluirUsuarioAdminHandler(pool))

	return r
}
