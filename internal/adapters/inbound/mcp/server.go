package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/earcraft/earcraft/internal/adapters/outbound/analysis"
	"github.com/earcraft/earcraft/internal/adapters/outbound/catalog"
	"github.com/earcraft/earcraft/internal/adapters/outbound/packinfo"
	"github.com/earcraft/earcraft/internal/adapters/outbound/progress"
	"github.com/earcraft/earcraft/internal/application"
	"github.com/earcraft/earcraft/internal/domain/curriculum"
)

// deps is the adapter set shared by every tool and resource handler. The
// progress store is opened once for the server's lifetime.
type deps struct {
	packDir   string
	catalog   *catalog.YAMLLoader
	store     *progress.SQLiteStore
	grade     *application.GradeService
	mix       *application.MixService
	dashboard *application.DashboardService
}

// NewEarCraftMCPServer creates an MCP server with all EarCraft tools and
// resources registered. The returned closer releases the progress store.
func NewEarCraftMCPServer(packDir, dbPath string) (*server.MCPServer, func(), error) {
	store, err := progress.Open(dbPath)
	if err != nil {
		return nil, nil, err
	}

	loader := catalog.New()
	analyzer := analysis.New()
	info := packinfo.New()
	table := curriculum.DefaultTable()

	d := &deps{
		packDir:   packDir,
		catalog:   loader,
		store:     store,
		grade:     application.NewGradeService(loader, analyzer, store, info, table),
		mix:       application.NewMixService(loader, store, info, table),
		dashboard: application.NewDashboardService(loader, store, table),
	}

	s := server.NewMCPServer(
		"earcraft",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, d)
	registerResources(s, d)

	return s, func() { _ = store.Close() }, nil
}
