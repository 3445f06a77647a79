// Package server exposes the cost engine over HTTP.
package server

import (
	"context"
	"time"

	json "github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jcarrillo/cpgo/internal/calculation"
	"github.com/jcarrillo/cpgo/internal/catalog"
	"github.com/jcarrillo/cpgo/internal/solver"
	"github.com/jcarrillo/cpgo/internal/storage"
	"github.com/jcarrillo/cpgo/pkg/logger"
)

// Deps carries everything the server needs. Companies and Workers may be nil
// when the service runs without a database; the persistence routes then
// answer 503 and the calculation routes keep working.
type Deps struct {
	AppName   string
	Catalog   *catalog.Catalog
	Companies storage.CompanyRepository
	Workers   storage.WorkerRepository
	Log       *logger.Logger
}

// Server wires the engine, the solver and the repositories into a fiber app.
type Server struct {
	app       *fiber.App
	catalog   *catalog.Catalog
	engine    *calculation.CostEngine
	solver    *solver.Solver
	companies storage.CompanyRepository
	workers   storage.WorkerRepository
	log       *logger.Logger
}

// New builds the HTTP server. It fails when the catalog cannot back an
// engine.
func New(deps Deps) (*Server, error) {
	engine, err := calculation.NewCostEngine(deps.Catalog)
	if err != nil {
		return nil, err
	}

	s := &Server{
		catalog:   deps.Catalog,
		engine:    engine,
		solver:    solver.New(engine),
		companies: deps.Companies,
		workers:   deps.Workers,
		log:       deps.Log,
	}

	app := fiber.New(fiber.Config{
		AppName:      deps.AppName,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	})
	app.Use(recover.New())
	if s.log != nil {
		app.Use(s.requestLogger)
	}
	s.routes(app)

	s.app = app
	return s, nil
}

func (s *Server) routes(app *fiber.App) {
	app.Get("/health", s.health)

	api := app.Group("/api")
	api.Get("/catalogo", s.getCatalog)

	calculos := api.Group("/calculos")
	calculos.Post("/", s.postCalculation)
	calculos.Post("/lote", s.postBatch)
	calculos.Post("/neto", s.postNetSolve)

	empresas := api.Group("/empresas")
	empresas.Post("/", s.createCompany)
	empresas.Get("/", s.listCompanies)
	empresas.Get("/:id", s.getCompany)
	empresas.Put("/:id", s.updateCompany)
	empresas.Delete("/:id", s.deleteCompany)

	empresas.Post("/:id/trabajadores", s.createWorker)
	empresas.Get("/:id/trabajadores", s.listWorkers)
	empresas.Get("/:id/costos", s.companyCosts)
	empresas.Post("/:id/costos", s.companyCosts)

	trabajadores := api.Group("/trabajadores")
	trabajadores.Get("/:id", s.getWorker)
	trabajadores.Put("/:id", s.updateWorker)
	trabajadores.Delete("/:id", s.deleteWorker)
}

// requestLogger emits one structured line per request.
func (s *Server) requestLogger(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	s.log.Info().
		Str("method", c.Method()).
		Str("path", c.Path()).
		Int("status", c.Response().StatusCode()).
		Dur("duration", time.Since(start)).
		Msg("request")
	return err
}

// Listen blocks serving on addr.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

// App exposes the fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}
