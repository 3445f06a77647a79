package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jcarrillo/cpgo/internal/calculation"
	"github.com/jcarrillo/cpgo/internal/domain"
	"github.com/jcarrillo/cpgo/internal/output"
)

type calculationRequest struct {
	Empresa    domain.CompanyConfig `json:"empresa"`
	Trabajador domain.Worker        `json:"trabajador"`
}

type batchRequest struct {
	Empresa      domain.CompanyConfig `json:"empresa"`
	Trabajadores []domain.Worker      `json:"trabajadores"`
}

type netRequest struct {
	Empresa      domain.CompanyConfig `json:"empresa"`
	Trabajador   domain.Worker        `json:"trabajador"`
	NetoObjetivo decimal.Decimal      `json:"neto_objetivo"`
}

func (s *Server) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "catalogo": s.catalog.Year})
}

func (s *Server) getCatalog(c *fiber.Ctx) error {
	return c.JSON(s.catalog)
}

// postCalculation runs one worker through the engine.
func (s *Server) postCalculation(c *fiber.Ctx) error {
	var req calculationRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "cuerpo invalido")
	}
	req.Empresa.ApplyDefaults()

	result, err := s.engine.Calculate(&req.Empresa, &req.Trabajador)
	if err != nil {
		return translateError(c, err)
	}
	return c.JSON(result)
}

// postBatch runs a whole roster. Per-worker failures land in their item; the
// batch itself only fails on an empty roster or a malformed body.
func (s *Server) postBatch(c *fiber.Ctx) error {
	var req batchRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "cuerpo invalido")
	}
	if len(req.Trabajadores) == 0 {
		return translateError(c, domain.NewValidationError("trabajadores", "se requiere al menos un trabajador"))
	}
	req.Empresa.ApplyDefaults()

	runner := calculation.NewBatchRunner(s.engine, 0)
	items := runner.Run(c.Context(), &req.Empresa, req.Trabajadores)

	data, err := (output.JSONFormatter{}).Format(&output.ResultSet{
		CatalogYear: s.catalog.Year,
		Company:     req.Empresa,
		Items:       items,
	})
	if err != nil {
		return translateError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(data)
}

// postNetSolve searches for the gross salary that yields the requested net.
func (s *Server) postNetSolve(c *fiber.Ctx) error {
	var req netRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "cuerpo invalido")
	}
	req.Empresa.ApplyDefaults()

	outcome, err := s.solver.SolveNet(&req.Empresa, req.Trabajador, req.NetoObjetivo)
	if err != nil {
		return translateError(c, err)
	}
	return c.JSON(outcome)
}
