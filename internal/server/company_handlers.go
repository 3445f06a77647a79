package server

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jcarrillo/cpgo/internal/calculation"
	"github.com/jcarrillo/cpgo/internal/domain"
	"github.com/jcarrillo/cpgo/internal/export"
	"github.com/jcarrillo/cpgo/internal/output"
	"github.com/jcarrillo/cpgo/internal/storage"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func parseID(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, badRequest(c, "id invalido")
	}
	return id, nil
}

func (s *Server) createCompany(c *fiber.Ctx) error {
	if s.companies == nil {
		return persistenceUnavailable(c)
	}
	var company storage.Company
	if err := c.BodyParser(&company); err != nil {
		return badRequest(c, "cuerpo invalido")
	}
	company.ApplyDefaults()
	if company.Name == "" {
		return translateError(c, domain.NewValidationError("nombre", "se requiere el nombre de la empresa"))
	}
	if err := s.catalog.ValidateCompany(&company.CompanyConfig); err != nil {
		return translateError(c, err)
	}
	if err := s.companies.Create(c.Context(), &company); err != nil {
		return translateError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(company)
}

func (s *Server) listCompanies(c *fiber.Ctx) error {
	if s.companies == nil {
		return persistenceUnavailable(c)
	}
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := s.companies.List(c.Context(), limit, offset)
	if err != nil {
		return translateError(c, err)
	}
	if list == nil {
		list = []*storage.Company{}
	}
	return c.JSON(list)
}

func (s *Server) getCompany(c *fiber.Ctx) error {
	if s.companies == nil {
		return persistenceUnavailable(c)
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	company, err := s.companies.Get(c.Context(), id)
	if err != nil {
		return translateError(c, err)
	}
	return c.JSON(company)
}

func (s *Server) updateCompany(c *fiber.Ctx) error {
	if s.companies == nil {
		return persistenceUnavailable(c)
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var company storage.Company
	if err := c.BodyParser(&company); err != nil {
		return badRequest(c, "cuerpo invalido")
	}
	company.ID = id
	company.ApplyDefaults()
	if err := s.catalog.ValidateCompany(&company.CompanyConfig); err != nil {
		return translateError(c, err)
	}
	if err := s.companies.Update(c.Context(), &company); err != nil {
		return translateError(c, err)
	}
	return c.JSON(company)
}

func (s *Server) deleteCompany(c *fiber.Ctx) error {
	if s.companies == nil {
		return persistenceUnavailable(c)
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := s.companies.Delete(c.Context(), id); err != nil {
		return translateError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) createWorker(c *fiber.Ctx) error {
	if s.workers == nil {
		return persistenceUnavailable(c)
	}
	companyID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var worker storage.Worker
	if err := c.BodyParser(&worker); err != nil {
		return badRequest(c, "cuerpo invalido")
	}
	worker.CompanyID = companyID
	if worker.Name == "" {
		return translateError(c, domain.NewValidationError("nombre", "se requiere el nombre del trabajador"))
	}
	if !worker.DailySalary.IsPositive() {
		return translateError(c, domain.NewValidationError("salario_diario", "debe ser mayor que cero"))
	}
	if err := s.workers.Create(c.Context(), &worker); err != nil {
		return translateError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(worker)
}

func (s *Server) listWorkers(c *fiber.Ctx) error {
	if s.workers == nil {
		return persistenceUnavailable(c)
	}
	companyID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if _, err := s.companies.Get(c.Context(), companyID); err != nil {
		return translateError(c, err)
	}
	list, err := s.workers.ListByCompany(c.Context(), companyID)
	if err != nil {
		return translateError(c, err)
	}
	if list == nil {
		list = []*storage.Worker{}
	}
	return c.JSON(list)
}

func (s *Server) getWorker(c *fiber.Ctx) error {
	if s.workers == nil {
		return persistenceUnavailable(c)
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	worker, err := s.workers.Get(c.Context(), id)
	if err != nil {
		return translateError(c, err)
	}
	return c.JSON(worker)
}

func (s *Server) updateWorker(c *fiber.Ctx) error {
	if s.workers == nil {
		return persistenceUnavailable(c)
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var worker storage.Worker
	if err := c.BodyParser(&worker); err != nil {
		return badRequest(c, "cuerpo invalido")
	}
	worker.ID = id
	if !worker.DailySalary.IsPositive() {
		return translateError(c, domain.NewValidationError("salario_diario", "debe ser mayor que cero"))
	}
	if err := s.workers.Update(c.Context(), &worker); err != nil {
		return translateError(c, err)
	}
	return c.JSON(worker)
}

func (s *Server) deleteWorker(c *fiber.Ctx) error {
	if s.workers == nil {
		return persistenceUnavailable(c)
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := s.workers.Delete(c.Context(), id); err != nil {
		return translateError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// companyCosts runs the stored roster of one company through the engine and
// renders the batch in the requested format.
func (s *Server) companyCosts(c *fiber.Ctx) error {
	if s.companies == nil || s.workers == nil {
		return persistenceUnavailable(c)
	}
	companyID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	company, err := s.companies.Get(c.Context(), companyID)
	if err != nil {
		return translateError(c, err)
	}
	stored, err := s.workers.ListByCompany(c.Context(), companyID)
	if err != nil {
		return translateError(c, err)
	}
	if len(stored) == 0 {
		return translateError(c, domain.NewValidationError("trabajadores", "la empresa no tiene trabajadores registrados"))
	}

	roster := make([]domain.Worker, len(stored))
	for i, w := range stored {
		roster[i] = w.Worker
	}

	runner := calculation.NewBatchRunner(s.engine, 0)
	items := runner.Run(c.Context(), &company.CompanyConfig, roster)
	rs := &output.ResultSet{
		CatalogYear: s.catalog.Year,
		Company:     company.CompanyConfig,
		Items:       items,
	}

	switch format := c.Query("format", "json"); format {
	case "xlsx":
		data, err := (export.ExcelExporter{Catalog: s.catalog}).Format(rs)
		if err != nil {
			return translateError(c, err)
		}
		c.Set(fiber.HeaderContentType, xlsxMIME)
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", "costos_"+companyID.String()+".xlsx"))
		return c.Send(data)
	case "json", "csv":
		f, err := output.GetFormatter(format)
		if err != nil {
			return badRequest(c, err.Error())
		}
		data, err := f.Format(rs)
		if err != nil {
			return translateError(c, err)
		}
		if format == "csv" {
			c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		} else {
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		}
		return c.Send(data)
	default:
		return badRequest(c, "formato no soportado: "+format)
	}
}
