package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/school-library/library/internal/model"
)

var loanFailure = failure{
	notFound:  "Empréstimo não encontrado.",
	reference: echo.NewHTTPError(http.StatusUnprocessableEntity, "Aluno ou livro informado não existe."),
}

// ListLoans godoc
// @Summary Lista os empréstimos com o nome do aluno e o título do livro
// @Tags emprestimo
// @Produce json
// @Success 200 {array} model.LoanView
// @Failure 500 {object} model.Message
// @Router /listar/emprestimo [get]
func (h *Handler) ListLoans(c echo.Context) error {
	loans, err := h.librarySvc.ListLoans(c.Request().Context())
	if err != nil {
		return h.fail(err, failure{fallback: "Não foi possível acessar a listagem de empréstimos."})
	}
	if loans == nil {
		loans = []model.LoanView{}
	}
	return c.JSON(http.StatusOK, loans)
}

// CreateLoan godoc
// @Summary Registra um empréstimo
// @Tags emprestimo
// @Accept json
// @Produce json
// @Param emprestimo body model.LoanRequest true "empréstimo"
// @Success 200 {object} model.Message
// @Failure 400 {object} model.Message
// @Failure 422 {object} model.Message
// @Failure 500 {object} model.Message
// @Router /novo/emprestimo [post]
func (h *Handler) CreateLoan(c echo.Context) error {
	var req model.LoanRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if _, err := h.librarySvc.CreateLoan(c.Request().Context(), req.Loan(0)); err != nil {
		f := loanFailure
		f.fallback = "Não foi possível cadastrar o empréstimo. Entre em contato com o administrador do sistema."
		return h.fail(err, f)
	}
	return ok(c, "Empréstimo cadastrado com sucesso!")
}

// UpdateLoan godoc
// @Summary Atualiza um empréstimo
// @Tags emprestimo
// @Accept json
// @Produce json
// @Param idEmprestimo path int true "id do empréstimo"
// @Param emprestimo body model.LoanRequest true "empréstimo"
// @Success 200 {object} model.Message
// @Failure 400 {object} model.Message
// @Failure 404 {object} model.Message
// @Failure 422 {object} model.Message
// @Failure 500 {object} model.Message
// @Router /atualizar/emprestimo/{idEmprestimo} [put]
func (h *Handler) UpdateLoan(c echo.Context) error {
	id, err := pathID(c, "idEmprestimo")
	if err != nil {
		return err
	}
	var req model.LoanRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := h.librarySvc.UpdateLoan(c.Request().Context(), req.Loan(id)); err != nil {
		f := loanFailure
		f.fallback = "Não foi possível atualizar o empréstimo. Entre em contato com o administrador do sistema."
		return h.fail(err, f)
	}
	return ok(c, "Empréstimo atualizado com sucesso!")
}
