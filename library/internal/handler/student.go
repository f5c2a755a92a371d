package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/school-library/library/internal/model"
)

var studentFailure = failure{
	notFound: "Aluno não encontrado.",
}

// ListStudents godoc
// @Summary Lista os alunos
// @Tags aluno
// @Produce json
// @Success 200 {array} model.Student
// @Failure 500 {object} model.Message
// @Router /listar/aluno [get]
func (h *Handler) ListStudents(c echo.Context) error {
	students, err := h.librarySvc.ListStudents(c.Request().Context())
	if err != nil {
		return h.fail(err, failure{fallback: "Não foi possível acessar a listagem de alunos."})
	}
	if students == nil {
		students = []model.Student{}
	}
	return c.JSON(http.StatusOK, students)
}

// CreateStudent godoc
// @Summary Cadastra um aluno
// @Tags aluno
// @Accept json
// @Produce json
// @Param aluno body model.StudentRequest true "aluno"
// @Success 200 {object} model.Message
// @Failure 400 {object} model.Message
// @Failure 422 {object} model.Message
// @Failure 500 {object} model.Message
// @Router /novo/aluno [post]
func (h *Handler) CreateStudent(c echo.Context) error {
	var req model.StudentRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if _, err := h.librarySvc.CreateStudent(c.Request().Context(), req.Student(0)); err != nil {
		f := studentFailure
		f.fallback = "Não foi possível cadastrar o aluno. Entre em contato com o administrador do sistema."
		return h.fail(err, f)
	}
	return ok(c, "Aluno cadastrado com sucesso!")
}

// UpdateStudent godoc
// @Summary Atualiza um aluno
// @Tags aluno
// @Accept json
// @Produce json
// @Param idAluno path int true "id do aluno"
// @Param aluno body model.StudentRequest true "aluno"
// @Success 200 {object} model.Message
// @Failure 400 {object} model.Message
// @Failure 404 {object} model.Message
// @Failure 422 {object} model.Message
// @Failure 500 {object} model.Message
// @Router /atualizar/aluno/{idAluno} [put]
func (h *Handler) UpdateStudent(c echo.Context) error {
	id, err := pathID(c, "idAluno")
	if err != nil {
		return err
	}
	var req model.StudentRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := h.librarySvc.UpdateStudent(c.Request().Context(), req.Student(id)); err != nil {
		f := studentFailure
		f.fallback = "Não foi possível atualizar o aluno. Entre em contato com o administrador do sistema."
		return h.fail(err, f)
	}
	return ok(c, "Aluno atualizado com sucesso!")
}

// DeleteStudent godoc
// @Summary Remove um aluno
// @Tags aluno
// @Produce json
// @Param idAluno path int true "id do aluno"
// @Success 200 {object} model.Message
// @Failure 400 {object} model.Message
// @Failure 404 {object} model.Message
// @Failure 409 {object} model.Message
// @Failure 500 {object} model.Message
// @Router /remover/aluno/{idAluno} [delete]
func (h *Handler) DeleteStudent(c echo.Context) error {
	id, err := pathID(c, "idAluno")
	if err != nil {
		return err
	}
	if err := h.librarySvc.DeleteStudent(c.Request().Context(), id); err != nil {
		f := studentFailure
		f.fallback = "Não foi possível remover o aluno. Entre em contato com o administrador do sistema."
		f.reference = echo.NewHTTPError(http.StatusConflict, "O aluno possui empréstimos registrados e não pode ser removido.")
		return h.fail(err, f)
	}
	return ok(c, "O aluno foi removido com sucesso!")
}
