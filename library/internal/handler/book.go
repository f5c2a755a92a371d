package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/school-library/library/internal/model"
)

var bookFailure = failure{
	notFound: "Livro não encontrado.",
}

// ListBooks godoc
// @Summary Lista os livros
// @Tags livro
// @Produce json
// @Success 200 {array} model.Book
// @Failure 500 {object} model.Message
// @Router /listar/livro [get]
func (h *Handler) ListBooks(c echo.Context) error {
	books, err := h.librarySvc.ListBooks(c.Request().Context())
	if err != nil {
		return h.fail(err, failure{fallback: "Não foi possível acessar a listagem de livros."})
	}
	if books == nil {
		books = []model.Book{}
	}
	return c.JSON(http.StatusOK, books)
}

// CreateBook godoc
// @Summary Cadastra um livro
// @Tags livro
// @Accept json
// @Produce json
// @Param livro body model.BookRequest true "livro"
// @Success 200 {object} model.Message
// @Failure 400 {object} model.Message
// @Failure 422 {object} model.Message
// @Failure 500 {object} model.Message
// @Router /novo/livro [post]
func (h *Handler) CreateBook(c echo.Context) error {
	var req model.BookRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if _, err := h.librarySvc.CreateBook(c.Request().Context(), req.Book(0)); err != nil {
		f := bookFailure
		f.fallback = "Não foi possível cadastrar o livro. Entre em contato com o administrador do sistema."
		return h.fail(err, f)
	}
	return ok(c, "Livro cadastrado com sucesso!")
}

// UpdateBook godoc
// @Summary Atualiza um livro
// @Tags livro
// @Accept json
// @Produce json
// @Param idLivro path int true "id do livro"
// @Param livro body model.BookRequest true "livro"
// @Success 200 {object} model.Message
// @Failure 400 {object} model.Message
// @Failure 404 {object} model.Message
// @Failure 422 {object} model.Message
// @Failure 500 {object} model.Message
// @Router /atualizar/livro/{idLivro} [put]
func (h *Handler) UpdateBook(c echo.Context) error {
	id, err := pathID(c, "idLivro")
	if err != nil {
		return err
	}
	var req model.BookRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := h.librarySvc.UpdateBook(c.Request().Context(), req.Book(id)); err != nil {
		f := bookFailure
		f.fallback = "Não foi possível atualizar o livro. Entre em contato com o administrador do sistema."
		return h.fail(err, f)
	}
	return ok(c, "Livro atualizado com sucesso!")
}

// DeleteBook godoc
// @Summary Remove um livro
// @Tags livro
// @Produce json
// @Param idLivro path int true "id do livro"
// @Success 200 {object} model.Message
// @Failure 400 {object} model.Message
// @Failure 404 {object} model.Message
// @Failure 409 {object} model.Message
// @Failure 500 {object} model.Message
// @Router /remover/livro/{idLivro} [delete]
func (h *Handler) DeleteBook(c echo.Context) error {
	id, err := pathID(c, "idLivro")
	if err != nil {
		return err
	}
	if err := h.librarySvc.DeleteBook(c.Request().Context(), id); err != nil {
		f := bookFailure
		f.fallback = "Não foi possível remover o livro. Entre em contato com o administrador do sistema."
		f.reference = echo.NewHTTPError(http.StatusConflict, "O livro possui empréstimos registrados e não pode ser removido.")
		return h.fail(err, f)
	}
	return ok(c, "O livro foi removido com sucesso!")
}
