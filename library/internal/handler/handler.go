package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/Astemirdum/school-library/library/internal/errs"
	"github.com/Astemirdum/school-library/library/internal/model"
	md "github.com/Astemirdum/school-library/pkg/middleware"
	"github.com/Astemirdum/school-library/pkg/validate"
	_ "github.com/Astemirdum/school-library/swagger"
)

type Handler struct {
	librarySvc LibraryService
	log        *zap.Logger
}

func New(librarySvc LibraryService, log *zap.Logger) *Handler {
	return &Handler{
		librarySvc: librarySvc,
		log:        log.Named("handler"),
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.HideBanner = true
	e.HTTPErrorHandler = md.ErrorHandler(h.log)
	e.Validator = validate.NewCustomValidator()

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))
	e.Use(
		md.RequestID(),
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
	)

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("", md.NewRateLimiter(apiRPS))
	api.GET("/", h.Hello)

	api.GET("/listar/livro", h.ListBooks)
	api.POST("/novo/livro", h.CreateBook)
	api.PUT("/atualizar/livro/:idLivro", h.UpdateBook)
	api.DELETE("/remover/livro/:idLivro", h.DeleteBook)

	api.GET("/listar/aluno", h.ListStudents)
	api.POST("/novo/aluno", h.CreateStudent)
	api.PUT("/atualizar/aluno/:idAluno", h.UpdateStudent)
	api.DELETE("/remover/aluno/:idAluno", h.DeleteStudent)

	api.GET("/listar/emprestimo", h.ListLoans)
	api.POST("/novo/emprestimo", h.CreateLoan)
	api.PUT("/atualizar/emprestimo/:idEmprestimo", h.UpdateLoan)

	return e
}

// Hello godoc
// @Summary Mensagem de boas-vindas
// @Produce json
// @Success 200 {object} model.Message
// @Router / [get]
func (h *Handler) Hello(c echo.Context) error {
	return c.JSON(http.StatusOK, model.Message{Message: "Olá, Mundo!"})
}

// Health godoc
// @Summary Verifica a conexão com o banco de dados
// @Produce plain
// @Success 200 {string} string "OK"
// @Failure 503 {object} model.Message
// @Router /manage/health [get]
func (h *Handler) Health(c echo.Context) error {
	if !h.librarySvc.Ping(c.Request().Context()) {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Banco de dados indisponível.")
	}
	return c.String(http.StatusOK, "OK")
}

func ok(c echo.Context, msg string) error {
	return c.JSON(http.StatusOK, model.Message{Message: msg})
}

// pathID parses a positive id that fits the INTEGER primary keys.
func pathID(c echo.Context, name string) (int, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 32)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" inválido.")
	}
	return int(id), nil
}

// bind decodes and validates a transfer object.
func bind(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Corpo da requisição inválido.").SetInternal(err)
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return nil
}

type failure struct {
	// returned for server faults
	fallback string
	notFound string
	// returned on a foreign key violation; nil treats it as a server fault
	reference *echo.HTTPError
}

func (h *Handler) fail(err error, f failure) error {
	switch {
	case errors.Is(err, errs.ErrNotFound) && f.notFound != "":
		return echo.NewHTTPError(http.StatusNotFound, f.notFound)
	case errors.Is(err, errs.ErrReference) && f.reference != nil:
		return f.reference
	case errors.Is(err, errs.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, "Registro já existente.")
	case errors.Is(err, errs.ErrInvalid):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "Dados inválidos.").SetInternal(err)
	}
	return echo.NewHTTPError(http.StatusInternalServerError, f.fallback).SetInternal(err)
}
