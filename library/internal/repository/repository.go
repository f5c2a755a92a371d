package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/Astemirdum/school-library/library/internal/errs"
	"github.com/Astemirdum/school-library/library/internal/model"
	"github.com/Astemirdum/school-library/pkg/postgres"
)

type Repository interface {
	ListStudents(ctx context.Context) ([]model.Student, error)
	CreateStudent(ctx context.Context, student model.Student) (int, error)
	UpdateStudent(ctx context.Context, student model.Student) error
	DeleteStudent(ctx context.Context, id int) error

	ListBooks(ctx context.Context) ([]model.Book, error)
	CreateBook(ctx context.Context, book model.Book) (int, error)
	UpdateBook(ctx context.Context, book model.Book) error
	DeleteBook(ctx context.Context, id int) error

	ListLoans(ctx context.Context) ([]model.LoanView, error)
	CreateLoan(ctx context.Context, loan model.Loan) (int, error)
	UpdateLoan(ctx context.Context, loan model.Loan) error

	Ping(ctx context.Context) bool
}

type repository struct {
	db     *pgxpool.Pool
	log    *zap.Logger
	tracer trace.Tracer
}

func NewRepository(db *pgxpool.Pool, log *zap.Logger) (*repository, error) {
	if db == nil {
		return nil, errors.New("nil pool")
	}
	return &repository{
		db:     db,
		log:    log.Named("repo"),
		tracer: otel.Tracer("school-library/repository"),
	}, nil
}

const (
	studentTableName = `aluno`
	bookTableName    = `livro`
	loanTableName    = `emprestimo`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *repository) Ping(ctx context.Context) bool {
	return postgres.TestConnection(ctx, r.db, r.log)
}

func (r *repository) startSpan(ctx context.Context, op, table string) (context.Context, trace.Span) {
	return r.tracer.Start(ctx, "repository."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", "postgresql"),
			attribute.String("db.sql.table", table),
		))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// exec runs a statement that must touch at least one row.
func (r *repository) exec(ctx context.Context, op, query string, args []interface{}) error {
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		r.log.Error(op, zap.String("q", query), zap.Error(err))
		return classify(err, op)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// classify maps PostgreSQL error codes onto errs sentinels.
func classify(err error, op string) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return errors.Wrap(err, op)
	}
	switch pgErr.Code {
	case pgerrcode.ForeignKeyViolation:
		return errors.Wrapf(errs.ErrReference, "%s: %s", op, pgErr.ConstraintName)
	case pgerrcode.UniqueViolation:
		return errors.Wrapf(errs.ErrConflict, "%s: %s", op, pgErr.ConstraintName)
	case pgerrcode.InvalidTextRepresentation, pgerrcode.NumericValueOutOfRange,
		pgerrcode.StringDataRightTruncationDataException, pgerrcode.DatetimeFieldOverflow,
		pgerrcode.NotNullViolation, pgerrcode.CheckViolation:
		return errors.Wrapf(errs.ErrInvalid, "%s: %s", op, pgErr.Message)
	}
	return errors.Wrap(err, op)
}
