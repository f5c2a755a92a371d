package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/Astemirdum/school-library/library/internal/model"
)

var bookColumns = []string{
	"id_livro", "titulo", "autor", "editora", "ano_publicacao", "isbn",
	"quant_total", "quant_disponivel", "valor_aquisicao", "status_livro_emprestado",
}

func listBooksQuery() (string, []interface{}, error) {
	return qb.Select(bookColumns...).
		From(bookTableName).
		OrderBy("id_livro").
		ToSql()
}

func insertBookQuery(b model.Book) (string, []interface{}, error) {
	return qb.Insert(bookTableName).
		Columns(bookColumns[1:]...).
		Values(b.Title, b.Author, b.Publisher, b.PublicationYear, b.ISBN,
			b.TotalCopies, b.AvailableCopies, b.AcquisitionValue, b.LoanStatus).
		Suffix("RETURNING id_livro").
		ToSql()
}

func updateBookQuery(b model.Book) (string, []interface{}, error) {
	return qb.Update(bookTableName).
		Set("titulo", b.Title).
		Set("autor", b.Author).
		Set("editora", b.Publisher).
		Set("ano_publicacao", b.PublicationYear).
		Set("isbn", b.ISBN).
		Set("quant_total", b.TotalCopies).
		Set("quant_disponivel", b.AvailableCopies).
		Set("valor_aquisicao", b.AcquisitionValue).
		Set("status_livro_emprestado", b.LoanStatus).
		Where(sq.Eq{"id_livro": b.ID}).
		ToSql()
}

func deleteBookQuery(id int) (string, []interface{}, error) {
	return qb.Delete(bookTableName).
		Where(sq.Eq{"id_livro": id}).
		ToSql()
}

func (r *repository) ListBooks(ctx context.Context) (_ []model.Book, err error) {
	ctx, span := r.startSpan(ctx, "ListBooks", bookTableName)
	defer func() { endSpan(span, err) }()

	query, args, err := listBooksQuery()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, classify(err, "ListBooks")
	}
	defer rows.Close()

	books, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Book])
	if err != nil {
		return nil, errors.Wrap(err, "pgx.CollectRows")
	}
	span.SetAttributes(attribute.Int("db.rows", len(books)))
	return books, nil
}

func (r *repository) CreateBook(ctx context.Context, book model.Book) (_ int, err error) {
	ctx, span := r.startSpan(ctx, "CreateBook", bookTableName)
	defer func() { endSpan(span, err) }()

	query, args, err := insertBookQuery(book)
	if err != nil {
		return 0, err
	}
	var id int
	if err = r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		r.log.Error("CreateBook", zap.String("q", query), zap.Error(err))
		return 0, classify(err, "CreateBook")
	}
	r.log.Info("book created", zap.Int("id_livro", id))
	return id, nil
}

func (r *repository) UpdateBook(ctx context.Context, book model.Book) (err error) {
	ctx, span := r.startSpan(ctx, "UpdateBook", bookTableName)
	defer func() { endSpan(span, err) }()

	query, args, err := updateBookQuery(book)
	if err != nil {
		return err
	}
	return r.exec(ctx, "UpdateBook", query, args)
}

func (r *repository) DeleteBook(ctx context.Context, id int) (err error) {
	ctx, span := r.startSpan(ctx, "DeleteBook", bookTableName)
	defer func() { endSpan(span, err) }()

	query, args, err := deleteBookQuery(id)
	if err != nil {
		return err
	}
	return r.exec(ctx, "DeleteBook", query, args)
}
