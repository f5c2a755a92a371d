package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/Astemirdum/school-library/library/internal/model"
)

// listLoansQuery joins every loan with its student's name and book's title.
func listLoansQuery() (string, []interface{}, error) {
	return qb.Select(
		"e.id_emprestimo", "e.id_aluno", "a.nome", "e.id_livro", "l.titulo",
		"e.data_emprestimo", "e.data_devolucao", "e.status_emprestimo").
		From(loanTableName + " e").
		Join(fmt.Sprintf("%s a ON a.id_aluno = e.id_aluno", studentTableName)).
		Join(fmt.Sprintf("%s l ON l.id_livro = e.id_livro", bookTableName)).
		OrderBy("e.id_emprestimo").
		ToSql()
}

func insertLoanQuery(l model.Loan) (string, []interface{}, error) {
	return qb.Insert(loanTableName).
		Columns("id_aluno", "id_livro", "data_emprestimo", "data_devolucao", "status_emprestimo").
		Values(l.StudentID, l.BookID, l.LoanDate, l.DueDate, l.Status).
		Suffix("RETURNING id_emprestimo").
		ToSql()
}

func updateLoanQuery(l model.Loan) (string, []interface{}, error) {
	return qb.Update(loanTableName).
		Set("id_aluno", l.StudentID).
		Set("id_livro", l.BookID).
		Set("data_emprestimo", l.LoanDate).
		Set("data_devolucao", l.DueDate).
		Set("status_emprestimo", l.Status).
		Where(sq.Eq{"id_emprestimo": l.ID}).
		ToSql()
}

func (r *repository) ListLoans(ctx context.Context) (_ []model.LoanView, err error) {
	ctx, span := r.startSpan(ctx, "ListLoans", loanTableName)
	defer func() { endSpan(span, err) }()

	query, args, err := listLoansQuery()
	if err != nil {
		return nil, err
	}
	r.log.Debug("ListLoans", zap.String("query", query))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, classify(err, "ListLoans")
	}
	defer rows.Close()

	loans, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.LoanView])
	if err != nil {
		return nil, errors.Wrap(err, "pgx.CollectRows")
	}
	span.SetAttributes(attribute.Int("db.rows", len(loans)))
	return loans, nil
}

func (r *repository) CreateLoan(ctx context.Context, loan model.Loan) (_ int, err error) {
	ctx, span := r.startSpan(ctx, "CreateLoan", loanTableName)
	defer func() { endSpan(span, err) }()

	query, args, err := insertLoanQuery(loan)
	if err != nil {
		return 0, err
	}
	var id int
	if err = r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		r.log.Error("CreateLoan", zap.String("q", query), zap.Any("args", args), zap.Error(err))
		return 0, classify(err, "CreateLoan")
	}
	r.log.Info("loan created", zap.Int("id_emprestimo", id))
	return id, nil
}

func (r *repository) UpdateLoan(ctx context.Context, loan model.Loan) (err error) {
	ctx, span := r.startSpan(ctx, "UpdateLoan", loanTableName)
	defer func() { endSpan(span, err) }()

	query, args, err := updateLoanQuery(loan)
	if err != nil {
		return err
	}
	return r.exec(ctx, "UpdateLoan", query, args)
}
