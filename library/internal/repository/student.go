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

var studentColumns = []string{"id_aluno", "ra", "nome", "sobrenome", "data_nascimento", "endereco", "email", "celular"}

func listStudentsQuery() (string, []interface{}, error) {
	return qb.Select(studentColumns...).
		From(studentTableName).
		OrderBy("id_aluno").
		ToSql()
}

func insertStudentQuery(s model.Student) (string, []interface{}, error) {
	return qb.Insert(studentTableName).
		Columns("nome", "sobrenome", "data_nascimento", "endereco", "email", "celular").
		Values(s.Name, s.Surname, s.BirthDate, s.Address, s.Email, s.Phone).
		Suffix("RETURNING id_aluno").
		ToSql()
}

func updateStudentQuery(s model.Student) (string, []interface{}, error) {
	return qb.Update(studentTableName).
		Set("nome", s.Name).
		Set("sobrenome", s.Surname).
		Set("data_nascimento", s.BirthDate).
		Set("endereco", s.Address).
		Set("email", s.Email).
		Set("celular", s.Phone).
		Where(sq.Eq{"id_aluno": s.ID}).
		ToSql()
}

func deleteStudentQuery(id int) (string, []interface{}, error) {
	return qb.Delete(studentTableName).
		Where(sq.Eq{"id_aluno": id}).
		ToSql()
}

func (r *repository) ListStudents(ctx context.Context) (_ []model.Student, err error) {
	ctx, span := r.startSpan(ctx, "ListStudents", studentTableName)
	defer func() { endSpan(span, err) }()

	query, args, err := listStudentsQuery()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, classify(err, "ListStudents")
	}
	defer rows.Close()

	students, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Student])
	if err != nil {
		return nil, errors.Wrap(err, "pgx.CollectRows")
	}
	span.SetAttributes(attribute.Int("db.rows", len(students)))
	return students, nil
}

func (r *repository) CreateStudent(ctx context.Context, student model.Student) (_ int, err error) {
	ctx, span := r.startSpan(ctx, "CreateStudent", studentTableName)
	defer func() { endSpan(span, err) }()

	query, args, err := insertStudentQuery(student)
	if err != nil {
		return 0, err
	}
	var id int
	if err = r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		r.log.Error("CreateStudent", zap.String("q", query), zap.Error(err))
		return 0, classify(err, "CreateStudent")
	}
	r.log.Info("student created", zap.Int("id_aluno", id))
	return id, nil
}

func (r *repository) UpdateStudent(ctx context.Context, student model.Student) (err error) {
	ctx, span := r.startSpan(ctx, "UpdateStudent", studentTableName)
	defer func() { endSpan(span, err) }()

	query, args, err := updateStudentQuery(student)
	if err != nil {
		return err
	}
	return r.exec(ctx, "UpdateStudent", query, args)
}

func (r *repository) DeleteStudent(ctx context.Context, id int) (err error) {
	ctx, span := r.startSpan(ctx, "DeleteStudent", studentTableName)
	defer func() { endSpan(span, err) }()

	query, args, err := deleteStudentQuery(id)
	if err != nil {
		return err
	}
	return r.exec(ctx, "DeleteStudent", query, args)
}
