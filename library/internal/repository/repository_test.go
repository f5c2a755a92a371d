package repository

import (
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/Astemirdum/school-library/library/internal/errs"
	"github.com/Astemirdum/school-library/library/internal/model"
)

func TestStudentQueries(t *testing.T) {
	student := model.Student{
		ID:        3,
		Name:      "Ana",
		Surname:   "Silva",
		BirthDate: model.NewDate(2000, time.January, 1),
		Address:   "Rua A",
		Email:     "a@x.com",
		Phone:     "111",
	}

	q, args, err := listStudentsQuery()
	require.NoError(t, err)
	require.Equal(t, "SELECT id_aluno, ra, nome, sobrenome, data_nascimento, endereco, email, celular FROM aluno ORDER BY id_aluno", q)
	require.Empty(t, args)

	q, args, err = insertStudentQuery(student)
	require.NoError(t, err)
	require.Equal(t, "INSERT INTO aluno (nome,sobrenome,data_nascimento,endereco,email,celular) VALUES ($1,$2,$3,$4,$5,$6) RETURNING id_aluno", q)
	require.Equal(t, []interface{}{"Ana", "Silva", student.BirthDate, "Rua A", "a@x.com", "111"}, args)

	q, args, err = updateStudentQuery(student)
	require.NoError(t, err)
	require.Equal(t, "UPDATE aluno SET nome = $1, sobrenome = $2, data_nascimento = $3, endereco = $4, email = $5, celular = $6 WHERE id_aluno = $7", q)
	require.Equal(t, []interface{}{"Ana", "Silva", student.BirthDate, "Rua A", "a@x.com", "111", 3}, args)

	q, args, err = deleteStudentQuery(3)
	require.NoError(t, err)
	require.Equal(t, "DELETE FROM aluno WHERE id_aluno = $1", q)
	require.Equal(t, []interface{}{3}, args)
}

func TestBookQueries(t *testing.T) {
	book := model.Book{
		ID:               9,
		Title:            "Dom Casmurro",
		Author:           "Machado de Assis",
		Publisher:        "Garnier",
		PublicationYear:  "1899",
		ISBN:             "978-85-359-0277-1",
		TotalCopies:      4,
		AvailableCopies:  2,
		AcquisitionValue: 49.9,
		LoanStatus:       "disponivel",
	}

	q, _, err := listBooksQuery()
	require.NoError(t, err)
	require.Equal(t, "SELECT id_livro, titulo, autor, editora, ano_publicacao, isbn, quant_total, quant_disponivel, valor_aquisicao, status_livro_emprestado FROM livro ORDER BY id_livro", q)

	q, args, err := insertBookQuery(book)
	require.NoError(t, err)
	require.Equal(t, "INSERT INTO livro (titulo,autor,editora,ano_publicacao,isbn,quant_total,quant_disponivel,valor_aquisicao,status_livro_emprestado) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9) RETURNING id_livro", q)
	require.Equal(t, []interface{}{"Dom Casmurro", "Machado de Assis", "Garnier", "1899", "978-85-359-0277-1", 4, 2, 49.9, "disponivel"}, args)

	q, args, err = updateBookQuery(book)
	require.NoError(t, err)
	require.Equal(t, "UPDATE livro SET titulo = $1, autor = $2, editora = $3, ano_publicacao = $4, isbn = $5, quant_total = $6, quant_disponivel = $7, valor_aquisicao = $8, status_livro_emprestado = $9 WHERE id_livro = $10", q)
	require.Len(t, args, 10)
	require.Equal(t, 9, args[9])

	q, args, err = deleteBookQuery(9999)
	require.NoError(t, err)
	require.Equal(t, "DELETE FROM livro WHERE id_livro = $1", q)
	require.Equal(t, []interface{}{9999}, args)
}

func TestLoanQueries(t *testing.T) {
	loan := model.Loan{
		ID:        5,
		StudentID: 1,
		BookID:    2,
		LoanDate:  model.NewDate(2024, time.March, 1),
		DueDate:   model.NewDate(2024, time.March, 15),
		Status:    "EM ANDAMENTO",
	}

	q, args, err := listLoansQuery()
	require.NoError(t, err)
	require.Equal(t, "SELECT e.id_emprestimo, e.id_aluno, a.nome, e.id_livro, l.titulo, e.data_emprestimo, e.data_devolucao, e.status_emprestimo "+
		"FROM emprestimo e JOIN aluno a ON a.id_aluno = e.id_aluno JOIN livro l ON l.id_livro = e.id_livro ORDER BY e.id_emprestimo", q)
	require.Empty(t, args)

	q, args, err = insertLoanQuery(loan)
	require.NoError(t, err)
	require.Equal(t, "INSERT INTO emprestimo (id_aluno,id_livro,data_emprestimo,data_devolucao,status_emprestimo) VALUES ($1,$2,$3,$4,$5) RETURNING id_emprestimo", q)
	require.Equal(t, []interface{}{1, 2, loan.LoanDate, loan.DueDate, "EM ANDAMENTO"}, args)

	q, args, err = updateLoanQuery(loan)
	require.NoError(t, err)
	require.Equal(t, "UPDATE emprestimo SET id_aluno = $1, id_livro = $2, data_emprestimo = $3, data_devolucao = $4, status_emprestimo = $5 WHERE id_emprestimo = $6", q)
	require.Equal(t, []interface{}{1, 2, loan.LoanDate, loan.DueDate, "EM ANDAMENTO", 5}, args)
}

func drawDate(t *rapid.T, label string) model.Date {
	return model.NewDate(
		rapid.IntRange(1900, 2100).Draw(t, label+"Year"),
		time.Month(rapid.IntRange(1, 12).Draw(t, label+"Month")),
		rapid.IntRange(1, 28).Draw(t, label+"Day"),
	)
}

// Values only ever travel as bound arguments: the statement text is the same
// for every payload, including ones carrying SQL metacharacters.
func TestQueries_ValuesAreBound(t *testing.T) {
	wantInsertStudent, _, err := insertStudentQuery(model.Student{})
	require.NoError(t, err)
	wantUpdateBook, _, err := updateBookQuery(model.Book{})
	require.NoError(t, err)
	wantInsertLoan, _, err := insertLoanQuery(model.Loan{})
	require.NoError(t, err)

	text := rapid.OneOf(rapid.String(), rapid.SampledFrom([]string{"'; DROP TABLE aluno; --", "O'Brien", "$1", "\\"}))

	rapid.Check(t, func(t *rapid.T) {
		s := model.Student{
			Name:      text.Draw(t, "nome"),
			Surname:   text.Draw(t, "sobrenome"),
			BirthDate: drawDate(t, "nascimento"),
			Address:   text.Draw(t, "endereco"),
			Email:     text.Draw(t, "email"),
			Phone:     text.Draw(t, "celular"),
		}
		q, args, err := insertStudentQuery(s)
		if err != nil {
			t.Fatal(err)
		}
		if q != wantInsertStudent {
			t.Fatalf("statement depends on payload: %q", q)
		}
		want := []interface{}{s.Name, s.Surname, s.BirthDate, s.Address, s.Email, s.Phone}
		if len(args) != len(want) {
			t.Fatalf("args %v", args)
		}
		for i := range want {
			if args[i] != want[i] {
				t.Fatalf("arg %d = %v, want %v", i, args[i], want[i])
			}
		}

		b := model.Book{
			ID:               rapid.IntRange(1, 1<<30).Draw(t, "idLivro"),
			Title:            text.Draw(t, "titulo"),
			Author:           text.Draw(t, "autor"),
			ISBN:             text.Draw(t, "isbn"),
			TotalCopies:      rapid.IntRange(0, 1000).Draw(t, "quantTotal"),
			AcquisitionValue: rapid.Float64Range(0, 10000).Draw(t, "valor"),
		}
		q, args, err = updateBookQuery(b)
		if err != nil {
			t.Fatal(err)
		}
		if q != wantUpdateBook {
			t.Fatalf("statement depends on payload: %q", q)
		}
		if args[0] != b.Title || args[len(args)-1] != b.ID {
			t.Fatalf("unexpected args %v", args)
		}

		l := model.Loan{
			StudentID: rapid.IntRange(1, 1<<30).Draw(t, "idAluno"),
			BookID:    rapid.IntRange(1, 1<<30).Draw(t, "idLivro"),
			LoanDate:  drawDate(t, "emprestimo"),
			DueDate:   drawDate(t, "devolucao"),
			Status:    text.Draw(t, "status"),
		}
		q, args, err = insertLoanQuery(l)
		if err != nil {
			t.Fatal(err)
		}
		if q != wantInsertLoan {
			t.Fatalf("statement depends on payload: %q", q)
		}
		if args[0] != l.StudentID || args[1] != l.BookID || args[4] != l.Status {
			t.Fatalf("unexpected args %v", args)
		}
	})
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "foreign key",
			err:  &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "emprestimo_id_aluno_fkey"},
			want: errs.ErrReference,
		},
		{
			name: "unique",
			err:  &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "aluno_ra_key"},
			want: errs.ErrConflict,
		},
		{
			name: "too long",
			err:  &pgconn.PgError{Code: pgerrcode.StringDataRightTruncationDataException, Message: "value too long"},
			want: errs.ErrInvalid,
		},
		{
			name: "wrapped pg error",
			err:  errors.Wrap(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}, "exec"),
			want: errs.ErrReference,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, classify(tt.err, "op"), tt.want)
		})
	}

	plain := errors.New("connection refused")
	got := classify(plain, "ListBooks")
	require.ErrorIs(t, got, plain)
	require.NotErrorIs(t, got, errs.ErrNotFound)
	require.Equal(t, "ListBooks: connection refused", got.Error())
}
