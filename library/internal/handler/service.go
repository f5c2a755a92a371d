package handler

import (
	"context"

	"github.com/Astemirdum/school-library/library/internal/model"
	"github.com/Astemirdum/school-library/library/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type LibraryService interface {
	Ping(ctx context.Context) bool

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
}

var _ LibraryService = (*service.Service)(nil)
