package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Astemirdum/school-library/library/internal/model"
	libraryRepo "github.com/Astemirdum/school-library/library/internal/repository"
	"github.com/Astemirdum/school-library/pkg/kafka"
)

type Service struct {
	log    *zap.Logger
	repo   libraryRepo.Repository
	events kafka.Publisher
}

func NewService(repo libraryRepo.Repository, events kafka.Publisher, log *zap.Logger) *Service {
	if events == nil {
		events = kafka.NewNopPublisher()
	}
	return &Service{
		log:    log.Named("service"),
		repo:   repo,
		events: events,
	}
}

// publish never fails the caller: the record is already committed.
func (s *Service) publish(ctx context.Context, entity kafka.Entity, action kafka.Action, id int) {
	if err := s.events.Publish(ctx, entity, action, id); err != nil {
		s.log.Warn("publish event",
			zap.String("entity", string(entity)),
			zap.String("action", string(action)),
			zap.Int("id", id),
			zap.Error(err))
	}
}

func (s *Service) Ping(ctx context.Context) bool {
	return s.repo.Ping(ctx)
}

func (s *Service) ListStudents(ctx context.Context) ([]model.Student, error) {
	return s.repo.ListStudents(ctx)
}

func (s *Service) CreateStudent(ctx context.Context, student model.Student) (int, error) {
	id, err := s.repo.CreateStudent(ctx, student)
	if err != nil {
		return 0, err
	}
	s.publish(ctx, kafka.EntityStudent, kafka.ActionCreated, id)
	return id, nil
}

func (s *Service) UpdateStudent(ctx context.Context, student model.Student) error {
	if err := s.repo.UpdateStudent(ctx, student); err != nil {
		return err
	}
	s.publish(ctx, kafka.EntityStudent, kafka.ActionUpdated, student.ID)
	return nil
}

func (s *Service) DeleteStudent(ctx context.Context, id int) error {
	if err := s.repo.DeleteStudent(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, kafka.EntityStudent, kafka.ActionDeleted, id)
	return nil
}

func (s *Service) ListBooks(ctx context.Context) ([]model.Book, error) {
	return s.repo.ListBooks(ctx)
}

func (s *Service) CreateBook(ctx context.Context, book model.Book) (int, error) {
	id, err := s.repo.CreateBook(ctx, book)
	if err != nil {
		return 0, err
	}
	s.publish(ctx, kafka.EntityBook, kafka.ActionCreated, id)
	return id, nil
}

func (s *Service) UpdateBook(ctx context.Context, book model.Book) error {
	if err := s.repo.UpdateBook(ctx, book); err != nil {
		return err
	}
	s.publish(ctx, kafka.EntityBook, kafka.ActionUpdated, book.ID)
	return nil
}

func (s *Service) DeleteBook(ctx context.Context, id int) error {
	if err := s.repo.DeleteBook(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, kafka.EntityBook, kafka.ActionDeleted, id)
	return nil
}

func (s *Service) ListLoans(ctx context.Context) ([]model.LoanView, error) {
	return s.repo.ListLoans(ctx)
}

func (s *Service) CreateLoan(ctx context.Context, loan model.Loan) (int, error) {
	id, err := s.repo.CreateLoan(ctx, loan)
	if err != nil {
		return 0, err
	}
	s.publish(ctx, kafka.EntityLoan, kafka.ActionCreated, id)
	return id, nil
}

func (s *Service) UpdateLoan(ctx context.Context, loan model.Loan) error {
	if err := s.repo.UpdateLoan(ctx, loan); err != nil {
		return err
	}
	s.publish(ctx, kafka.EntityLoan, kafka.ActionUpdated, loan.ID)
	return nil
}
