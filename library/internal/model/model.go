package model

// Student is a row of the aluno table.
type Student struct {
	ID        int    `json:"idAluno" db:"id_aluno"`
	RA        string `json:"ra" db:"ra"`
	Name      string `json:"nome" db:"nome"`
	Surname   string `json:"sobrenome" db:"sobrenome"`
	BirthDate Date   `json:"dataNascimento" db:"data_nascimento"`
	Address   string `json:"endereco" db:"endereco"`
	Email     string `json:"email" db:"email"`
	Phone     string `json:"celular" db:"celular"`
}

type StudentRequest struct {
	Name      string `json:"nome" validate:"required,max=80"`
	Surname   string `json:"sobrenome" validate:"required,max=80"`
	BirthDate Date   `json:"dataNascimento" validate:"required"`
	Address   string `json:"endereco" validate:"max=200"`
	Email     string `json:"email" validate:"omitempty,email,max=80"`
	Phone     string `json:"celular" validate:"max=20"`
}

func (r StudentRequest) Student(id int) Student {
	return Student{
		ID:        id,
		Name:      r.Name,
		Surname:   r.Surname,
		BirthDate: r.BirthDate,
		Address:   r.Address,
		Email:     r.Email,
		Phone:     r.Phone,
	}
}

// Book is a row of the livro table.
type Book struct {
	ID               int     `json:"idLivro" db:"id_livro"`
	Title            string  `json:"titulo" db:"titulo"`
	Author           string  `json:"autor" db:"autor"`
	Publisher        string  `json:"editora" db:"editora"`
	PublicationYear  string  `json:"anoPublicacao" db:"ano_publicacao"`
	ISBN             string  `json:"isbn" db:"isbn"`
	TotalCopies      int     `json:"quantTotal" db:"quant_total"`
	AvailableCopies  int     `json:"quantDisponivel" db:"quant_disponivel"`
	AcquisitionValue float64 `json:"valorAquisicao" db:"valor_aquisicao"`
	LoanStatus       string  `json:"statusLivroEmprestado" db:"status_livro_emprestado"`
}

type BookRequest struct {
	Title            string  `json:"titulo" validate:"required,max=200"`
	Author           string  `json:"autor" validate:"required,max=150"`
	Publisher        string  `json:"editora" validate:"max=100"`
	PublicationYear  string  `json:"ano_publicacao" validate:"max=10"`
	ISBN             string  `json:"isbn" validate:"max=20"`
	TotalCopies      int     `json:"quant_total" validate:"gte=0"`
	AvailableCopies  int     `json:"quant_disponivel" validate:"gte=0,ltefield=TotalCopies"`
	AcquisitionValue float64 `json:"valor_aquisicao" validate:"gte=0"`
	LoanStatus       string  `json:"status_livro_emprestado" validate:"max=20"`
}

func (r BookRequest) Book(id int) Book {
	return Book{
		ID:               id,
		Title:            r.Title,
		Author:           r.Author,
		Publisher:        r.Publisher,
		PublicationYear:  r.PublicationYear,
		ISBN:             r.ISBN,
		TotalCopies:      r.TotalCopies,
		AvailableCopies:  r.AvailableCopies,
		AcquisitionValue: r.AcquisitionValue,
		LoanStatus:       r.LoanStatus,
	}
}

// Loan is a row of the emprestimo table.
type Loan struct {
	ID        int    `json:"idEmprestimo" db:"id_emprestimo"`
	StudentID int    `json:"idAluno" db:"id_aluno"`
	BookID    int    `json:"idLivro" db:"id_livro"`
	LoanDate  Date   `json:"dataEmprestimo" db:"data_emprestimo"`
	DueDate   Date   `json:"dataDevolucao" db:"data_devolucao"`
	Status    string `json:"statusEmprestimo" db:"status_emprestimo"`
}

type LoanRequest struct {
	StudentID int    `json:"idAluno" validate:"required,gt=0"`
	BookID    int    `json:"idLivro" validate:"required,gt=0"`
	LoanDate  Date   `json:"dataEmprestimo" validate:"required"`
	DueDate   Date   `json:"dataDevolucao" validate:"required"`
	Status    string `json:"statusEmprestimo" validate:"required,max=20"`
}

func (r LoanRequest) Loan(id int) Loan {
	return Loan{
		ID:        id,
		StudentID: r.StudentID,
		BookID:    r.BookID,
		LoanDate:  r.LoanDate,
		DueDate:   r.DueDate,
		Status:    r.Status,
	}
}

// LoanView is a loan flattened with its student's name and book's title.
type LoanView struct {
	ID          int    `json:"idEmprestimo" db:"id_emprestimo"`
	StudentID   int    `json:"idAluno" db:"id_aluno"`
	StudentName string `json:"nomeAluno" db:"nome"`
	BookID      int    `json:"idLivro" db:"id_livro"`
	BookTitle   string `json:"tituloLivro" db:"titulo"`
	LoanDate    Date   `json:"dataEmprestimo" db:"data_emprestimo"`
	DueDate     Date   `json:"dataDevolucao" db:"data_devolucao"`
	Status      string `json:"statusEmprestimo" db:"status_emprestimo"`
}

type Message struct {
	Message string `json:"mensagem"`
}
