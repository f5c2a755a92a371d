package main

import (
	stdLog "log"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"

	"github.com/Astemirdum/school-library/library/app"
	"github.com/Astemirdum/school-library/library/config"
)

// @title Biblioteca API
// @version 1.0
// @description Cadastro de alunos, livros e empréstimos de uma biblioteca escolar.
// @BasePath /
func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Println("no .env file, reading the environment only")
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.InfoLevel),
		config.WithWriteTimeout(time.Minute),
	)

	if err := app.Run(cfg); err != nil {
		stdLog.Fatal("app.Run ", err)
	}
}
