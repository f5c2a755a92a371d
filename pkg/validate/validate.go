package validate

import (
	"reflect"
	"strings"

	"github.com/go-playground/locales/pt_BR"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	ptBRTranslations "github.com/go-playground/validator/v10/translations/pt_BR"
	"github.com/pkg/errors"
)

// Error is a failed validation with one Portuguese message per field.
type Error struct {
	Messages []string
}

func (e *Error) Error() string {
	return strings.Join(e.Messages, "; ")
}

type CustomValidator struct {
	validator *validator.Validate
	trans     ut.Translator
}

func NewCustomValidator() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)

	locale := pt_BR.New()
	trans, _ := ut.New(locale, locale).GetTranslator(locale.Locale())
	if err := ptBRTranslations.RegisterDefaultTranslations(v, trans); err != nil {
		panic(errors.Wrap(err, "register pt_BR translations"))
	}
	return &CustomValidator{
		validator: v,
		trans:     trans,
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	err := cv.validator.Struct(i)
	var fields validator.ValidationErrors
	if !errors.As(err, &fields) {
		return err
	}
	msgs := make([]string, 0, len(fields))
	for _, fe := range fields {
		msgs = append(msgs, fe.Translate(cv.trans))
	}
	return &Error{Messages: msgs}
}

// jsonName reports fields under their JSON names.
func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	}
	return name
}
