package cli

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Field limits mirror the column widths in the schema so bad input is
// rejected before it reaches storage.

type authorNameInput struct {
	Name string `validate:"required,max=100"`
}

type bookTitleInput struct {
	Title string `validate:"required,max=100"`
}

func validateAuthorName(name string) error {
	return validate.Struct(authorNameInput{Name: name})
}

func validateBookTitle(title string) error {
	return validate.Struct(bookTitleInput{Title: title})
}
