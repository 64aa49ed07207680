package handlers

import (
	"errors"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/gobridge/autoresponder/views"
)

// submission is the content of the editor modal. Field names reported by
// the validator are the block IDs, which is what Slack expects errors to be
// keyed by.
type submission struct {
	Keyword  string `block:"keyword" validate:"required,notblank,max=99"`
	Response string `block:"response" validate:"required,notblank"`
}

var (
	validate = newValidator()

	fieldMessages = map[string]map[string]string{
		views.BlockKeyword: {
			"required": "Keyword must not be empty",
			"notblank": "Keyword must not be blank",
			"max":      "Keyword must be shorter than 100 characters",
		},
		views.BlockResponse: {
			"required": "Response must not be empty",
			"notblank": "Response must not be blank",
		},
	}
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("block")
	})
	// A whitespace keyword would match nearly every message.
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	return v
}

// validate returns the field errors keyed by block ID, or nil.
func (s submission) validate() map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{views.BlockKeyword: err.Error()}
	}

	errs := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		msg, ok := fieldMessages[fe.Field()][fe.Tag()]
		if !ok {
			msg = fe.Error()
		}
		errs[fe.Field()] = msg
	}
	return errs
}
