package rekuest

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"labtrail.dev/backend/internal/pkg/lterr"
)

var Validate = validator.New()

type ErrorResponse struct {
	Field     string `json:"field,omitempty"`
	Violation string `json:"violation"`
	Message   string `json:"message"`
}

func translate(ve validator.ValidationErrors) []*ErrorResponse {
	trans := []*ErrorResponse{}

	for i := 0; i < len(ve); i++ {
		fe := ve[i]
		trans = append(trans, &ErrorResponse{
			Field:     fe.Namespace(),
			Violation: fe.Tag(),
			Message:   fe.Error(),
		})
	}

	return trans
}

func validateStruct(s any) []*ErrorResponse {
	err := Validate.Struct(s)
	if err != nil {
		errs, ok := err.(validator.ValidationErrors)
		if !ok {
			panic(err)
		}
		return translate(errs)
	}
	return nil
}

// ValidBody will get the body from *fiber.Ctx using fiber#BodyParser(),
// and validate it using the validator singleton. If the validation passed it will write
// the unmarshalled body to dest and return a nil, otherwise it will return an error.
// Notice that dest shall be a pointer to the destination struct.
func ValidBody(ctx *fiber.Ctx, dest any) error {
	if err := ctx.BodyParser(dest); err != nil {
		return lterr.ErrInvalidReq.Msg("invalid request body: %s", err)
	}

	if violations := validateStruct(dest); violations != nil {
		return lterr.NewInvalidViolations(violations)
	}

	return nil
}

// ValidateStruct validates a struct that has already been unmarshalled.
func ValidateStruct(s any) []*ErrorResponse {
	return validateStruct(s)
}
