// file: internals/helpers/validation.go
package helper

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// NewValidator membuat instance validator yang melaporkan nama field
// sesuai json tag (bukan nama field Go), supaya fieldErrors cocok
// dengan payload yang dikirim client.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// ValidateStruct menjalankan validasi tag dan menerjemahkan hasilnya ke
// map fieldErrors. messages memetakan "field.tag" (atau "field") ke pesan
// khusus; selain itu dipakai pesan generik.
func ValidateStruct(v *validator.Validate, s any, messages map[string]string) *ValidationError {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return SingleFieldError("_", err.Error())
	}

	fieldErrors := map[string][]string{}
	for _, fe := range verrs {
		field := fe.Field()
		msg := messages[field+"."+fe.Tag()]
		if msg == "" {
			msg = messages[field]
		}
		if msg == "" {
			msg = genericMessage(fe)
		}
		fieldErrors[field] = append(fieldErrors[field], msg)
	}
	return NewValidationError(fieldErrors)
}

func genericMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Field " + fe.Field() + " wajib diisi"
	case "min":
		return "Field " + fe.Field() + " minimal " + fe.Param()
	case "max":
		return "Field " + fe.Field() + " maksimal " + fe.Param()
	case "url":
		return "Field " + fe.Field() + " harus berupa URL valid"
	case "oneof":
		return "Field " + fe.Field() + " tidak termasuk pilihan yang valid"
	default:
		return "Field " + fe.Field() + " tidak valid"
	}
}
