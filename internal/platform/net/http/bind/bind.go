// Package bind decodes JSON request bodies and validates them with
// go-playground/validator, reporting failures as perr errors
package bind

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entrans "github.com/go-playground/validator/v10/translations/en"

	perr "alaynorm/internal/platform/errors"
	"alaynorm/internal/platform/logger"
)

// FieldLevel is what custom validators receive
type FieldLevel = validator.FieldLevel

// Validator pairs the validator with its English translator
type Validator struct {
	V     *validator.Validate
	Trans ut.Translator
}

var (
	once sync.Once
	inst *Validator
)

// Get returns the shared validator, building it on first use
// Field names in messages come from json tags
func Get() *Validator {
	once.Do(func() {
		loc := en.New()
		trans, _ := ut.New(loc, loc).GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})
		_ = entrans.RegisterDefaultTranslations(v, trans)
		inst = &Validator{V: v, Trans: trans}

		// terser than the stock wording
		_ = inst.translate("max", "{0} must be at most {1}", true)
		_ = inst.translate("min", "{0} must be at least {1}", true)
	})
	return inst
}

// Register adds a custom tag with its English message; {0} is the field, {1} the param
func Register(tag, msg string, fn validator.Func) error {
	vs := Get()
	if err := vs.V.RegisterValidation(tag, fn); err != nil {
		return err
	}
	return vs.translate(tag, msg, true)
}

func (vs *Validator) translate(tag, msg string, override bool) error {
	return vs.V.RegisterTranslation(tag, vs.Trans,
		func(t ut.Translator) error { return t.Add(tag, msg, override) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field(), fe.Param())
			return s
		},
	)
}

// JSONOptions controls decoding
type JSONOptions struct {
	MaxBytes       int64 // 0 means no limit
	AllowUnknown   bool
	AllowEmptyBody bool
}

// DefaultMaxBytes caps bodies when no options are given
const DefaultMaxBytes = 1 << 20

// ParseJSON decodes one T from the body and validates it
// Oversized bodies are ErrorCodeTooLarge, bad JSON ErrorCodeJSON and
// rule failures ErrorCodeValidation with the offending field attached
func ParseJSON[T any](r *http.Request, opts ...JSONOptions) (T, error) {
	var zero T
	o := JSONOptions{MaxBytes: DefaultMaxBytes}
	if len(opts) > 0 {
		o = opts[0]
	}
	if r.Body == nil {
		r.Body = http.NoBody
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			logger.C(r.Context()).Debug().Err(err).Msg("close request body")
		}
	}()

	body := io.Reader(r.Body)
	if o.MaxBytes > 0 {
		body = http.MaxBytesReader(nil, r.Body, o.MaxBytes)
	}
	dec := json.NewDecoder(body)
	if !o.AllowUnknown {
		dec.DisallowUnknownFields()
	}

	var dst T
	if err := dec.Decode(&dst); err != nil {
		var tooBig *http.MaxBytesError
		switch {
		case errors.As(err, &tooBig):
			return zero, perr.TooLargef("body exceeds %d bytes", tooBig.Limit)
		case errors.Is(err, io.EOF) && o.AllowEmptyBody:
			// fall through to validation of the zero value
		case errors.Is(err, io.EOF):
			return zero, perr.JSONErrf("empty body")
		default:
			return zero, perr.JSONErrf("invalid JSON: %v", err)
		}
	} else if dec.More() {
		return zero, perr.JSONErrf("unexpected data after JSON body")
	}

	if err := Validate(dst); err != nil {
		return zero, err
	}
	return dst, nil
}

// Validate runs struct rules on v; the first failure becomes the error
func Validate(v any) error {
	err := Get().V.Struct(v)
	if err == nil {
		return nil
	}
	var inv *validator.InvalidValidationError
	if errors.As(err, &inv) {
		return perr.Wrap(err, perr.ErrorCodeUnknown, "validator misuse")
	}
	field, msg := FieldAndMessage(err)
	return perr.WithField(perr.Validationf("%s", msg), field)
}

// FieldAndMessage returns the first failing field and its translated message
func FieldAndMessage(err error) (field, msg string) {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		return fe.Field(), fe.Translate(Get().Trans)
	}
	if err == nil {
		return "", ""
	}
	return "", err.Error()
}
