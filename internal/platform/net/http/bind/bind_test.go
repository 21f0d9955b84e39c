package bind

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "alaynorm/internal/platform/errors"
)

type req struct {
	Text  string   `json:"text" validate:"required,max=20"`
	Skip  []string `json:"skip,omitempty" validate:"omitempty,dive,oneof=leet typo"`
	Trace bool     `json:"trace"`
}

func post(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/v1/normalize", strings.NewReader(body))
}

func TestParseJSON_OK(t *testing.T) {
	got, err := ParseJSON[req](post(`{"text":"h4l0o","skip":["leet"],"trace":true}`))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if got.Text != "h4l0o" || len(got.Skip) != 1 || !got.Trace {
		t.Fatalf("ParseJSON = %+v", got)
	}
}

func TestParseJSON_Failures(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		opts  []JSONOptions
		code  perr.ErrorCode
		field string
		msg   string
	}{
		{name: "empty", body: "", code: perr.ErrorCodeJSON, msg: "empty body"},
		{name: "broken", body: `{"text":`, code: perr.ErrorCodeJSON},
		{name: "unknown field", body: `{"text":"a","mode":"x"}`, code: perr.ErrorCodeJSON},
		{name: "trailing", body: `{"text":"a"} {"text":"b"}`, code: perr.ErrorCodeJSON},
		{name: "required", body: `{"text":""}`, code: perr.ErrorCodeValidation, field: "text", msg: "text is a required field"},
		{name: "max", body: `{"text":"aaaaaaaaaaaaaaaaaaaaaaaa"}`, code: perr.ErrorCodeValidation, field: "text", msg: "text must be at most 20"},
		{name: "dive", body: `{"text":"a","skip":["stem"]}`, code: perr.ErrorCodeValidation, field: "skip[0]"},
		{name: "too large", body: `{"text":"aaaaaaaaaaaaaaaa"}`, opts: []JSONOptions{{MaxBytes: 8}}, code: perr.ErrorCodeTooLarge},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseJSON[req](post(tc.body), tc.opts...)
			e, ok := perr.As(err)
			if !ok || e.Code() != tc.code {
				t.Fatalf("err = %v, want code %v", err, tc.code)
			}
			if tc.field != "" && e.Field() != tc.field {
				t.Fatalf("field = %q, want %q", e.Field(), tc.field)
			}
			if tc.msg != "" && e.ToWire().Message != tc.msg {
				t.Fatalf("message = %q, want %q", e.ToWire().Message, tc.msg)
			}
		})
	}
}

func TestParseJSON_Options(t *testing.T) {
	_, err := ParseJSON[req](post(`{"text":"a","extra":1}`), JSONOptions{AllowUnknown: true})
	if err != nil {
		t.Fatalf("AllowUnknown: %v", err)
	}

	type opt struct {
		Words bool `json:"words"`
	}
	got, err := ParseJSON[opt](post(""), JSONOptions{AllowEmptyBody: true})
	if err != nil || got.Words {
		t.Fatalf("AllowEmptyBody = %+v, %v", got, err)
	}
}

func TestRegister(t *testing.T) {
	err := Register("even_len", "{0} must have an even length", func(fl FieldLevel) bool {
		return len(fl.Field().String())%2 == 0
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	type in struct {
		Code string `json:"code" validate:"even_len"`
	}
	err = Validate(in{Code: "abc"})
	e, ok := perr.As(err)
	if !ok || e.Field() != "code" || e.ToWire().Message != "code must have an even length" {
		t.Fatalf("Validate = %v", err)
	}
	if err := Validate(in{Code: "ab"}); err != nil {
		t.Fatalf("Validate(ok) = %v", err)
	}
}

func TestFieldAndMessage(t *testing.T) {
	if f, m := FieldAndMessage(nil); f != "" || m != "" {
		t.Fatalf("nil = %q %q", f, m)
	}
	if f, m := FieldAndMessage(perr.Internalf("x")); f != "" || m != "x" {
		t.Fatalf("foreign = %q %q", f, m)
	}
}
