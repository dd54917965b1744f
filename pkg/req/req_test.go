package req

import (
	"io"
	"strings"
	"testing"
)

type contact struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

func body(s string) io.ReadCloser { return io.NopCloser(strings.NewReader(s)) }

func TestDecodeEmptyBody(t *testing.T) {
	got, err := Decode[contact](body(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "" {
		t.Fatalf("expected zero value, got %+v", got)
	}
}

func TestDecodeAndValidate(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{"valid", `{"name":"An","email":"an@example.com"}`, false},
		{"missing name", `{"email":"an@example.com"}`, true},
		{"bad email", `{"name":"An","email":"nope"}`, true},
		{"broken json", `{"name":`, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeAndValidate[contact](body(tc.in))
			if (err != nil) != tc.wantErr {
				t.Fatalf("wantErr=%v, got %v", tc.wantErr, err)
			}
		})
	}
}
