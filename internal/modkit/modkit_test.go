package modkit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	phttp "alaynorm/internal/platform/net/http"
	kit "alaynorm/internal/platform/testkit"
)

type ports struct{ Answer int }

type testModule struct{ b Built }

func (m testModule) Name() string   { return m.b.Name }
func (m testModule) Prefix() string { return m.b.Prefix }
func (m testModule) Ports() any     { return ports{Answer: 42} }
func (m testModule) MountRoutes(r phttp.Router) {
	m.b.Mount(r, func(sub phttp.Router) {
		sub.Get("/ping", func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte("pong")) })
	})
}

func TestBuildDefaultsAndOptions(t *testing.T) {
	b := Build("normalize", "normalize/")
	if b.Name != "normalize" || b.Prefix != "/normalize" {
		t.Fatalf("Build = %+v", b)
	}
	b = Build("normalize", "/normalize", WithName("norm"), WithPrefix(" /n/ "))
	if b.Name != "norm" || b.Prefix != "/n" {
		t.Fatalf("Build with options = %+v", b)
	}
	kit.MustPanic(t, func() { Build("meta", " / ") })
	kit.MustPanic(t, func() { Build("", "/meta") })
}

func TestMountAPI(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	hits := 0
	mw := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { hits++; next.ServeHTTP(w, r) })
	}
	extra := WithRegister(func(r phttp.Router) {
		r.Get("/extra", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusTeapot) })
	})
	m := testModule{b: Build("meta", "/meta", WithMiddlewares(mw), extra)}

	mux := chi.NewRouter()
	MountAPI(phttp.AdaptChi(mux), nil, m)

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/meta/ping", nil))
	if rr.Body.String() != "pong" || hits != 1 {
		t.Fatalf("ping = %q, middleware hits = %d", rr.Body.String(), hits)
	}

	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/meta/extra", nil))
	if rr.Code != http.StatusTeapot {
		t.Fatalf("extra = %d", rr.Code)
	}

	p, ok := PortsAs[ports]("meta")
	if !ok || p.Answer != 42 {
		t.Fatalf("PortsAs = %+v, %v", p, ok)
	}
	if _, ok := PortsAs[string]("meta"); ok {
		t.Fatalf("PortsAs with wrong type should fail")
	}
	if _, ok := PortsAs[ports]("nope"); ok {
		t.Fatalf("PortsAs for unknown module should fail")
	}
}
