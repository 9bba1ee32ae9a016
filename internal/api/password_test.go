package api

import (
	"bytes"
	"encoding/json"
	"github.com/alvinbaena/pwd-tool/pkg/generator"
	"github.com/alvinbaena/pwd-tool/pkg/strength"
	"github.com/gin-gonic/gin"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func testConfig() Config {
	return Config{
		Port:           DefaultPort,
		SelfTLS:        true,
		MinLength:      DefaultMinLength,
		MaxLength:      DefaultMaxLength,
		DefaultLength:  DefaultLength,
		DefaultSymbols: true,
		CacheSize:      100,
	}
}

func testRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	est, err := strength.NewEstimator(100)
	if err != nil {
		t.Fatalf("Should not fail creating estimator: %s", err)
	}
	t.Cleanup(est.Close)

	router, err := NewRouter(testConfig(), generator.New(7, 11), est)
	if err != nil {
		t.Fatalf("Should not fail creating router: %s", err)
	}
	return router
}

func do(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCheckStrength(t *testing.T) {
	router := testRouter(t)

	cases := []struct {
		body     string
		label    string
		color    string
		score    int
		estimate bool
	}{
		{`{"password": "password"}`, strength.LabelWeak, strength.WeakColor, 3, true},
		{`{"password": "Password1!"}`, strength.LabelOkay, strength.OkayColor, 6, true},
		{`{"password": "Correct-Horse-Battery-99"}`, strength.LabelStrong, strength.StrongColor, 10, true},
		{`{"password": ""}`, strength.LabelEmpty, strength.PlaceholderColor, 0, false},
	}

	for _, tc := range cases {
		w := do(router, http.MethodPost, "/v1/strength", tc.body)
		if w.Code != http.StatusOK {
			t.Errorf("Should respond 200 for %s, got %d: %s", tc.body, w.Code, w.Body.String())
			continue
		}

		var resp strengthResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Errorf("Should not fail decoding response: %s", err)
			continue
		}

		if resp.Label != tc.label || resp.Color != tc.color || resp.Score != tc.score {
			t.Errorf("%s: got (%s, %s, %d), want (%s, %s, %d)",
				tc.body, resp.Label, resp.Color, resp.Score, tc.label, tc.color, tc.score)
		}
		if (resp.Estimate != nil) != tc.estimate {
			t.Errorf("%s: estimate presence should be %t", tc.body, tc.estimate)
		}
	}
}

func TestCheckStrength_BadRequest(t *testing.T) {
	router := testRouter(t)

	for _, body := range []string{`{}`, `{"password": 12}`, `not json`} {
		if w := do(router, http.MethodPost, "/v1/strength", body); w.Code != http.StatusBadRequest {
			t.Errorf("Should respond 400 for %s, got %d", body, w.Code)
		}
	}
}

func TestGeneratePassword(t *testing.T) {
	router := testRouter(t)

	cases := []struct {
		body    string
		length  int
		symbols bool
	}{
		{"", DefaultLength, true},
		{`{}`, DefaultLength, true},
		{`{"length": 5, "include_symbols": false}`, 5, false},
		{`{"length": 50}`, 50, true},
		{`{"include_symbols": false}`, DefaultLength, false},
	}

	for _, tc := range cases {
		w := do(router, http.MethodPost, "/v1/generate", tc.body)
		if w.Code != http.StatusOK {
			t.Errorf("Should respond 200 for %q, got %d: %s", tc.body, w.Code, w.Body.String())
			continue
		}

		var resp generateResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Errorf("Should not fail decoding response: %s", err)
			continue
		}

		if len(resp.Password) != tc.length || resp.Length != tc.length {
			t.Errorf("%q: password length %d (reported %d), want %d", tc.body, len(resp.Password), resp.Length, tc.length)
		}
		for _, r := range resp.Password {
			if !strings.ContainsRune(generator.Pool(tc.symbols), r) {
				t.Errorf("%q: %q is not in the pool", tc.body, r)
			}
		}
		if want := strength.Evaluate(resp.Password); resp.Strength.Label != want.Label {
			t.Errorf("%q: strength %s, want %s", tc.body, resp.Strength.Label, want.Label)
		}
	}
}

func TestGeneratePassword_OutOfRange(t *testing.T) {
	router := testRouter(t)

	for _, body := range []string{`{"length": 4}`, `{"length": 51}`, `{"length": -5}`, `{"length": "x"}`} {
		if w := do(router, http.MethodPost, "/v1/generate", body); w.Code != http.StatusBadRequest {
			t.Errorf("Should respond 400 for %s, got %d", body, w.Code)
		}
	}
}

func TestHealth(t *testing.T) {
	router := testRouter(t)

	w := do(router, http.MethodGet, "/v1/health", "")
	if w.Code != http.StatusOK || !bytes.Contains(w.Body.Bytes(), []byte(`"ok"`)) {
		t.Errorf("Should respond ok, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRegisterPasswordApi_Nil(t *testing.T) {
	gin.SetMode(gin.TestMode)
	if err := RegisterPasswordApi(gin.New().Group("/"), testConfig(), nil, nil); err == nil {
		t.Errorf("Should fail without generator and estimator")
	}
}

func TestCheckStrength_LongPassword(t *testing.T) {
	router := testRouter(t)

	body, _ := json.Marshal(map[string]string{"password": strings.Repeat("aB3-xyz!", 625)})
	w := do(router, http.MethodPost, "/v1/strength", string(body))
	if w.Code != http.StatusOK {
		t.Fatalf("Should respond 200 for a long password, got %d", w.Code)
	}

	var resp strengthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Should not fail decoding response: %s", err)
	}
	if resp.Label != strength.LabelStrong || resp.Estimate == nil {
		t.Errorf("Long password should be strong with an estimate, got %+v", resp)
	}
}

func TestGeneratePassword_EmptyChunkedBody(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/generate", strings.NewReader(""))
	req.ContentLength = -1
	req.TransferEncoding = []string{"chunked"}
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Should use the defaults for an empty chunked body, got %d: %s", w.Code, w.Body.String())
	}

	var resp generateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Should not fail decoding response: %s", err)
	}
	if resp.Length != DefaultLength {
		t.Errorf("Length: %d, want: %d", resp.Length, DefaultLength)
	}
}
