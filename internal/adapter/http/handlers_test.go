package adapthttp_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	adapthttp "healthtracker/internal/adapter/http"
	"healthtracker/internal/adapter/memory"
	"healthtracker/internal/app"
)

// newTestServer backs the full handler stack with the in-memory adapter, the
// same wiring DB_TYPE=memory selects in main.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	db := memory.New()
	users := memory.NewUserRepo(db)

	srv := adapthttp.New(
		app.NewUserService(users),
		app.NewBmiService(memory.NewBmiRepo(db), users),
		app.NewSleepService(memory.NewSleepRepo(db), users),
		app.NewWaterService(memory.NewWaterRepo(db), users),
		app.NewHealthTipService(memory.NewHealthTipRepo(db)),
	)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func doJSON(t *testing.T, method, url string, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, bytes.NewBufferString(body))
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close() //nolint:errcheck
	var m map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return m
}

func decodeList(t *testing.T, resp *http.Response) []map[string]any {
	t.Helper()
	defer resp.Body.Close() //nolint:errcheck
	var l []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&l); err != nil {
		t.Fatalf("failed to decode response list: %v", err)
	}
	return l
}

func TestHealthEndpoint(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/health")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if body := decodeBody(t, resp); body["ok"] != true {
		t.Fatalf("expected ok=true, got %v", body["ok"])
	}
}

func TestUserCrudScenario(t *testing.T) {
	ts := newTestServer(t)

	resp := doJSON(t, http.MethodPost, ts.URL+"/api/users", `{"name":"Alice","email":"alice@x.com"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d", resp.StatusCode)
	}
	created := decodeBody(t, resp)
	id, ok := created["id"].(float64)
	if !ok || id <= 0 {
		t.Fatalf("create: expected generated id, got %v", created["id"])
	}

	getURL := fmt.Sprintf("%s/api/users/%.0f", ts.URL, id)
	resp, err := http.Get(getURL)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", resp.StatusCode)
	}
	got := decodeBody(t, resp)
	if got["name"] != "Alice" || got["email"] != "alice@x.com" {
		t.Fatalf("get: fields do not round-trip: %v", got)
	}

	resp = doJSON(t, http.MethodDelete, getURL, "")
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", resp.StatusCode)
	}
	resp.Body.Close() //nolint:errcheck

	resp, err = http.Get(getURL)
	if err != nil {
		t.Fatalf("get after delete failed: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("get after delete: expected 404, got %d", resp.StatusCode)
	}
	resp.Body.Close() //nolint:errcheck
}

func TestUserListEmptyReturnsEmptyList(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/users")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for empty collection, got %d", resp.StatusCode)
	}
	if l := decodeList(t, resp); len(l) != 0 {
		t.Fatalf("expected empty list, got %v", l)
	}
}

func TestUserDuplicateEmailConflicts(t *testing.T) {
	ts := newTestServer(t)

	resp := doJSON(t, http.MethodPost, ts.URL+"/api/users", `{"name":"Alice","email":"dup@x.com"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("first create: expected 201, got %d", resp.StatusCode)
	}
	resp.Body.Close() //nolint:errcheck

	resp = doJSON(t, http.MethodPost, ts.URL+"/api/users", `{"name":"Bob","email":"dup@x.com"}`)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("second create: expected 409, got %d", resp.StatusCode)
	}
	resp.Body.Close() //nolint:errcheck

	// The first user must still be queryable.
	resp, err := http.Get(ts.URL + "/api/users/email/dup@x.com")
	if err != nil {
		t.Fatalf("get by email failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if got := decodeBody(t, resp); got["name"] != "Alice" {
		t.Fatalf("first user lost after conflict: %v", got)
	}
}

func TestUserCreateMalformedBody(t *testing.T) {
	ts := newTestServer(t)

	for name, body := range map[string]string{
		"invalid json":  `{"name": "Alice"`,
		"unknown field": `{"invalidField":"no water"}`,
	} {
		resp := doJSON(t, http.MethodPost, ts.URL+"/api/users", body)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", name, resp.StatusCode)
		}
		resp.Body.Close() //nolint:errcheck
	}
}

func TestUserPatchMergesFields(t *testing.T) {
	ts := newTestServer(t)

	resp := doJSON(t, http.MethodPost, ts.URL+"/api/users", `{"name":"Old Name","email":"old@x.com"}`)
	created := decodeBody(t, resp)
	id := created["id"].(float64)

	resp = doJSON(t, http.MethodPatch, fmt.Sprintf("%s/api/users/%.0f", ts.URL, id), `{"name":"New Name"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("patch: expected 200, got %d", resp.StatusCode)
	}
	patched := decodeBody(t, resp)
	if patched["name"] != "New Name" {
		t.Errorf("name not applied: %v", patched["name"])
	}
	if patched["email"] != "old@x.com" {
		t.Errorf("email should be retained: %v", patched["email"])
	}
}

func TestUserPatchMissingReturns404(t *testing.T) {
	ts := newTestServer(t)

	resp := doJSON(t, http.MethodPatch, ts.URL+"/api/users/99999", `{"name":"No Name"}`)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	resp.Body.Close() //nolint:errcheck
}

func TestMalformedIDReturns400(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/users/not-a-number")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	resp.Body.Close() //nolint:errcheck
}

func TestBmiCreateUnknownUserPersistsNothing(t *testing.T) {
	ts := newTestServer(t)

	resp := doJSON(t, http.MethodPost, ts.URL+"/api/bmi", `{"weight":70.0,"height":175.0,"userId":-1}`)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown user, got %d", resp.StatusCode)
	}
	resp.Body.Close() //nolint:errcheck

	resp, err := http.Get(ts.URL + "/api/bmi")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if l := decodeList(t, resp); len(l) != 0 {
		t.Fatalf("row persisted despite missing user: %v", l)
	}
}

func TestBmiLifecycle(t *testing.T) {
	ts := newTestServer(t)

	resp := doJSON(t, http.MethodPost, ts.URL+"/api/users", `{"name":"Alice","email":"alice@x.com"}`)
	userID := decodeBody(t, resp)["id"].(float64)

	resp = doJSON(t, http.MethodPost, ts.URL+"/api/bmi",
		fmt.Sprintf(`{"weight":70.0,"height":175.0,"userId":%.0f}`, userID))
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d", resp.StatusCode)
	}
	created := decodeBody(t, resp)
	if v, ok := created["bmi"].(float64); !ok || v < 22.8 || v > 22.9 {
		t.Errorf("derived bmi missing or wrong: %v", created["bmi"])
	}
	if created["category"] != "Normal weight" {
		t.Errorf("category = %v; want Normal weight", created["category"])
	}
	id := created["id"].(float64)

	resp = doJSON(t, http.MethodPatch, fmt.Sprintf("%s/api/bmi/%.0f", ts.URL, id), `{"weight":80.0}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("patch: expected 200, got %d", resp.StatusCode)
	}
	patched := decodeBody(t, resp)
	if patched["weight"].(float64) != 80.0 {
		t.Errorf("weight not applied: %v", patched["weight"])
	}
	if patched["height"].(float64) != 175.0 {
		t.Errorf("height should be retained: %v", patched["height"])
	}

	resp, err := http.Get(fmt.Sprintf("%s/api/bmi/users/%.0f", ts.URL, userID))
	if err != nil {
		t.Fatalf("list by user failed: %v", err)
	}
	if l := decodeList(t, resp); len(l) != 1 {
		t.Fatalf("expected 1 record for user, got %d", len(l))
	}

	delURL := fmt.Sprintf("%s/api/bmi/%.0f", ts.URL, id)
	resp = doJSON(t, http.MethodDelete, delURL, "")
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", resp.StatusCode)
	}
	resp.Body.Close() //nolint:errcheck

	resp = doJSON(t, http.MethodDelete, delURL, "")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("second delete: expected 404, got %d", resp.StatusCode)
	}
	resp.Body.Close() //nolint:errcheck
}

func TestSleepAndWaterRoutes(t *testing.T) {
	ts := newTestServer(t)

	resp := doJSON(t, http.MethodPost, ts.URL+"/api/users", `{"name":"Bob","email":"bob@x.com"}`)
	userID := decodeBody(t, resp)["id"].(float64)

	resp = doJSON(t, http.MethodPost, ts.URL+"/api/sleep",
		fmt.Sprintf(`{"duration":7.5,"userid":%.0f}`, userID))
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("sleep create: expected 201, got %d", resp.StatusCode)
	}
	sleepID := decodeBody(t, resp)["id"].(float64)

	// Missing sleep records are 404, not the original API's 400.
	resp, err := http.Get(ts.URL + "/api/sleep/99999")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("missing sleep: expected 404, got %d", resp.StatusCode)
	}
	resp.Body.Close() //nolint:errcheck

	resp = doJSON(t, http.MethodPatch, fmt.Sprintf("%s/api/sleep/%.0f", ts.URL, sleepID), `{"duration":9.0}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("sleep patch: expected 200, got %d", resp.StatusCode)
	}
	if got := decodeBody(t, resp); got["duration"].(float64) != 9.0 {
		t.Errorf("duration not applied: %v", got["duration"])
	}

	resp = doJSON(t, http.MethodPost, ts.URL+"/api/water",
		fmt.Sprintf(`{"litres":1.5,"userid":%.0f}`, userID))
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("water create: expected 201, got %d", resp.StatusCode)
	}
	resp.Body.Close() //nolint:errcheck

	resp, err = http.Get(fmt.Sprintf("%s/api/water/users/%.0f", ts.URL, userID))
	if err != nil {
		t.Fatalf("water list by user failed: %v", err)
	}
	if l := decodeList(t, resp); len(l) != 1 {
		t.Fatalf("expected 1 water record, got %d", len(l))
	}

	resp = doJSON(t, http.MethodPost, ts.URL+"/api/water", `{"litres":2.0,"userid":99999}`)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("water with unknown user: expected 404, got %d", resp.StatusCode)
	}
	resp.Body.Close() //nolint:errcheck
}

func TestSleepLongDurationAccepted(t *testing.T) {
	ts := newTestServer(t)

	resp := doJSON(t, http.MethodPost, ts.URL+"/api/users", `{"name":"Carl","email":"carl@x.com"}`)
	userID := decodeBody(t, resp)["id"].(float64)

	// Duration has no upper bound; only negative values are rejected.
	resp = doJSON(t, http.MethodPost, ts.URL+"/api/sleep",
		fmt.Sprintf(`{"duration":25.0,"userid":%.0f}`, userID))
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d", resp.StatusCode)
	}
	if got := decodeBody(t, resp); got["duration"].(float64) != 25.0 {
		t.Errorf("duration = %v; want 25", got["duration"])
	}

	resp = doJSON(t, http.MethodPost, ts.URL+"/api/sleep",
		fmt.Sprintf(`{"duration":-1.0,"userid":%.0f}`, userID))
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("negative duration: expected 400, got %d", resp.StatusCode)
	}
	resp.Body.Close() //nolint:errcheck
}

func TestPatchAcceptsIDInBody(t *testing.T) {
	ts := newTestServer(t)

	resp := doJSON(t, http.MethodPost, ts.URL+"/api/users", `{"name":"Dana","email":"dana@x.com"}`)
	userID := decodeBody(t, resp)["id"].(float64)

	resp = doJSON(t, http.MethodPost, ts.URL+"/api/sleep",
		fmt.Sprintf(`{"duration":7.5,"userid":%.0f}`, userID))
	sleepID := decodeBody(t, resp)["id"].(float64)

	// Existing clients echo the record id in update bodies; the path id wins.
	resp = doJSON(t, http.MethodPatch, fmt.Sprintf("%s/api/sleep/%.0f", ts.URL, sleepID),
		fmt.Sprintf(`{"id":%.0f,"duration":9.0,"userid":%.0f}`, sleepID, userID))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("sleep patch with id: expected 200, got %d", resp.StatusCode)
	}
	if got := decodeBody(t, resp); got["duration"].(float64) != 9.0 {
		t.Errorf("duration not applied: %v", got["duration"])
	}

	resp = doJSON(t, http.MethodPatch, fmt.Sprintf("%s/api/users/%.0f", ts.URL, userID),
		fmt.Sprintf(`{"id":%.0f,"name":"Dana Q"}`, userID))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("user patch with id: expected 200, got %d", resp.StatusCode)
	}
	if got := decodeBody(t, resp); got["name"] != "Dana Q" {
		t.Errorf("name not applied: %v", got["name"])
	}
}

func TestHealthTipRoutes(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/healthTips/random")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("random with no tips: expected 404, got %d", resp.StatusCode)
	}
	resp.Body.Close() //nolint:errcheck

	resp = doJSON(t, http.MethodPost, ts.URL+"/api/healthTips", `{"tips":"Drink more water"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d", resp.StatusCode)
	}
	id := decodeBody(t, resp)["id"].(float64)

	resp, err = http.Get(ts.URL + "/api/healthTips/random")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("random: expected 200, got %d", resp.StatusCode)
	}
	if got := decodeBody(t, resp); got["tips"] != "Drink more water" {
		t.Fatalf("random tip mismatch: %v", got)
	}

	resp = doJSON(t, http.MethodPatch, fmt.Sprintf("%s/api/healthTips/%.0f", ts.URL, id), `{"tips":"Sleep eight hours"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("patch: expected 200, got %d", resp.StatusCode)
	}
	if got := decodeBody(t, resp); got["tips"] != "Sleep eight hours" {
		t.Fatalf("patch not applied: %v", got)
	}

	resp = doJSON(t, http.MethodDelete, fmt.Sprintf("%s/api/healthTips/%.0f", ts.URL, id), "")
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", resp.StatusCode)
	}
	resp.Body.Close() //nolint:errcheck
}
