package mcp

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/vijay-prabhu/tutormatch/internal/config"
	"github.com/vijay-prabhu/tutormatch/internal/database"
	"github.com/vijay-prabhu/tutormatch/internal/geo"
	"github.com/vijay-prabhu/tutormatch/internal/recommend"
	"github.com/vijay-prabhu/tutormatch/internal/tutor"
)

func setupServer(t *testing.T) *Server {
	t.Helper()

	cfg := config.Default()
	cfg.Database.Path = filepath.Join(t.TempDir(), "test.db")

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	tutors := []tutor.Tutor{
		{
			ID:           "priya",
			Name:         "Dr. Priya Sharma",
			Subjects:     []string{"Mathematics", "Physics"},
			Experience:   8,
			Fees:         tutor.FeeSchedule{Grade5to9: decimal.NewFromInt(2000)},
			TeachingMode: tutor.ModeBoth,
			Rating:       4.8,
			TotalReviews: 12,
			Verified:     true,
			Location: tutor.Location{
				City:        "Bangalore",
				Coordinates: &geo.Coordinates{Lat: 12.9716, Lng: 77.5946},
			},
		},
		{
			ID:           "rajesh",
			Name:         "Prof. Rajesh Kumar",
			Subjects:     []string{"English"},
			Experience:   12,
			TeachingMode: tutor.ModeHomeTuition,
			Rating:       4.6,
			TotalReviews: 32,
			Location:     tutor.Location{City: "New Delhi"},
		},
	}

	s := New(db, cfg)
	if _, err := s.matcher.Import(context.Background(), tutors, nil); err != nil {
		t.Fatalf("failed to import tutors: %v", err)
	}
	return s
}

// roundTrip sends each request on its own line and decodes one response per line
func roundTrip(t *testing.T, s *Server, requests ...string) []map[string]json.RawMessage {
	t.Helper()

	var out bytes.Buffer
	in := strings.NewReader(strings.Join(requests, "\n") + "\n")
	if err := s.Serve(context.Background(), in, &out); err != nil {
		t.Fatalf("Serve() error: %v", err)
	}

	var responses []map[string]json.RawMessage
	scanner := bufio.NewScanner(&out)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		var resp map[string]json.RawMessage
		if err := json.Unmarshal(scanner.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response %q: %v", scanner.Text(), err)
		}
		responses = append(responses, resp)
	}
	return responses
}

func toolText(t *testing.T, resp map[string]json.RawMessage) (string, bool) {
	t.Helper()

	var result callToolResult
	if err := json.Unmarshal(resp["result"], &result); err != nil {
		t.Fatalf("invalid tool result: %v", err)
	}
	if len(result.Content) != 1 {
		t.Fatalf("expected 1 content item, got %d", len(result.Content))
	}
	return result.Content[0].Text, result.IsError
}

func TestServer_Initialize(t *testing.T) {
	s := setupServer(t)
	s.Version = "1.2.3"

	responses := roundTrip(t, s,
		`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{}}`,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		`{"jsonrpc":"2.0","id":2,"method":"ping"}`,
	)

	if len(responses) != 2 {
		t.Fatalf("expected 2 responses (notification has none), got %d", len(responses))
	}

	var result initializeResult
	if err := json.Unmarshal(responses[0]["result"], &result); err != nil {
		t.Fatalf("invalid initialize result: %v", err)
	}
	if result.ProtocolVersion != "2024-11-05" {
		t.Errorf("ProtocolVersion = %s, want 2024-11-05", result.ProtocolVersion)
	}
	if result.ServerInfo.Name != "tutormatch" || result.ServerInfo.Version != "1.2.3" {
		t.Errorf("ServerInfo = %+v", result.ServerInfo)
	}
}

func TestServer_ToolsList(t *testing.T) {
	s := setupServer(t)

	responses := roundTrip(t, s, `{"jsonrpc":"2.0","id":1,"method":"tools/list"}`)

	var result toolsListResult
	if err := json.Unmarshal(responses[0]["result"], &result); err != nil {
		t.Fatalf("invalid tools/list result: %v", err)
	}

	expected := []string{"search_tutors", "recommend_tutors", "get_tutor", "quote_fee", "resolve_bracket", "calculate_distance"}
	if len(result.Tools) != len(expected) {
		t.Fatalf("expected %d tools, got %d", len(expected), len(result.Tools))
	}
	for i, name := range expected {
		if result.Tools[i].Name != name {
			t.Errorf("tool %d = %s, want %s", i, result.Tools[i].Name, name)
		}
		if _, ok := s.handlers[name]; !ok {
			t.Errorf("tool %s has no handler", name)
		}
	}
}

func TestServer_RecommendTutors(t *testing.T) {
	s := setupServer(t)

	responses := roundTrip(t, s,
		`{"jsonrpc":"2.0","id":7,"method":"tools/call","params":{"name":"recommend_tutors","arguments":{"all":true,"student_subjects":["Physics"],"near":"Indiranagar, Bangalore"}}}`,
	)

	text, isError := toolText(t, responses[0])
	if isError {
		t.Fatalf("unexpected tool error: %s", text)
	}

	var recs []recommend.Recommendation
	if err := json.Unmarshal([]byte(text), &recs); err != nil {
		t.Fatalf("invalid recommendations JSON: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(recs))
	}
	if recs[0].Tutor.ID != "priya" || recs[0].Score < recs[1].Score {
		t.Errorf("unexpected ranking: %s %.1f, %s %.1f", recs[0].Tutor.ID, recs[0].Score, recs[1].Tutor.ID, recs[1].Score)
	}
	if recs[0].Distance == nil || *recs[0].Distance != 0 {
		t.Errorf("Distance = %v, want 0", recs[0].Distance)
	}
	if recs[1].Distance != nil {
		t.Errorf("tutor without coordinates got distance %v", *recs[1].Distance)
	}
}

func TestServer_ToolCalls(t *testing.T) {
	s := setupServer(t)

	tests := []struct {
		name      string
		arguments string
		isError   bool
		contains  string
	}{
		{"search_tutors", `{}`, false, `"kind": "browse"`},
		{"search_tutors", `{"subjects":["English"]}`, false, `"rajesh"`},
		{"search_tutors", `{"grade":"Kindergarten"}`, true, "grade"},
		{"get_tutor", `{"id":"priya"}`, false, `"Dr. Priya Sharma"`},
		{"get_tutor", `{"id":"nobody"}`, true, "tutor not found"},
		{"get_tutor", `{}`, true, "id is required"},
		{"quote_fee", `{"tutor_id":"rajesh","grade":"10th Grade"}`, false, `"grade10"`},
		{"resolve_bracket", `{}`, false, `"display_bracket": "grade5to9"`},
		{"resolve_bracket", `{"grade":"Graduation"}`, false, `"filter_bracket": "graduation"`},
		{"calculate_distance", `{"lat1":12.9716,"lng1":77.5946,"lat2":28.7041,"lng2":77.1025}`, false, `"km": 1750.1`},
		{"calculate_distance", `{"from":"Bangalore","to":"Delhi"}`, false, `"km": 1750.1`},
		{"calculate_distance", `{"from":"Bangalore"}`, true, "together"},
	}

	for _, tt := range tests {
		t.Run(tt.name+tt.arguments, func(t *testing.T) {
			req := `{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"` + tt.name + `","arguments":` + tt.arguments + `}}`
			responses := roundTrip(t, s, req)

			text, isError := toolText(t, responses[0])
			if isError != tt.isError {
				t.Errorf("isError = %v, want %v (%s)", isError, tt.isError, text)
			}
			if !strings.Contains(text, tt.contains) {
				t.Errorf("result %q does not contain %q", text, tt.contains)
			}
		})
	}
}

func TestServer_Errors(t *testing.T) {
	s := setupServer(t)

	responses := roundTrip(t, s,
		`not json`,
		`{"jsonrpc":"2.0","id":2,"method":"bogus"}`,
		`{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"send_email"}}`,
	)

	expected := []int{-32700, -32601, -32602}
	if len(responses) != len(expected) {
		t.Fatalf("expected %d responses, got %d", len(expected), len(responses))
	}
	for i, code := range expected {
		var e rpcError
		if err := json.Unmarshal(responses[i]["error"], &e); err != nil {
			t.Fatalf("response %d has no error: %v", i, err)
		}
		if e.Code != code {
			t.Errorf("response %d code = %d, want %d", i, e.Code, code)
		}
	}
}

func TestServer_Resources(t *testing.T) {
	s := setupServer(t)

	responses := roundTrip(t, s,
		`{"jsonrpc":"2.0","id":1,"method":"resources/list"}`,
		`{"jsonrpc":"2.0","id":2,"method":"resources/read","params":{"uri":"tutormatch://summary"}}`,
		`{"jsonrpc":"2.0","id":3,"method":"resources/read","params":{"uri":"tutormatch://cities"}}`,
		`{"jsonrpc":"2.0","id":4,"method":"resources/read","params":{"uri":"tutormatch://nope"}}`,
	)

	var list resourcesListResult
	if err := json.Unmarshal(responses[0]["result"], &list); err != nil {
		t.Fatalf("invalid resources/list result: %v", err)
	}
	if len(list.Resources) != 2 {
		t.Errorf("expected 2 resources, got %d", len(list.Resources))
	}

	checks := []struct {
		index    int
		contains []string
	}{
		{1, []string{"Tutors:   2 (1 verified) in 2 cities", "Mathematics (1 tutors)"}},
		{2, []string{"  - Bangalore", "  - New Delhi", "  - hyderabad"}},
	}
	for _, c := range checks {
		var result readResourceResult
		if err := json.Unmarshal(responses[c.index]["result"], &result); err != nil {
			t.Fatalf("invalid resources/read result: %v", err)
		}
		for _, want := range c.contains {
			if !strings.Contains(result.Contents[0].Text, want) {
				t.Errorf("resource text missing %q:\n%s", want, result.Contents[0].Text)
			}
		}
	}

	if _, ok := responses[3]["error"]; !ok {
		t.Error("expected error for unknown resource")
	}
}
