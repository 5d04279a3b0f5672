package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/vijay-prabhu/tutormatch/internal/matcher"
	"github.com/vijay-prabhu/tutormatch/internal/validation"
)

func (s *Server) registerHandlers() {
	s.handlers["search_tutors"] = s.handleSearchTutors
	s.handlers["recommend_tutors"] = s.handleRecommendTutors
	s.handlers["get_tutor"] = s.handleGetTutor
	s.handlers["quote_fee"] = s.handleQuoteFee
	s.handlers["resolve_bracket"] = s.handleResolveBracket
	s.handlers["calculate_distance"] = s.handleCalculateDistance
}

// decodeParams unmarshals optional tool arguments into v
func decodeParams(params json.RawMessage, v interface{}) error {
	if len(params) == 0 || string(params) == "null" {
		return nil
	}
	if err := json.Unmarshal(params, v); err != nil {
		return fmt.Errorf("invalid parameters: %w", err)
	}
	return nil
}

func (s *Server) handleSearchTutors(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p validation.SearchRequest
	if err := decodeParams(params, &p); err != nil {
		return nil, err
	}

	return s.matcher.Search(ctx, p)
}

// recommendParams flattens criteria and student fields into one argument object
type recommendParams struct {
	validation.SearchRequest
	validation.StudentRequest

	Near  string `json:"near"`
	All   bool   `json:"all"`
	Limit int    `json:"limit"`
}

func (s *Server) handleRecommendTutors(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p recommendParams
	if err := decodeParams(params, &p); err != nil {
		return nil, err
	}

	return s.matcher.Recommend(ctx, matcher.RecommendRequest{
		Search:  p.SearchRequest,
		Student: p.StudentRequest,
		Near:    p.Near,
		All:     p.All,
		Limit:   p.Limit,
	})
}

type getTutorParams struct {
	ID string `json:"id"`
}

func (s *Server) handleGetTutor(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p getTutorParams
	if err := decodeParams(params, &p); err != nil {
		return nil, err
	}

	if p.ID == "" {
		return nil, fmt.Errorf("id is required")
	}

	return s.matcher.GetTutor(ctx, p.ID)
}

type quoteFeeParams struct {
	TutorID string `json:"tutor_id"`
	Grade   string `json:"grade"`
}

func (s *Server) handleQuoteFee(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p quoteFeeParams
	if err := decodeParams(params, &p); err != nil {
		return nil, err
	}

	if p.TutorID == "" {
		return nil, fmt.Errorf("tutor_id is required")
	}

	return s.matcher.Quote(ctx, p.TutorID, p.Grade)
}

type resolveBracketParams struct {
	Grade string `json:"grade"`
}

func (s *Server) handleResolveBracket(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p resolveBracketParams
	if err := decodeParams(params, &p); err != nil {
		return nil, err
	}

	return matcher.Bracket(p.Grade), nil
}

type distanceParams struct {
	validation.DistanceRequest

	From string `json:"from"`
	To   string `json:"to"`
}

func (s *Server) handleCalculateDistance(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p distanceParams
	if err := decodeParams(params, &p); err != nil {
		return nil, err
	}

	if p.From != "" || p.To != "" {
		if p.From == "" || p.To == "" {
			return nil, fmt.Errorf("from and to must be given together")
		}
		return s.matcher.DistanceBetween(p.From, p.To)
	}

	return matcher.Distance(p.DistanceRequest)
}
