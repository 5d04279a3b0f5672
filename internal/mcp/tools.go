package mcp

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

var gradeSchema = map[string]interface{}{
	"type":        "string",
	"description": "Student grade, e.g. \"7th Grade\", \"12th Grade\" or \"Graduation\"",
}

// criteriaProperties are the search criteria shared by search_tutors and recommend_tutors
func criteriaProperties() map[string]interface{} {
	return map[string]interface{}{
		"subject": map[string]interface{}{
			"type":        "string",
			"description": "A subject the tutor must teach (exact name, e.g. \"Mathematics\")",
		},
		"subjects": map[string]interface{}{
			"type":        "array",
			"items":       map[string]interface{}{"type": "string"},
			"description": "Subjects, any of which the tutor must teach",
		},
		"grade": gradeSchema,
		"location": map[string]interface{}{
			"type":        "string",
			"description": "City name or part of one (case-insensitive)",
		},
		"max_budget": map[string]interface{}{
			"type":        "number",
			"description": "Maximum fee per session for the grade; the graduation fee is used when no grade is given",
		},
		"teaching_mode": map[string]interface{}{
			"type":        "string",
			"enum":        []string{"home-tuition", "center-based", "both"},
			"description": "Required teaching mode",
		},
		"min_rating": map[string]interface{}{
			"type":        "number",
			"description": "Minimum tutor rating (0-5)",
		},
	}
}

func recommendProperties() map[string]interface{} {
	props := criteriaProperties()
	props["student_subjects"] = map[string]interface{}{
		"type":        "array",
		"items":       map[string]interface{}{"type": "string"},
		"description": "Subjects the student wants help with",
	}
	props["budget_min"] = map[string]interface{}{
		"type":        "number",
		"description": "Lowest fee the student expects to pay (default 0)",
	}
	props["budget_max"] = map[string]interface{}{
		"type":        "number",
		"description": "Highest fee the student will pay",
	}
	props["preferred_mode"] = map[string]interface{}{
		"type":        "string",
		"enum":        []string{"home-tuition", "center-based"},
		"description": "Teaching mode the student prefers",
	}
	props["lat"] = map[string]interface{}{
		"type":        "number",
		"description": "Student latitude (with lng)",
	}
	props["lng"] = map[string]interface{}{
		"type":        "number",
		"description": "Student longitude (with lat)",
	}
	props["near"] = map[string]interface{}{
		"type":        "string",
		"description": "Student address, placed by city name when lat/lng are not given",
	}
	props["all"] = map[string]interface{}{
		"type":        "boolean",
		"description": "Score every tutor instead of only those matching the criteria",
	}
	props["limit"] = map[string]interface{}{
		"type":        "integer",
		"description": "Maximum number of recommendations (default from config)",
	}
	return props
}

// ToolDefinitions contains all available MCP tools
var ToolDefinitions = []Tool{
	{
		Name:        "search_tutors",
		Description: "Search tutors matching every given criterion. Without criteria returns the top rated tutors (browse mode).",
		InputSchema: map[string]interface{}{
			"type":       "object",
			"properties": criteriaProperties(),
		},
	},
	{
		Name:        "recommend_tutors",
		Description: "Rank tutors for a student with an explained score. Scores the tutors matching the criteria, or every tutor with all=true.",
		InputSchema: map[string]interface{}{
			"type":       "object",
			"properties": recommendProperties(),
		},
	},
	{
		Name:        "get_tutor",
		Description: "Get a tutor's full profile including fees for every grade bracket.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"id": map[string]interface{}{
					"type":        "string",
					"description": "Tutor ID",
				},
			},
			"required": []string{"id"},
		},
	},
	{
		Name:        "quote_fee",
		Description: "Quote the per-session fee a tutor charges for a grade. Without a grade the grade 5-9 fee is quoted.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"tutor_id": map[string]interface{}{
					"type":        "string",
					"description": "Tutor ID",
				},
				"grade": gradeSchema,
			},
			"required": []string{"tutor_id"},
		},
	},
	{
		Name:        "resolve_bracket",
		Description: "Show the fee bracket a grade falls into, under both the filtering default (graduation) and the display default (grades 5-9).",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"grade": gradeSchema,
			},
		},
	},
	{
		Name:        "calculate_distance",
		Description: "Great-circle distance in kilometres, rounded to 0.1 km. Give lat1/lng1/lat2/lng2, or from/to addresses placed by city name.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"lat1": map[string]interface{}{"type": "number"},
				"lng1": map[string]interface{}{"type": "number"},
				"lat2": map[string]interface{}{"type": "number"},
				"lng2": map[string]interface{}{"type": "number"},
				"from": map[string]interface{}{
					"type":        "string",
					"description": "Start address",
				},
				"to": map[string]interface{}{
					"type":        "string",
					"description": "End address",
				},
			},
		},
	},
}
