package stats

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// documentSchema describes the persisted statistics document. Fields are
// optional so that documents written before a field existed still pass;
// absent values are back-filled with zeros after decoding.
const documentSchema = `{
  "type": "object",
  "properties": {
    "totalGames": {"type": "integer"},
    "totalCorrect": {"type": "integer"},
    "totalQuestionsAttemptedOverall": {"type": "integer"},
    "bestStreak": {"type": "integer"},
    "totalOverallTimeSpent": {"type": "integer"},
    "averageTimePerQuestionOverall": {"type": "integer"},
    "challengeStats": {
      "type": ["object", "null"],
      "additionalProperties": {
        "type": ["object", "null"],
        "properties": {
          "played": {"type": "integer"},
          "accuracy": {"type": "integer"},
          "bestScore": {"type": "integer"},
          "totalTimeSpent": {"type": "integer"},
          "totalQuestionsAttempted": {"type": "integer"},
          "averageTimePerQuestion": {"type": "integer"}
        }
      }
    },
    "results": {
      "type": ["array", "null"],
      "items": {
        "type": "object",
        "required": ["challengeType", "score", "totalQuestions"],
        "properties": {
          "id": {"type": "string"},
          "challengeType": {"type": "string"},
          "challengeName": {"type": "string"},
          "difficulty": {"type": "string"},
          "operation": {"type": "string"},
          "score": {"type": "integer"},
          "totalQuestions": {"type": "integer"},
          "accuracy": {"type": "integer"},
          "timeSpent": {"type": "integer"},
          "date": {"type": "string"},
          "timestamp": {"type": "integer"},
          "streak": {"type": "integer"}
        }
      }
    }
  }
}`

const schemaURL = "schema://statistics.json"

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// schema returns the compiled document schema, compiling it on first use.
func schema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(documentSchema), &def); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// decodeDocument parses and validates a persisted document. Any error
// means the document is unusable and the caller should start from Empty.
func decodeDocument(raw string) (*Statistics, error) {
	var parsed any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	sch, err := schema()
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	if err := sch.Validate(parsed); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var s Statistics
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, fmt.Errorf("decode statistics: %w", err)
	}
	s.normalize()
	return &s, nil
}
