// internal/taxonomy/schemas.go
package taxonomy

// JSON Schemas the data files are checked against before unmarshalling.
// They pin the shape the scoring engine depends on; extra fields in the
// files are allowed so the datasets can grow without code changes.

const taxonomySchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["clusters"],
  "properties": {
    "clusters": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "groups"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "groups": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["group_name", "occupations"],
              "properties": {
                "group_name": {"type": "string", "minLength": 1},
                "occupations": {
                  "type": "array",
                  "items": {
                    "type": "object",
                    "required": ["title", "code"],
                    "properties": {
                      "title": {"type": "string", "minLength": 1},
                      "code": {"type": "string", "minLength": 1},
                      "skills_required": {"type": "array", "items": {"type": "string"}},
                      "values": {"type": "array", "items": {"type": "string"}},
                      "education_path": {"type": "array", "items": {"type": "string"}},
                      "exams_required": {"type": "array", "items": {"type": "string"}},
                      "jk_colleges": {"type": "array", "items": {"type": "string"}},
                      "top_colleges": {"type": "array", "items": {"type": "string"}},
                      "local_opportunities": {"type": "array", "items": {"type": "string"}},
                      "govt_jobs": {"type": "array", "items": {"type": "string"}}
                    }
                  }
                }
              }
            }
          }
        }
      }
    }
  }
}`

const quizSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["questions"],
  "properties": {
    "title": {"type": "string"},
    "description": {"type": "string"},
    "questions": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["id", "text", "options"],
        "properties": {
          "id": {"type": "integer"},
          "type": {"type": "string", "enum": ["single-select", "multi-select"]},
          "text": {"type": "string", "minLength": 1},
          "options": {
            "type": "array",
            "minItems": 1,
            "items": {
              "type": "object",
              "required": ["value"],
              "properties": {
                "value": {"type": "string", "minLength": 1},
                "maps_to_clusters": {"type": "array", "items": {"type": "string"}},
                "maps_to_values": {"type": "array", "items": {"type": "string"}},
                "maps_to_skills": {"type": "array", "items": {"type": "string"}},
                "maps_to_exams_required": {"type": "array", "items": {"type": "string"}}
              }
            }
          }
        }
      }
    }
  }
}`
