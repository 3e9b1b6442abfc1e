package model

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// Schema for the process_resumes request body. Embedded so validation does
// not depend on the working directory.
const processResumesSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["name", "urls"],
  "properties": {
    "name": {"type": "string", "minLength": 1},
    "urls": {
      "type": "array",
      "minItems": 1,
      "items": {"type": "string", "minLength": 1}
    }
  }
}`

// ValidateProcessResumes checks a raw request body against the schema and
// returns an error listing every violation.
func ValidateProcessResumes(body []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(processResumesSchema)
	docLoader := gojsonschema.NewBytesLoader(body)

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	if res.Valid() {
		return nil
	}
	// collect errors
	msgs := ""
	for _, e := range res.Errors() {
		msgs += fmt.Sprintf("%s; ", e.String())
	}
	return fmt.Errorf("schema validation failed: %s", msgs)
}
