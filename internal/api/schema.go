package api

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/*.json
var schemaFS embed.FS

const schemaBaseURL = "https://taskboard.local/schemas/"

// responseSchemas holds the compiled contracts for responses whose fields
// the views read.
type responseSchemas struct {
	listTasks *jsonschema.Schema
	getTask   *jsonschema.Schema
}

func loadSchemas() (*responseSchemas, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft7

	for _, name := range []string{"task.json", "list_tasks.json", "get_task.json"} {
		data, err := schemaFS.ReadFile("schemas/" + name)
		if err != nil {
			return nil, fmt.Errorf("read schema %s: %w", name, err)
		}
		if err := compiler.AddResource(schemaBaseURL+name, bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("add schema %s: %w", name, err)
		}
	}

	list, err := compiler.Compile(schemaBaseURL + "list_tasks.json")
	if err != nil {
		return nil, fmt.Errorf("compile list_tasks schema: %w", err)
	}
	get, err := compiler.Compile(schemaBaseURL + "get_task.json")
	if err != nil {
		return nil, fmt.Errorf("compile get_task schema: %w", err)
	}

	return &responseSchemas{listTasks: list, getTask: get}, nil
}

// lookup returns the schema for a request, or nil when the response body is
// not read.
func (s *responseSchemas) lookup(method, path string) *jsonschema.Schema {
	if method != http.MethodGet {
		return nil
	}
	segments := strings.Split(strings.Trim(path, "/"), "/")
	if len(segments) == 0 || segments[0] != "tasks" {
		return nil
	}
	switch len(segments) {
	case 1:
		return s.listTasks
	case 2:
		return s.getTask
	}
	return nil
}

// describeValidation flattens a schema validation error into its leaf causes.
func describeValidation(err error) string {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err.Error()
	}
	var msgs []string
	collectCauses(ve, &msgs)
	return strings.Join(msgs, "; ")
}

func collectCauses(ve *jsonschema.ValidationError, msgs *[]string) {
	if len(ve.Causes) == 0 {
		location := ve.InstanceLocation
		if location == "" {
			location = "/"
		}
		*msgs = append(*msgs, fmt.Sprintf("%s: %s", location, ve.Message))
		return
	}
	for _, cause := range ve.Causes {
		collectCauses(cause, msgs)
	}
}
