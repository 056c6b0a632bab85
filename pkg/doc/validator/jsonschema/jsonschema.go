/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package jsonschema

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/trustbloc/logutil-go/pkg/log"
	"github.com/xeipuuv/gojsonschema"

	"github.com/trustbloc/hcert/internal/logfields"
)

var logger = log.New("jsonschema")

// RuleSetSchemaID is the $id of the bundled national rule set schema.
const RuleSetSchemaID = "https://trustbloc.dev/hcert/ruleset.schema.json"

//go:embed schema/ruleset.schema.json
var ruleSetSchema []byte

// Document holds the JSON schema document.
type Document map[string]interface{}

// Validator validates a raw JSON document.
type Validator interface {
	ValidateJSONSchema(doc []byte) error
}

type validatorFactory func(schema Document) (Validator, error)

// CachingValidator compiles every schema once per schema ID and reuses it for subsequent validations.
type CachingValidator struct {
	cache           map[string]Validator
	createValidator validatorFactory
	mutex           sync.RWMutex
}

// NewCachingValidator returns a new caching JSON schema validator.
func NewCachingValidator() *CachingValidator {
	return &CachingValidator{
		cache:           make(map[string]Validator),
		createValidator: newValidator,
	}
}

// ValidateRuleSet checks that doc is an ordered list of rule objects.
func (c *CachingValidator) ValidateRuleSet(doc []byte) error {
	return c.Validate(doc, RuleSetSchemaID, ruleSetSchema)
}

// Validate validates the given JSON document against the given schema.
func (c *CachingValidator) Validate(doc []byte, schemaID string, schema []byte) error {
	validator, err := c.get(schemaID, schema)
	if err != nil {
		return fmt.Errorf("get schema validator from cache: %w", err)
	}

	return validator.ValidateJSONSchema(doc)
}

func (c *CachingValidator) get(schemaID string, schema []byte) (Validator, error) {
	c.mutex.RLock()
	v, ok := c.cache[schemaID]
	c.mutex.RUnlock()

	if ok {
		return v, nil
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	if v, ok = c.cache[schemaID]; ok {
		return v, nil
	}

	var schemaDoc Document

	if err := json.Unmarshal(schema, &schemaDoc); err != nil {
		return nil, fmt.Errorf("unmarshal JSON schema: %w", err)
	}

	schemaIDObj, ok := schemaDoc["$id"]
	if !ok {
		return nil, fmt.Errorf("field '$id' not found in JSON schema")
	}

	schemaDocID, ok := schemaIDObj.(string)
	if !ok {
		return nil, fmt.Errorf("expecting the value of field '$id' in JSON schema to be a string type but was %s",
			reflect.TypeOf(schemaIDObj))
	}

	if schemaDocID != schemaID {
		return nil, fmt.Errorf("the value of field '$id' in JSON schema [%s] does not match schema ID [%s]",
			schemaDocID, schemaID)
	}

	schemaValidator, err := c.createValidator(schemaDoc)
	if err != nil {
		return nil, fmt.Errorf("create validator [%s]: %w", schemaID, err)
	}

	c.cache[schemaID] = schemaValidator

	logger.Debug("Created validator for JSON schema", logfields.WithJSONSchemaID(schemaID))

	return schemaValidator, nil
}

func newValidator(schema Document) (Validator, error) {
	schemaValidator, err := gojsonschema.NewSchemaLoader().Compile(gojsonschema.NewGoLoader(schema))
	if err != nil {
		return nil, fmt.Errorf("compile JSON schema: %w", err)
	}

	return &validator{schema: schemaValidator}, nil
}

type validator struct {
	schema *gojsonschema.Schema
}

func (v *validator) ValidateJSONSchema(doc []byte) error {
	result, err := v.schema.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return fmt.Errorf("loader error: %w", err)
	}

	if !result.Valid() {
		return fmt.Errorf("validation error: %w", validationErrors(result.Errors()))
	}

	return nil
}

type validationErrors []gojsonschema.ResultError

func (e validationErrors) Error() string {
	msgs := make([]string, 0, len(e))

	for _, re := range e {
		msgs = append(msgs, re.String())
	}

	return "[" + strings.Join(msgs, "; ") + "]"
}
