/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logfields

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log Fields.
const (
	FieldAlgorithm    = "algorithm"
	FieldCount        = "count"
	FieldDuration     = "duration"
	FieldEntry        = "entry"
	FieldJSONSchema   = "JSONSchema"
	FieldJSONSchemaID = "JSONSchemaID"
	FieldKeyID        = "keyID"
	FieldPath         = "path"
	FieldPersisted    = "persisted"
	FieldResource     = "resource"
	FieldRuleID       = "ruleID"
	FieldScope        = "scope"
	FieldSince        = "since"
	FieldState        = "state"
	FieldStoreType    = "storeType"
	FieldUsage        = "usage"
	FieldUserLogLevel = "userLogLevel"
	FieldVerdict      = "verdict"
)

// WithAlgorithm sets the Algorithm field.
func WithAlgorithm(value string) zap.Field {
	return zap.String(FieldAlgorithm, value)
}

// WithCount sets the Count field.
func WithCount(value int) zap.Field {
	return zap.Int(FieldCount, value)
}

// WithDuration sets the Duration field.
func WithDuration(value time.Duration) zap.Field {
	return zap.Duration(FieldDuration, value)
}

// WithEntry sets the Entry field (name of an archive entry).
func WithEntry(value string) zap.Field {
	return zap.String(FieldEntry, value)
}

// WithJSONSchemaID sets the JSONSchemaID field.
func WithJSONSchemaID(value string) zap.Field {
	return zap.String(FieldJSONSchemaID, value)
}

// WithJSONSchema sets the JSONSchema field.
func WithJSONSchema(value string) zap.Field {
	return zap.String(FieldJSONSchema, value)
}

// WithKeyID sets the KeyID field.
func WithKeyID(value string) zap.Field {
	return zap.String(FieldKeyID, value)
}

// WithPath sets the Path field.
func WithPath(value string) zap.Field {
	return zap.String(FieldPath, value)
}

// WithPersisted sets the Persisted field.
func WithPersisted(value bool) zap.Field {
	return zap.Bool(FieldPersisted, value)
}

// WithResource sets the Resource field.
func WithResource(value string) zap.Field {
	return zap.String(FieldResource, value)
}

// WithRuleID sets the RuleID field.
func WithRuleID(value string) zap.Field {
	return zap.String(FieldRuleID, value)
}

// WithScope sets the Scope field.
func WithScope(value string) zap.Field {
	return zap.String(FieldScope, value)
}

// WithSince sets the Since field.
func WithSince(value string) zap.Field {
	return zap.String(FieldSince, value)
}

// WithState sets the State field.
func WithState(value string) zap.Field {
	return zap.String(FieldState, value)
}

// WithStoreType sets the StoreType field.
func WithStoreType(value string) zap.Field {
	return zap.String(FieldStoreType, value)
}

// WithUsage sets the Usage field.
func WithUsage(value []string) zap.Field {
	return zap.Strings(FieldUsage, value)
}

// WithUserLogLevel sets the UserLogLevel field.
func WithUserLogLevel(value string) zap.Field {
	return zap.String(FieldUserLogLevel, value)
}

// WithVerdict sets the Verdict field.
func WithVerdict(value string) zap.Field {
	return zap.String(FieldVerdict, value)
}

// ObjectMarshaller uses reflection to marshal an object's fields.
type ObjectMarshaller struct {
	key string
	obj interface{}
}

// NewObjectMarshaller returns a new ObjectMarshaller.
func NewObjectMarshaller(key string, obj interface{}) *ObjectMarshaller {
	return &ObjectMarshaller{key: key, obj: obj}
}

// MarshalLogObject marshals the object's fields.
func (m *ObjectMarshaller) MarshalLogObject(e zapcore.ObjectEncoder) error {
	return e.AddReflected(m.key, m.obj)
}
