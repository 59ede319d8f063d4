// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/fachebot/chat-recap/internal/ent/digestrun"
	"github.com/fachebot/chat-recap/internal/ent/message"
	"github.com/fachebot/chat-recap/internal/ent/schema"
	"github.com/fachebot/chat-recap/internal/ent/summary"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	digestrunMixin := schema.DigestRun{}.Mixin()
	digestrunMixinFields0 := digestrunMixin[0].Fields()
	_ = digestrunMixinFields0
	digestrunFields := schema.DigestRun{}.Fields()
	_ = digestrunFields
	// digestrunDescCreateTime is the schema descriptor for create_time field.
	digestrunDescCreateTime := digestrunMixinFields0[0].Descriptor()
	// digestrun.DefaultCreateTime holds the default value on creation for the create_time field.
	digestrun.DefaultCreateTime = digestrunDescCreateTime.Default.(func() time.Time)
	// digestrunDescUpdateTime is the schema descriptor for update_time field.
	digestrunDescUpdateTime := digestrunMixinFields0[1].Descriptor()
	// digestrun.DefaultUpdateTime holds the default value on creation for the update_time field.
	digestrun.DefaultUpdateTime = digestrunDescUpdateTime.Default.(func() time.Time)
	// digestrun.UpdateDefaultUpdateTime holds the default value on update for the update_time field.
	digestrun.UpdateDefaultUpdateTime = digestrunDescUpdateTime.UpdateDefault.(func() time.Time)
	messageMixin := schema.Message{}.Mixin()
	messageMixinFields0 := messageMixin[0].Fields()
	_ = messageMixinFields0
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescCreateTime is the schema descriptor for create_time field.
	messageDescCreateTime := messageMixinFields0[0].Descriptor()
	// message.DefaultCreateTime holds the default value on creation for the create_time field.
	message.DefaultCreateTime = messageDescCreateTime.Default.(func() time.Time)
	// messageDescUpdateTime is the schema descriptor for update_time field.
	messageDescUpdateTime := messageMixinFields0[1].Descriptor()
	// message.DefaultUpdateTime holds the default value on creation for the update_time field.
	message.DefaultUpdateTime = messageDescUpdateTime.Default.(func() time.Time)
	// message.UpdateDefaultUpdateTime holds the default value on update for the update_time field.
	message.UpdateDefaultUpdateTime = messageDescUpdateTime.UpdateDefault.(func() time.Time)
	summaryMixin := schema.Summary{}.Mixin()
	summaryMixinFields0 := summaryMixin[0].Fields()
	_ = summaryMixinFields0
	summaryFields := schema.Summary{}.Fields()
	_ = summaryFields
	// summaryDescCreateTime is the schema descriptor for create_time field.
	summaryDescCreateTime := summaryMixinFields0[0].Descriptor()
	// summary.DefaultCreateTime holds the default value on creation for the create_time field.
	summary.DefaultCreateTime = summaryDescCreateTime.Default.(func() time.Time)
	// summaryDescUpdateTime is the schema descriptor for update_time field.
	summaryDescUpdateTime := summaryMixinFields0[1].Descriptor()
	// summary.DefaultUpdateTime holds the default value on creation for the update_time field.
	summary.DefaultUpdateTime = summaryDescUpdateTime.Default.(func() time.Time)
	// summary.UpdateDefaultUpdateTime holds the default value on update for the update_time field.
	summary.UpdateDefaultUpdateTime = summaryDescUpdateTime.UpdateDefault.(func() time.Time)
}
