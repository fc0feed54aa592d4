// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/Imaliure/adaptive-language-learning/ent/attemptevent"
	"github.com/Imaliure/adaptive-language-learning/ent/dictationevent"
	"github.com/Imaliure/adaptive-language-learning/ent/revealevent"
	"github.com/Imaliure/adaptive-language-learning/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescRunID is the schema descriptor for run_id field.
	attempteventDescRunID := attempteventFields[0].Descriptor()
	// attemptevent.RunIDValidator is a validator for the "run_id" field. It is called by the builders before save.
	attemptevent.RunIDValidator = attempteventDescRunID.Validators[0].(func(string) error)
	// attempteventDescPromptTr is the schema descriptor for prompt_tr field.
	attempteventDescPromptTr := attempteventFields[4].Descriptor()
	// attemptevent.PromptTrValidator is a validator for the "prompt_tr" field. It is called by the builders before save.
	attemptevent.PromptTrValidator = attempteventDescPromptTr.Validators[0].(func(string) error)
	// attempteventDescMaskedEn is the schema descriptor for masked_en field.
	attempteventDescMaskedEn := attempteventFields[5].Descriptor()
	// attemptevent.MaskedEnValidator is a validator for the "masked_en" field. It is called by the builders before save.
	attemptevent.MaskedEnValidator = attempteventDescMaskedEn.Validators[0].(func(string) error)
	// attempteventDescUserAnswer is the schema descriptor for user_answer field.
	attempteventDescUserAnswer := attempteventFields[6].Descriptor()
	// attemptevent.UserAnswerValidator is a validator for the "user_answer" field. It is called by the builders before save.
	attemptevent.UserAnswerValidator = attempteventDescUserAnswer.Validators[0].(func(string) error)
	// attempteventDescVoiceInput is the schema descriptor for voice_input field.
	attempteventDescVoiceInput := attempteventFields[11].Descriptor()
	// attemptevent.DefaultVoiceInput holds the default value on creation for the voice_input field.
	attemptevent.DefaultVoiceInput = attempteventDescVoiceInput.Default.(bool)
	dictationeventMixin := schema.DictationEvent{}.Mixin()
	dictationeventMixinFields0 := dictationeventMixin[0].Fields()
	_ = dictationeventMixinFields0
	dictationeventFields := schema.DictationEvent{}.Fields()
	_ = dictationeventFields
	// dictationeventDescTimestamp is the schema descriptor for timestamp field.
	dictationeventDescTimestamp := dictationeventMixinFields0[1].Descriptor()
	// dictationevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	dictationevent.DefaultTimestamp = dictationeventDescTimestamp.Default.(func() time.Time)
	// dictationeventDescRunID is the schema descriptor for run_id field.
	dictationeventDescRunID := dictationeventFields[0].Descriptor()
	// dictationevent.RunIDValidator is a validator for the "run_id" field. It is called by the builders before save.
	dictationevent.RunIDValidator = dictationeventDescRunID.Validators[0].(func(string) error)
	// dictationeventDescText is the schema descriptor for text field.
	dictationeventDescText := dictationeventFields[2].Descriptor()
	// dictationevent.TextValidator is a validator for the "text" field. It is called by the builders before save.
	dictationevent.TextValidator = dictationeventDescText.Validators[0].(func(string) error)
	// dictationeventDescKind is the schema descriptor for kind field.
	dictationeventDescKind := dictationeventFields[3].Descriptor()
	// dictationevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	dictationevent.KindValidator = dictationeventDescKind.Validators[0].(func(string) error)
	revealeventMixin := schema.RevealEvent{}.Mixin()
	revealeventMixinFields0 := revealeventMixin[0].Fields()
	_ = revealeventMixinFields0
	revealeventFields := schema.RevealEvent{}.Fields()
	_ = revealeventFields
	// revealeventDescTimestamp is the schema descriptor for timestamp field.
	revealeventDescTimestamp := revealeventMixinFields0[1].Descriptor()
	// revealevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	revealevent.DefaultTimestamp = revealeventDescTimestamp.Default.(func() time.Time)
	// revealeventDescRunID is the schema descriptor for run_id field.
	revealeventDescRunID := revealeventFields[0].Descriptor()
	// revealevent.RunIDValidator is a validator for the "run_id" field. It is called by the builders before save.
	revealevent.RunIDValidator = revealeventDescRunID.Validators[0].(func(string) error)
	// revealeventDescWord is the schema descriptor for word field.
	revealeventDescWord := revealeventFields[3].Descriptor()
	// revealevent.WordValidator is a validator for the "word" field. It is called by the builders before save.
	revealevent.WordValidator = revealeventDescWord.Validators[0].(func(string) error)
}
