// Code generated by ent, DO NOT EDIT.

package revealevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/Imaliure/adaptive-language-learning/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldEQ(FieldTimestamp, v))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldEQ(FieldRunID, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v int) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldEQ(FieldQuestionID, v))
}

// HintIndex applies equality check predicate on the "hint_index" field. It's identical to HintIndexEQ.
func HintIndex(v int) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldEQ(FieldHintIndex, v))
}

// Word applies equality check predicate on the "word" field. It's identical to WordEQ.
func Word(v string) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldEQ(FieldWord, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldLTE(FieldTimestamp, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldContainsFold(FieldRunID, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v int) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v int) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...int) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...int) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v int) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v int) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v int) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v int) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldLTE(FieldQuestionID, v))
}

// HintIndexEQ applies the EQ predicate on the "hint_index" field.
func HintIndexEQ(v int) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldEQ(FieldHintIndex, v))
}

// HintIndexNEQ applies the NEQ predicate on the "hint_index" field.
func HintIndexNEQ(v int) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldNEQ(FieldHintIndex, v))
}

// HintIndexIn applies the In predicate on the "hint_index" field.
func HintIndexIn(vs ...int) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldIn(FieldHintIndex, vs...))
}

// HintIndexNotIn applies the NotIn predicate on the "hint_index" field.
func HintIndexNotIn(vs ...int) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldNotIn(FieldHintIndex, vs...))
}

// HintIndexGT applies the GT predicate on the "hint_index" field.
func HintIndexGT(v int) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldGT(FieldHintIndex, v))
}

// HintIndexGTE applies the GTE predicate on the "hint_index" field.
func HintIndexGTE(v int) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldGTE(FieldHintIndex, v))
}

// HintIndexLT applies the LT predicate on the "hint_index" field.
func HintIndexLT(v int) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldLT(FieldHintIndex, v))
}

// HintIndexLTE applies the LTE predicate on the "hint_index" field.
func HintIndexLTE(v int) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldLTE(FieldHintIndex, v))
}

// WordEQ applies the EQ predicate on the "word" field.
func WordEQ(v string) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldEQ(FieldWord, v))
}

// WordNEQ applies the NEQ predicate on the "word" field.
func WordNEQ(v string) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldNEQ(FieldWord, v))
}

// WordIn applies the In predicate on the "word" field.
func WordIn(vs ...string) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldIn(FieldWord, vs...))
}

// WordNotIn applies the NotIn predicate on the "word" field.
func WordNotIn(vs ...string) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldNotIn(FieldWord, vs...))
}

// WordGT applies the GT predicate on the "word" field.
func WordGT(v string) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldGT(FieldWord, v))
}

// WordGTE applies the GTE predicate on the "word" field.
func WordGTE(v string) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldGTE(FieldWord, v))
}

// WordLT applies the LT predicate on the "word" field.
func WordLT(v string) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldLT(FieldWord, v))
}

// WordLTE applies the LTE predicate on the "word" field.
func WordLTE(v string) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldLTE(FieldWord, v))
}

// WordContains applies the Contains predicate on the "word" field.
func WordContains(v string) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldContains(FieldWord, v))
}

// WordHasPrefix applies the HasPrefix predicate on the "word" field.
func WordHasPrefix(v string) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldHasPrefix(FieldWord, v))
}

// WordHasSuffix applies the HasSuffix predicate on the "word" field.
func WordHasSuffix(v string) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldHasSuffix(FieldWord, v))
}

// WordEqualFold applies the EqualFold predicate on the "word" field.
func WordEqualFold(v string) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldEqualFold(FieldWord, v))
}

// WordContainsFold applies the ContainsFold predicate on the "word" field.
func WordContainsFold(v string) predicate.RevealEvent {
	return predicate.RevealEvent(sql.FieldContainsFold(FieldWord, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RevealEvent) predicate.RevealEvent {
	return predicate.RevealEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RevealEvent) predicate.RevealEvent {
	return predicate.RevealEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RevealEvent) predicate.RevealEvent {
	return predicate.RevealEvent(sql.NotPredicates(p))
}
