// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Imaliure/adaptive-language-learning/ent/predicate"
	"github.com/Imaliure/adaptive-language-learning/ent/revealevent"
)

// RevealEventUpdate is the builder for updating RevealEvent entities.
type RevealEventUpdate struct {
	config
	hooks    []Hook
	mutation *RevealEventMutation
}

// Where appends a list predicates to the RevealEventUpdate builder.
func (_u *RevealEventUpdate) Where(ps ...predicate.RevealEvent) *RevealEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *RevealEventUpdate) SetRunID(v string) *RevealEventUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *RevealEventUpdate) SetNillableRunID(v *string) *RevealEventUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *RevealEventUpdate) SetQuestionID(v int) *RevealEventUpdate {
	_u.mutation.ResetQuestionID()
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *RevealEventUpdate) SetNillableQuestionID(v *int) *RevealEventUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// AddQuestionID adds value to the "question_id" field.
func (_u *RevealEventUpdate) AddQuestionID(v int) *RevealEventUpdate {
	_u.mutation.AddQuestionID(v)
	return _u
}

// SetHintIndex sets the "hint_index" field.
func (_u *RevealEventUpdate) SetHintIndex(v int) *RevealEventUpdate {
	_u.mutation.ResetHintIndex()
	_u.mutation.SetHintIndex(v)
	return _u
}

// SetNillableHintIndex sets the "hint_index" field if the given value is not nil.
func (_u *RevealEventUpdate) SetNillableHintIndex(v *int) *RevealEventUpdate {
	if v != nil {
		_u.SetHintIndex(*v)
	}
	return _u
}

// AddHintIndex adds value to the "hint_index" field.
func (_u *RevealEventUpdate) AddHintIndex(v int) *RevealEventUpdate {
	_u.mutation.AddHintIndex(v)
	return _u
}

// SetWord sets the "word" field.
func (_u *RevealEventUpdate) SetWord(v string) *RevealEventUpdate {
	_u.mutation.SetWord(v)
	return _u
}

// SetNillableWord sets the "word" field if the given value is not nil.
func (_u *RevealEventUpdate) SetNillableWord(v *string) *RevealEventUpdate {
	if v != nil {
		_u.SetWord(*v)
	}
	return _u
}

// Mutation returns the RevealEventMutation object of the builder.
func (_u *RevealEventUpdate) Mutation() *RevealEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RevealEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RevealEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RevealEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RevealEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RevealEventUpdate) check() error {
	if v, ok := _u.mutation.RunID(); ok {
		if err := revealevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "RevealEvent.run_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Word(); ok {
		if err := revealevent.WordValidator(v); err != nil {
			return &ValidationError{Name: "word", err: fmt.Errorf(`ent: validator failed for field "RevealEvent.word": %w`, err)}
		}
	}
	return nil
}

func (_u *RevealEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(revealevent.Table, revealevent.Columns, sqlgraph.NewFieldSpec(revealevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(revealevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(revealevent.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionID(); ok {
		_spec.AddField(revealevent.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HintIndex(); ok {
		_spec.SetField(revealevent.FieldHintIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintIndex(); ok {
		_spec.AddField(revealevent.FieldHintIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Word(); ok {
		_spec.SetField(revealevent.FieldWord, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{revealevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RevealEventUpdateOne is the builder for updating a single RevealEvent entity.
type RevealEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RevealEventMutation
}

// SetRunID sets the "run_id" field.
func (_u *RevealEventUpdateOne) SetRunID(v string) *RevealEventUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *RevealEventUpdateOne) SetNillableRunID(v *string) *RevealEventUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *RevealEventUpdateOne) SetQuestionID(v int) *RevealEventUpdateOne {
	_u.mutation.ResetQuestionID()
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *RevealEventUpdateOne) SetNillableQuestionID(v *int) *RevealEventUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// AddQuestionID adds value to the "question_id" field.
func (_u *RevealEventUpdateOne) AddQuestionID(v int) *RevealEventUpdateOne {
	_u.mutation.AddQuestionID(v)
	return _u
}

// SetHintIndex sets the "hint_index" field.
func (_u *RevealEventUpdateOne) SetHintIndex(v int) *RevealEventUpdateOne {
	_u.mutation.ResetHintIndex()
	_u.mutation.SetHintIndex(v)
	return _u
}

// SetNillableHintIndex sets the "hint_index" field if the given value is not nil.
func (_u *RevealEventUpdateOne) SetNillableHintIndex(v *int) *RevealEventUpdateOne {
	if v != nil {
		_u.SetHintIndex(*v)
	}
	return _u
}

// AddHintIndex adds value to the "hint_index" field.
func (_u *RevealEventUpdateOne) AddHintIndex(v int) *RevealEventUpdateOne {
	_u.mutation.AddHintIndex(v)
	return _u
}

// SetWord sets the "word" field.
func (_u *RevealEventUpdateOne) SetWord(v string) *RevealEventUpdateOne {
	_u.mutation.SetWord(v)
	return _u
}

// SetNillableWord sets the "word" field if the given value is not nil.
func (_u *RevealEventUpdateOne) SetNillableWord(v *string) *RevealEventUpdateOne {
	if v != nil {
		_u.SetWord(*v)
	}
	return _u
}

// Mutation returns the RevealEventMutation object of the builder.
func (_u *RevealEventUpdateOne) Mutation() *RevealEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the RevealEventUpdate builder.
func (_u *RevealEventUpdateOne) Where(ps ...predicate.RevealEvent) *RevealEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RevealEventUpdateOne) Select(field string, fields ...string) *RevealEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RevealEvent entity.
func (_u *RevealEventUpdateOne) Save(ctx context.Context) (*RevealEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RevealEventUpdateOne) SaveX(ctx context.Context) *RevealEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RevealEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RevealEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RevealEventUpdateOne) check() error {
	if v, ok := _u.mutation.RunID(); ok {
		if err := revealevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "RevealEvent.run_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Word(); ok {
		if err := revealevent.WordValidator(v); err != nil {
			return &ValidationError{Name: "word", err: fmt.Errorf(`ent: validator failed for field "RevealEvent.word": %w`, err)}
		}
	}
	return nil
}

func (_u *RevealEventUpdateOne) sqlSave(ctx context.Context) (_node *RevealEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(revealevent.Table, revealevent.Columns, sqlgraph.NewFieldSpec(revealevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RevealEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, revealevent.FieldID)
		for _, f := range fields {
			if !revealevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != revealevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(revealevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(revealevent.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionID(); ok {
		_spec.AddField(revealevent.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HintIndex(); ok {
		_spec.SetField(revealevent.FieldHintIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintIndex(); ok {
		_spec.AddField(revealevent.FieldHintIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Word(); ok {
		_spec.SetField(revealevent.FieldWord, field.TypeString, value)
	}
	_node = &RevealEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{revealevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
