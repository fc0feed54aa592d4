// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Imaliure/adaptive-language-learning/ent/dictationevent"
	"github.com/Imaliure/adaptive-language-learning/ent/predicate"
)

// DictationEventUpdate is the builder for updating DictationEvent entities.
type DictationEventUpdate struct {
	config
	hooks    []Hook
	mutation *DictationEventMutation
}

// Where appends a list predicates to the DictationEventUpdate builder.
func (_u *DictationEventUpdate) Where(ps ...predicate.DictationEvent) *DictationEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *DictationEventUpdate) SetRunID(v string) *DictationEventUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *DictationEventUpdate) SetNillableRunID(v *string) *DictationEventUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *DictationEventUpdate) SetQuestionID(v int) *DictationEventUpdate {
	_u.mutation.ResetQuestionID()
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *DictationEventUpdate) SetNillableQuestionID(v *int) *DictationEventUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// AddQuestionID adds value to the "question_id" field.
func (_u *DictationEventUpdate) AddQuestionID(v int) *DictationEventUpdate {
	_u.mutation.AddQuestionID(v)
	return _u
}

// SetText sets the "text" field.
func (_u *DictationEventUpdate) SetText(v string) *DictationEventUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *DictationEventUpdate) SetNillableText(v *string) *DictationEventUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *DictationEventUpdate) SetKind(v string) *DictationEventUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *DictationEventUpdate) SetNillableKind(v *string) *DictationEventUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// Mutation returns the DictationEventMutation object of the builder.
func (_u *DictationEventUpdate) Mutation() *DictationEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DictationEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DictationEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DictationEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DictationEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DictationEventUpdate) check() error {
	if v, ok := _u.mutation.RunID(); ok {
		if err := dictationevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "DictationEvent.run_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Text(); ok {
		if err := dictationevent.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "DictationEvent.text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := dictationevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "DictationEvent.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *DictationEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dictationevent.Table, dictationevent.Columns, sqlgraph.NewFieldSpec(dictationevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(dictationevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(dictationevent.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionID(); ok {
		_spec.AddField(dictationevent.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(dictationevent.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(dictationevent.FieldKind, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dictationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DictationEventUpdateOne is the builder for updating a single DictationEvent entity.
type DictationEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DictationEventMutation
}

// SetRunID sets the "run_id" field.
func (_u *DictationEventUpdateOne) SetRunID(v string) *DictationEventUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *DictationEventUpdateOne) SetNillableRunID(v *string) *DictationEventUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *DictationEventUpdateOne) SetQuestionID(v int) *DictationEventUpdateOne {
	_u.mutation.ResetQuestionID()
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *DictationEventUpdateOne) SetNillableQuestionID(v *int) *DictationEventUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// AddQuestionID adds value to the "question_id" field.
func (_u *DictationEventUpdateOne) AddQuestionID(v int) *DictationEventUpdateOne {
	_u.mutation.AddQuestionID(v)
	return _u
}

// SetText sets the "text" field.
func (_u *DictationEventUpdateOne) SetText(v string) *DictationEventUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *DictationEventUpdateOne) SetNillableText(v *string) *DictationEventUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *DictationEventUpdateOne) SetKind(v string) *DictationEventUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *DictationEventUpdateOne) SetNillableKind(v *string) *DictationEventUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// Mutation returns the DictationEventMutation object of the builder.
func (_u *DictationEventUpdateOne) Mutation() *DictationEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the DictationEventUpdate builder.
func (_u *DictationEventUpdateOne) Where(ps ...predicate.DictationEvent) *DictationEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DictationEventUpdateOne) Select(field string, fields ...string) *DictationEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DictationEvent entity.
func (_u *DictationEventUpdateOne) Save(ctx context.Context) (*DictationEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DictationEventUpdateOne) SaveX(ctx context.Context) *DictationEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DictationEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DictationEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DictationEventUpdateOne) check() error {
	if v, ok := _u.mutation.RunID(); ok {
		if err := dictationevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "DictationEvent.run_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Text(); ok {
		if err := dictationevent.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "DictationEvent.text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := dictationevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "DictationEvent.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *DictationEventUpdateOne) sqlSave(ctx context.Context) (_node *DictationEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dictationevent.Table, dictationevent.Columns, sqlgraph.NewFieldSpec(dictationevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DictationEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dictationevent.FieldID)
		for _, f := range fields {
			if !dictationevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != dictationevent.FieldID {
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
		_spec.SetField(dictationevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(dictationevent.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionID(); ok {
		_spec.AddField(dictationevent.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(dictationevent.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(dictationevent.FieldKind, field.TypeString, value)
	}
	_node = &DictationEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dictationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
